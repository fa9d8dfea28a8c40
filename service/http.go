// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/wdiam/diameter"
)

// RequestIDHeader carries the request ID in and out.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// Defaults applied to zero RouterConfig fields.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 8 << 20
)

// RouterConfig bounds each request.
type RouterConfig struct {
	RequestTimeout time.Duration // solver deadline per request
	MaxBodyBytes   int64         // edge-list size limit
	Logger         hclog.Logger
}

// DiameterResponse is the JSON body of a successful POST /v1/diameter.
type DiameterResponse struct {
	RequestID   string `json:"request_id"`
	Distance    int64  `json:"distance"`
	From        int    `json:"from"`
	To          int    `json:"to"`
	Path        []int  `json:"path"`
	Vertices    int    `json:"vertices"`
	Unreachable bool   `json:"unreachable,omitempty"`
	Cached      bool   `json:"cached"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

type handlers struct {
	pipe *Pipeline
	cfg  RouterConfig
	log  hclog.Logger
}

// NewRouter mounts:
//
//	POST /v1/diameter   edge-list text in, DiameterResponse out
//	GET  /healthz       liveness
//	GET  /metrics       Prometheus exposition
func NewRouter(p *Pipeline, cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &handlers{pipe: p, cfg: cfg, log: cfg.Logger.Named("http")}

	r := gin.New()
	r.Use(gin.Recovery(), requestID())
	r.GET("/healthz", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1 := r.Group("/v1")
	v1.POST("/diameter", h.diameter)

	return r
}

// requestID reuses an inbound X-Request-ID or mints a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) diameter(c *gin.Context) {
	id := c.GetString(requestIDKey)
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxBodyBytes)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
	defer cancel()

	out, err := h.pipe.Run(ctx, body)
	if err != nil {
		status := statusOf(err)
		h.log.Info("request failed", "request_id", id, "status", status, "error", err)
		c.JSON(status, ErrorResponse{RequestID: id, Error: err.Error()})
		return
	}

	res := out.Result
	path := res.Path
	if path == nil {
		path = []int{}
	}
	c.JSON(http.StatusOK, DiameterResponse{
		RequestID:   id,
		Distance:    res.Length(),
		From:        res.From,
		To:          res.To,
		Path:        path,
		Vertices:    out.Vertices,
		Unreachable: res.Unreachable(),
		Cached:      out.Cached,
	})
}

// statusOf maps pipeline errors onto HTTP status codes.
func statusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadInput):
		return http.StatusBadRequest
	case errors.Is(err, diameter.ErrNoReachablePair), errors.Is(err, diameter.ErrDisconnected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
