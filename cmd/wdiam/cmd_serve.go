// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wdiam/service"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/diameter, /healthz and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if !a.log.IsDebug() {
				gin.SetMode(gin.ReleaseMode)
			}

			p, err := a.pipeline(a.cfg.Server.CacheSize)
			if err != nil {
				return err
			}
			router := service.NewRouter(p, service.RouterConfig{
				RequestTimeout: a.cfg.Server.RequestTimeout,
				MaxBodyBytes:   a.cfg.Server.MaxBodyBytes,
				Logger:         a.log,
			})

			return service.ListenAndServe(cmd.Context(), a.cfg.Server.Addr, router, a.log.Named("server"))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config server.addr)")

	return cmd
}
