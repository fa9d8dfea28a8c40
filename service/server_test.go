package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/service"
)

func TestListenAndServe_StopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := service.ListenAndServe(ctx, "127.0.0.1:0", http.NotFoundHandler(), hclog.NewNullLogger())
	require.NoError(t, err)
}

func TestListenAndServe_BadAddress(t *testing.T) {
	err := service.ListenAndServe(t.Context(), "127.0.0.1:-1", http.NotFoundHandler(), hclog.NewNullLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service: listen")
}
