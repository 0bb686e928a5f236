//go:build !integration

package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Timeouts(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.ServerConfig
		wantWrite    time.Duration
		wantShutdown time.Duration
	}{
		{"defaults", config.ServerConfig{Port: "8080"}, 15 * time.Second, 10 * time.Second},
		{"long request timeout", config.ServerConfig{Port: "8080", RequestTimeout: 30 * time.Second}, 35 * time.Second, 10 * time.Second},
		{"custom shutdown", config.ServerConfig{Port: "8080", ShutdownTimeout: 3 * time.Second}, 15 * time.Second, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(http.NotFoundHandler(), tt.cfg)
			assert.Equal(t, ":8080", s.httpServer.Addr)
			assert.Equal(t, tt.wantWrite, s.httpServer.WriteTimeout)
			assert.Equal(t, tt.wantShutdown, s.shutdownTimeout)
		})
	}
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.ServerConfig{ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunInvalidAddress(t *testing.T) {
	s := NewServer(http.NotFoundHandler(), config.ServerConfig{Port: "not-a-port"})
	assert.Error(t, s.Run(context.Background()))
}
