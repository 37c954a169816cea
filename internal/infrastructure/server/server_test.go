package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gdugdh24/matchcore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_StopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := &config.ServerConfig{ShutdownTimeout: time.Second}
	srv := NewServer(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_ReportsBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	srv := NewServer(&config.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: time.Second}, http.NotFoundHandler())

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:              "0.0.0.0",
		Port:              9000,
		ReadTimeout:       2 * time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      3 * time.Second,
		IdleTimeout:       time.Minute,
	}
	srv := NewServer(cfg, http.NotFoundHandler())

	assert.Equal(t, "0.0.0.0:9000", srv.httpServer.Addr)
	assert.Equal(t, time.Second, srv.httpServer.ReadHeaderTimeout)
	assert.Equal(t, time.Minute, srv.httpServer.IdleTimeout)
}
