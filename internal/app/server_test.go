package app

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.NotNil(t, server)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_Shutdown(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	err := server.Shutdown()
	assert.NoError(t, err)
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	server := NewServer(okHandler(), "0")

	done := make(chan error, 1)
	go func() {
		done <- server.Run()
	}()

	time.Sleep(100 * time.Millisecond)

	proc, _ := os.FindProcess(os.Getpid())
	_ = proc.Signal(syscall.SIGTERM)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "Server did not shutdown gracefully")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	server := NewServer(okHandler(), "invalid-port")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "expected listen error")
	}
}
