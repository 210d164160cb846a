package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingServer runs until ctx is canceled, then takes a while to shut down.
func blockingServer(name string, stopped *atomic.Bool) namedServer {
	return namedServer{
		name: name,
		port: "0",
		start: func(ctx context.Context, _ string) error {
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)
			stopped.Store(true)

			return nil
		},
	}
}

func TestServeAll(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Canceled context waits for every server", func(t *testing.T) {
		var httpStopped, wsStopped atomic.Bool

		ctx, cancel := context.WithCancel(context.Background())

		// Given: two running servers
		done := make(chan error, 1)
		go func() {
			done <- serveAll(ctx, logger, blockingServer("HTTP", &httpStopped), blockingServer("WebSocket", &wsStopped))
		}()

		// When: the application context is canceled
		cancel()

		// Then: serveAll returns only after both servers finished shutting down
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serveAll did not return")
		}

		assert.True(t, httpStopped.Load())
		assert.True(t, wsStopped.Load())
	})

	t.Run("Failing server stops the others", func(t *testing.T) {
		var wsStopped atomic.Bool

		failure := errors.New("address already in use")
		failing := namedServer{
			name: "HTTP",
			port: "0",
			start: func(context.Context, string) error {
				return failure
			},
		}

		// When: one server fails to start
		err := serveAll(context.Background(), logger, failing, blockingServer("WebSocket", &wsStopped))

		// Then: the failure is returned once the other server has stopped
		require.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "HTTP server error")
		assert.True(t, wsStopped.Load())
	})
}
