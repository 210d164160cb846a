package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - registers the ping and game routes.
func NewRouter(logger *slog.Logger, uGame uGame) http.Handler {
	handlers := newGameHandlers(logger, uGame)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)

	mux.HandleFunc("POST /games", handlers.createGame)
	mux.HandleFunc("GET /games/{id}", handlers.getGame)
	mux.HandleFunc("DELETE /games/{id}", handlers.deleteGame)
	mux.HandleFunc("POST /games/{id}/play", handlers.play)
	mux.HandleFunc("POST /games/{id}/jump", handlers.jump)
	mux.HandleFunc("POST /games/{id}/reset", handlers.reset)

	return mux
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
