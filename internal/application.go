package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/console"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/render"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/websocket"
)

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch conf.Mode {
	case config.ModeTerminal:
		log.Info("Starting terminal game")
		return runTerminal(ctx, logger)
	default:
		return runServers(ctx, logger, conf)
	}
}

func runTerminal(ctx context.Context, logger *slog.Logger) error {
	renderer := render.New(os.Stdout, termenv.WithColorCache(true))

	if err := console.New(logger, os.Stdin, renderer).Run(ctx); err != nil {
		return fmt.Errorf("terminal game failed: %w", err)
	}

	return nil
}

func runServers(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return apperror.ErrEmptyRedisAddress
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage, conf.SessionTTL)
	gameUseCase := usecase.NewGameManager(logger, gameRepo)

	httpServer := namedServer{
		name: "HTTP",
		port: conf.HTTPPort,
		start: func(ctx context.Context, port string) error {
			return rest.Start(ctx, port, rest.NewRouter(logger, gameUseCase))
		},
	}

	wsServer := namedServer{
		name:  "WebSocket",
		port:  conf.SocketPort,
		start: websocket.New(logger, gameUseCase).Start,
	}

	return serveAll(ctx, log, httpServer, wsServer)
}

type namedServer struct {
	name  string
	port  string
	start func(ctx context.Context, port string) error
}

// serveAll - runs every server until one fails or ctx is canceled. It returns
// only after all of them have stopped.
func serveAll(ctx context.Context, log *slog.Logger, servers ...namedServer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(servers))

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			log.Info("Starting "+srv.name+" server", "port", srv.port)
			if err := srv.start(ctx, srv.port); err != nil {
				log.Error(srv.name+" server error", "error", err)
				errCh <- fmt.Errorf("%s server error: %w", srv.name, err)
			}
		}()
	}

	var err error

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	cancel()
	wg.Wait()

	return err
}
