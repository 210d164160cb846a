package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (*entity.View, error)
	GetGame(ctx context.Context, id string) (*entity.View, error)

	Play(ctx context.Context, id string, cell int) (*entity.View, error)
	JumpTo(ctx context.Context, id string, move int) (*entity.View, error)
	Reset(ctx context.Context, id string) (*entity.View, error)

	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

// NewGame - starts a game session with an empty board.
func (that *GameManager) NewGame(ctx context.Context) (*entity.View, error) {
	id := that.newID()
	game := tictactoe.NewGame()

	if err := that.gameRepo.CreateOrUpdate(ctx, game.Record(id)); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", id)

	return viewOf(id, game), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.View, error) {
	game, err := that.loadGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return viewOf(id, game), nil
}

// Play - plays cell on the viewed move. Rejected moves leave the session untouched.
func (that *GameManager) Play(ctx context.Context, id string, cell int) (*entity.View, error) {
	return that.apply(ctx, id, "play", func(game *tictactoe.Game) bool {
		return game.Play(cell)
	}, "cell", cell)
}

func (that *GameManager) JumpTo(ctx context.Context, id string, move int) (*entity.View, error) {
	return that.apply(ctx, id, "jump", func(game *tictactoe.Game) bool {
		return game.JumpTo(move)
	}, "move", move)
}

func (that *GameManager) Reset(ctx context.Context, id string) (*entity.View, error) {
	return that.apply(ctx, id, "reset", func(game *tictactoe.Game) bool {
		game.Reset()
		return true
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) apply(
	ctx context.Context,
	id, operation string,
	mutate func(game *tictactoe.Game) bool,
	args ...any,
) (*entity.View, error) {
	log := that.logger.With("method", operation, "game_id", id)

	game, err := that.loadGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if !mutate(game) {
		log.Debug("operation ignored", args...)
		return viewOf(id, game), nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game.Record(id)); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("operation applied", append(args, "current_move", game.CurrentMove(), "status", game.Status())...)

	return viewOf(id, game), nil
}

func (that *GameManager) loadGame(ctx context.Context, id string) (*tictactoe.Game, error) {
	record, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := tictactoe.Restore(record.History, record.CurrentMove)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return game, nil
}

func viewOf(id string, game *tictactoe.Game) *entity.View {
	view := game.View()
	view.ID = id

	return view
}
