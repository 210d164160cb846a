package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, _ *session, _ *Payload) (*entity.View, error) {
	view, err := that.uGame.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new game: %w", err)
	}

	return view, nil
}

func (that *Server) handleState(ctx context.Context, sess *session, payload *Payload) (*entity.View, error) {
	gameID, err := sess.resolve(payload)
	if err != nil {
		return nil, err
	}

	return that.uGame.GetGame(ctx, gameID)
}

func (that *Server) handlePlay(ctx context.Context, sess *session, payload *Payload) (*entity.View, error) {
	gameID, err := sess.resolve(payload)
	if err != nil {
		return nil, err
	}

	if payload.Cell == nil {
		return nil, fmt.Errorf("%w: cell is required", apperror.ErrMalformedRequest)
	}

	return that.uGame.Play(ctx, gameID, *payload.Cell)
}

func (that *Server) handleJump(ctx context.Context, sess *session, payload *Payload) (*entity.View, error) {
	gameID, err := sess.resolve(payload)
	if err != nil {
		return nil, err
	}

	if payload.Move == nil {
		return nil, fmt.Errorf("%w: move is required", apperror.ErrMalformedRequest)
	}

	return that.uGame.JumpTo(ctx, gameID, *payload.Move)
}

func (that *Server) handleReset(ctx context.Context, sess *session, payload *Payload) (*entity.View, error) {
	gameID, err := sess.resolve(payload)
	if err != nil {
		return nil, err
	}

	return that.uGame.Reset(ctx, gameID)
}

// resolve - picks the game of the request, falling back to the one the
// connection used last.
func (that *session) resolve(payload *Payload) (string, error) {
	if payload.GameID != "" {
		return payload.GameID, nil
	}

	if that.gameID == "" {
		return "", fmt.Errorf("%w: game_id is required", apperror.ErrMalformedRequest)
	}

	return that.gameID, nil
}
