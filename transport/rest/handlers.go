package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type uGame interface {
	NewGame(ctx context.Context) (*entity.View, error)
	GetGame(ctx context.Context, id string) (*entity.View, error)

	Play(ctx context.Context, id string, cell int) (*entity.View, error)
	JumpTo(ctx context.Context, id string, move int) (*entity.View, error)
	Reset(ctx context.Context, id string) (*entity.View, error)

	DeleteGame(ctx context.Context, id string) error
}

type playRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger *slog.Logger
	uGame  uGame
}

func newGameHandlers(logger *slog.Logger, uGame uGame) *gameHandlers {
	return &gameHandlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *gameHandlers) createGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.uGame.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, view)
}

func (that *gameHandlers) getGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.uGame.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *gameHandlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandlers) play(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := decodeBody(r, &req); err != nil || req.Cell == nil {
		that.writeError(w, "play", apperror.ErrMalformedRequest)
		return
	}

	view, err := that.uGame.Play(r.Context(), r.PathValue("id"), *req.Cell)
	if err != nil {
		that.writeError(w, "play", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *gameHandlers) jump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := decodeBody(r, &req); err != nil || req.Move == nil {
		that.writeError(w, "jump", apperror.ErrMalformedRequest)
		return
	}

	view, err := that.uGame.JumpTo(r.Context(), r.PathValue("id"), *req.Move)
	if err != nil {
		that.writeError(w, "jump", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *gameHandlers) reset(w http.ResponseWriter, r *http.Request) {
	view, err := that.uGame.Reset(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "reset", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return err
	}

	// the body holds exactly one JSON value
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON body", apperror.ErrMalformedRequest)
	}

	return nil
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *gameHandlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrMalformedRequest):
		status = http.StatusBadRequest
	default:
		that.logger.Error("request failed", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}
