package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	NewGame(ctx context.Context) (*entity.View, error)
	GetGame(ctx context.Context, id string) (*entity.View, error)

	Play(ctx context.Context, id string, cell int) (*entity.View, error)
	JumpTo(ctx context.Context, id string, move int) (*entity.View, error)
	Reset(ctx context.Context, id string) (*entity.View, error)
}

// session is the per-connection state: the game the client last worked with.
type session struct {
	gameID string
}

type handlerFunc func(ctx context.Context, sess *session, payload *Payload) (*entity.View, error)

type Server struct {
	logger *slog.Logger
	uGame  uGame

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionState] = server.handleState
	server.handlers[actionPlay] = server.handlePlay
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionReset] = server.handleReset

	return server
}

// Start - starts WebSocket server on /ws until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
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

// ServeHTTP - upgrades the connection to WebSocket and processes its messages.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(writer, req, nil)
	if err != nil {
		log.Error("failed to accept websocket connection", "error", err)
		return
	}

	defer conn.CloseNow()

	log.Info("WebSocket connection established")

	err = that.handleMessages(req.Context(), conn)

	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		log.Info("WebSocket connection closed")
	case errors.Is(err, context.Canceled):
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
	default:
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	sess := &session{}

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		if msgType != websocket.MessageText {
			log.Error("unsupported message type", "type", msgType)
			continue
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		response := that.process(ctx, sess, &message)

		if err = wsjson.Write(ctx, conn, response); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
	}
}

func (that *Server) process(ctx context.Context, sess *session, message *Message) Message {
	log := that.logger.With("method", "process", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Error("unknown action")
		return newMessage(message.Action, &Payload{Error: fmt.Sprintf("%s: %q", apperror.ErrUnknownAction, message.Action)})
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Error("failed to unmarshal payload", "error", err)
			return newMessage(message.Action, &Payload{Error: apperror.ErrMalformedRequest.Error()})
		}
	}

	view, err := handler(ctx, sess, &payload)
	if err != nil {
		log.Error("error processing message", "error", err)
		return newMessage(message.Action, &Payload{GameID: sess.gameID, Error: err.Error()})
	}

	// only a game the use case accepted becomes the connection's game
	sess.gameID = view.ID

	return newMessage(message.Action, &Payload{GameID: view.ID, Game: view})
}

func newMessage(action string, payload *Payload) Message {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte(`{"error":"failed to marshal payload"}`)
	}

	return Message{Action: action, Payload: data}
}
