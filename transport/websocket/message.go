package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionPlay    = "game:play"
	actionJump    = "game:jump"
	actionReset   = "game:reset"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries request arguments from the client and the resulting game back to it.
type Payload struct {
	GameID string       `json:"game_id,omitempty"`
	Cell   *int         `json:"cell,omitempty"`
	Move   *int         `json:"move,omitempty"`
	Game   *entity.View `json:"game,omitempty"`
	Error  string       `json:"error,omitempty"`
}
