package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionDrop    = "game:drop"
	actionRestart = "game:restart"
	actionEnd     = "game:end"
	actionUnknown = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id"`
	Column *int   `json:"column,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Move  *entity.Move `json:"move,omitempty"`
	Label string       `json:"label,omitempty"`
	Error string       `json:"error,omitempty"`
}

func gameResponse(game *entity.Game) ResponsePayload {
	return ResponsePayload{Game: game, Label: game.Label()}
}
