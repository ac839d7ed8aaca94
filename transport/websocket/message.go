package websocket

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionConnect    = "connect"
	actionNewGame    = "game:new"
	actionTurn       = "game:turn"
	actionRestart    = "game:restart"
	actionGameUpdate = "game:update"
	actionError      = "error"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Message - a frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ConnectRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,uuid"`
}

type NewGameRequest struct {
	Mark    entity.Mark `json:"mark" validate:"omitempty,oneof=X O"`
	WithBot bool        `json:"with_bot"`
}

type TurnRequest struct {
	Row *int `json:"row" validate:"required,min=0,max=2"`
	Col *int `json:"col" validate:"required,min=0,max=2"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func decodePayload(msg *Message, dst any) error {
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, dst); err != nil {
			return err
		}
	}

	return validate.Struct(dst)
}
