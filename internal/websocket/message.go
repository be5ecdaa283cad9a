package websocket

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// NewEventMessage encodes an activity-feed event for broadcast.
func NewEventMessage(payload interface{}) []byte {
	data, err := json.Marshal(Message{Action: "event", Payload: payload})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode websocket event message")
		return nil
	}
	return data
}
