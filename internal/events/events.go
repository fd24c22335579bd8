package events

import (
	"ctchen222/tictactoe/internal/game"
	"encoding/json"
	"fmt"
)

// Event types emitted while a match is played.
const (
	MatchStarted  = "match_started"
	TurnStarted   = "turn_started"
	MoveMade      = "move_made"
	MoveRejected  = "move_rejected"
	MatchFinished = "match_finished"
)

// Event is a single match event as sent to observers and websocket clients.
type Event struct {
	Type    string          `json:"event"`
	MatchID string          `json:"match_id"`
	Payload json.RawMessage `json:"payload"`
}

// New builds an event with payload encoded as JSON.
func New(eventType, matchID string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, MatchID: matchID, Payload: raw}, nil
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}

// PlayerInfo describes one side of a match.
type PlayerInfo struct {
	ID         string          `json:"id"`
	Side       game.Side       `json:"side"`
	Difficulty game.Difficulty `json:"difficulty"`
}

// MatchStartedPayload is the payload for the "match_started" event.
type MatchStartedPayload struct {
	Players []PlayerInfo `json:"players"`
	Board   string       `json:"board"`
}

// TurnStartedPayload is the payload for the "turn_started" event.
type TurnStartedPayload struct {
	Side       game.Side       `json:"side"`
	Difficulty game.Difficulty `json:"difficulty"`
	PlayerID   string          `json:"player_id"`
}

// MoveMadePayload is the payload for the "move_made" event.
type MoveMadePayload struct {
	Side  game.Side `json:"side"`
	Row   int       `json:"row"`
	Col   int       `json:"col"`
	Board string    `json:"board"`
}

// MoveRejectedPayload is the payload for the "move_rejected" event.
type MoveRejectedPayload struct {
	Side   game.Side `json:"side"`
	Row    int       `json:"row"`
	Col    int       `json:"col"`
	Reason string    `json:"reason"`
}

// MatchFinishedPayload is the payload for the "match_finished" event.
type MatchFinishedPayload struct {
	Outcome game.Outcome `json:"outcome"`
	Board   string       `json:"board"`
}
