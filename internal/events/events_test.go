package events

import (
	"ctchen222/tictactoe/internal/game"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ev, err := New(MoveMade, "m-1", MoveMadePayload{Side: game.Second, Row: 1, Col: 2, Board: "X____O___"})
	require.NoError(t, err)

	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"event": "move_made",
		"match_id": "m-1",
		"payload": {"side": "O", "row": 1, "col": 2, "board": "X____O___"}
	}`, string(data))
}

func TestDecode(t *testing.T) {
	ev, err := New(TurnStarted, "m-2", TurnStartedPayload{Side: game.First, Difficulty: game.Hard, PlayerID: "bot-1"})
	require.NoError(t, err)

	var payload TurnStartedPayload
	require.NoError(t, ev.Decode(&payload))

	assert.Equal(t, game.First, payload.Side)
	assert.Equal(t, game.Hard, payload.Difficulty)
	assert.Equal(t, "bot-1", payload.PlayerID)
}

func TestNew_RejectsUnencodablePayload(t *testing.T) {
	_, err := New(MatchStarted, "m-3", MatchStartedPayload{
		Players: []PlayerInfo{{ID: "p", Side: game.Side(0)}},
	})
	assert.Error(t, err)
}

func TestMatchFinishedOutcome(t *testing.T) {
	ev, err := New(MatchFinished, "m-4", MatchFinishedPayload{Outcome: game.Draw, Board: "XOXXOOOXX"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome": "draw", "board": "XOXXOOOXX"}`, string(ev.Payload))
}
