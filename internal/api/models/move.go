package models

import (
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
)

// MoveRequest asks for a computer move on a position.
type MoveRequest struct {
	Board      string `json:"board" binding:"required,board"`
	Side       string `json:"side" binding:"omitempty,oneof=X O x o"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Seed       uint64 `json:"seed"`
}

// MoveResponse is the chosen move and the position after it.
type MoveResponse struct {
	Row     int          `json:"row"`
	Col     int          `json:"col"`
	Side    game.Side    `json:"side"`
	Board   string       `json:"board"`
	Outcome game.Outcome `json:"outcome"`
}

// AnalysisRequest asks for the minimax score of every legal move.
type AnalysisRequest struct {
	Board string `json:"board" binding:"required,board"`
	Side  string `json:"side" binding:"omitempty,oneof=X O x o"`
}

type CellScore struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Score int `json:"score"`
}

type AnalysisResponse struct {
	Side  game.Side       `json:"side"`
	Best  game.Coordinate `json:"best"`
	Score int             `json:"score"`
	Cells []CellScore     `json:"cells"`
	Nodes int             `json:"nodes"`
}

// MatchRequest starts a computer-vs-computer match. It is bound from JSON for
// simulations and from the query string for the websocket watcher.
type MatchRequest struct {
	First  string `json:"first" form:"first" binding:"required,oneof=easy medium hard"`
	Second string `json:"second" form:"second" binding:"required,oneof=easy medium hard"`
	Seed   uint64 `json:"seed" form:"seed"`
}

type MatchResponse struct {
	ID      string         `json:"id"`
	Outcome game.Outcome   `json:"outcome"`
	Board   string         `json:"board"`
	Events  []events.Event `json:"events"`
}
