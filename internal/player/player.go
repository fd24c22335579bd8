package player

import (
	"context"
	"ctchen222/tictactoe/internal/game"
)

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

// Mover produces the next move for a side. Implementations read b and must
// leave it as they found it; the caller applies the returned coordinate.
type Mover interface {
	NextMove(ctx context.Context, b *game.Board, side game.Side) (game.Coordinate, error)
}

// Player represents one side of a match.
type Player struct {
	ID         string
	Difficulty game.Difficulty
	Mover      Mover
}

// NewPlayer creates a new player.
func NewPlayer(id string, difficulty game.Difficulty, mover Mover) *Player {
	return &Player{ID: id, Difficulty: difficulty, Mover: mover}
}

// IsBot reports whether the side is computer controlled.
func (p *Player) IsBot() bool {
	return p.Difficulty.IsComputer()
}
