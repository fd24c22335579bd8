package match

import (
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrMissingPlayer = errors.New("match needs a player for each side")

// Match is a single game between two players on its own board.
type Match struct {
	ID      string
	Board   *game.Board
	Moves   []game.Coordinate
	players [2]*player.Player
}

// New creates a match on a fresh board. first plays X.
func New(first, second *player.Player) (*Match, error) {
	return NewFromBoard(game.NewBoard(), first, second)
}

// NewFromBoard creates a match that continues from an existing position.
func NewFromBoard(b *game.Board, first, second *player.Player) (*Match, error) {
	if first == nil || second == nil || first.Mover == nil || second.Mover == nil {
		return nil, ErrMissingPlayer
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	return &Match{
		ID:      uuid.NewString(),
		Board:   b,
		players: [2]*player.Player{first, second},
	}, nil
}

// Player returns the player controlling side.
func (m *Match) Player(side game.Side) *player.Player {
	if side == game.Second {
		return m.players[1]
	}
	return m.players[0]
}

// Outcome reports the current state of the board.
func (m *Match) Outcome() game.Outcome {
	return m.Board.Outcome()
}

func (m *Match) playerInfo() []events.PlayerInfo {
	infos := make([]events.PlayerInfo, 0, len(m.players))
	for _, side := range []game.Side{game.First, game.Second} {
		p := m.Player(side)
		infos = append(infos, events.PlayerInfo{ID: p.ID, Side: side, Difficulty: p.Difficulty})
	}
	return infos
}
