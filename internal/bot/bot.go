package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Computer is a player.Mover driven by one of the difficulty tiers. It is
// not safe for concurrent use; a match calls it from a single goroutine.
type Computer struct {
	id         string
	difficulty game.Difficulty
	rng        Rand
}

// NewComputer creates a computer mover. difficulty must be Easy, Medium or Hard.
func NewComputer(id string, difficulty game.Difficulty, rng Rand) (*Computer, error) {
	if !difficulty.IsComputer() {
		return nil, fmt.Errorf("new computer: %w: %s", ErrUserControlled, difficulty)
	}
	return &Computer{id: id, difficulty: difficulty, rng: rng}, nil
}

// NextMove implements player.Mover.
func (c *Computer) NextMove(ctx context.Context, b *game.Board, side game.Side) (game.Coordinate, error) {
	slog.DebugContext(ctx, "Bot is thinking", "player.id", c.id, "bot.difficulty", c.difficulty.String(), "bot.side", side.String())
	return ChooseMove(b, side, c.difficulty, c.rng)
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(difficulty game.Difficulty, rng Rand) (*player.Player, error) {
	botID := "bot-" + uuid.New().String()[:8]
	computer, err := NewComputer(botID, difficulty, rng)
	if err != nil {
		return nil, err
	}
	return player.NewPlayer(botID, difficulty, computer), nil
}
