package bot

import (
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
)

var (
	ErrUserControlled    = errors.New("side is user controlled")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// ChooseMove picks a cell for side on b according to difficulty. It never
// modifies b; applying the move is left to the caller.
func ChooseMove(b *game.Board, side game.Side, difficulty game.Difficulty, rng Rand) (game.Coordinate, error) {
	if !side.Valid() {
		return game.Coordinate{}, fmt.Errorf("choose move: %w: %d", game.ErrInvalidSide, side)
	}
	if terminal, outcome := b.IsTerminal(); terminal {
		return game.Coordinate{}, fmt.Errorf("choose move: %w: %s", game.ErrTerminalBoard, outcome)
	}

	switch difficulty {
	case game.Easy:
		return easyMove(b, rng)
	case game.Medium:
		return mediumMove(b, side, rng)
	case game.Hard:
		return hardMove(b, side)
	case game.UserControlled:
		return game.Coordinate{}, fmt.Errorf("choose move: %w", ErrUserControlled)
	default:
		return game.Coordinate{}, fmt.Errorf("choose move: %w: %d", ErrUnknownDifficulty, difficulty)
	}
}

// easyMove makes a completely random move.
func easyMove(b *game.Board, rng Rand) (game.Coordinate, error) {
	return PickRandomEmpty(b, rng)
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(b *game.Board, side game.Side, rng Rand) (game.Coordinate, error) {
	if c, ok := FindWinningOrBlockingMove(b, side); ok {
		return c, nil
	}
	if c, ok := FindWinningOrBlockingMove(b, side.Opponent()); ok {
		return c, nil
	}
	return easyMove(b, rng)
}

// hardMove plays the minimax-optimal move.
func hardMove(b *game.Board, side game.Side) (game.Coordinate, error) {
	return BestMove(b, side)
}
