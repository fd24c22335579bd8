package bot

import (
	"ctchen222/tictactoe/internal/game"
	"errors"
)

var ErrNoEmptyCell = errors.New("no empty cell")

// Rand is the source of randomness used by the Easy tier.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// EmptyCells returns the empty cells of b in row-major order.
func EmptyCells(b *game.Board) []game.Coordinate {
	return b.EmptyCells()
}

// PickRandomEmpty returns an empty cell chosen uniformly at random.
func PickRandomEmpty(b *game.Board, rng Rand) (game.Coordinate, error) {
	free := b.EmptyCells()
	if len(free) == 0 {
		return game.Coordinate{}, ErrNoEmptyCell
	}
	return free[rng.IntN(len(free))], nil
}

// FindWinningOrBlockingMove returns the empty cell completing the first line,
// in game.Lines order, that holds two of side's marks and one empty cell.
// Called with the opponent's side it finds the cell to block.
func FindWinningOrBlockingMove(b *game.Board, side game.Side) (game.Coordinate, bool) {
	mark := side.Mark()
	for _, line := range game.Lines {
		owned := 0
		var free game.Coordinate
		empties := 0
		for _, c := range line {
			switch b.Get(c) {
			case mark:
				owned++
			case game.Empty:
				empties++
				free = c
			}
		}
		if owned == game.Size-1 && empties == 1 {
			return free, true
		}
	}
	return game.Coordinate{}, false
}
