package bot

import (
	"ctchen222/tictactoe/internal/game"
	"fmt"
	"math"
)

const (
	firstWinScore  = 10
	secondWinScore = -10
	drawScore      = 0
)

// Analysis is the result of searching every legal move from a position.
type Analysis struct {
	Move   game.Coordinate
	Score  int
	Scores map[game.Coordinate]int
	Nodes  int
}

type searcher struct {
	board *game.Board
	nodes int
}

// minimax scores the position from First's point of view with toMove to play.
func (s *searcher) minimax(toMove game.Side) int {
	s.nodes++
	switch {
	case s.board.IsWinner(game.First):
		return firstWinScore
	case s.board.IsWinner(game.Second):
		return secondWinScore
	}

	free := s.board.EmptyCells()
	if len(free) == 0 {
		return drawScore
	}

	best := worstScore(toMove)
	for _, c := range free {
		score := s.try(c, toMove, func() int {
			return s.minimax(toMove.Opponent())
		})
		if better(toMove, score, best) {
			best = score
		}
	}
	return best
}

// try places side's mark at c, evaluates, and clears c again on every exit
// path including a panic inside eval.
func (s *searcher) try(c game.Coordinate, side game.Side, eval func() int) int {
	s.board.Set(c, side.Mark())
	defer s.board.Set(c, game.Empty)
	return eval()
}

func worstScore(side game.Side) int {
	if side == game.First {
		return math.MinInt
	}
	return math.MaxInt
}

func better(side game.Side, score, best int) bool {
	if side == game.First {
		return score > best
	}
	return score < best
}

// Minimax returns the exact game value of b with toMove to play: +10 when
// First wins under optimal play, -10 when Second wins, 0 for a draw.
// The board is restored before returning.
func Minimax(b *game.Board, toMove game.Side) int {
	s := &searcher{board: b}
	return s.minimax(toMove)
}

// Analyze scores every empty cell for side and picks the best one. Ties go to
// the first cell in row-major order.
func Analyze(b *game.Board, side game.Side) (Analysis, error) {
	if !side.Valid() {
		return Analysis{}, fmt.Errorf("analyze: %w: %d", game.ErrInvalidSide, side)
	}
	if terminal, outcome := b.IsTerminal(); terminal {
		return Analysis{}, fmt.Errorf("analyze: %w: %s", game.ErrTerminalBoard, outcome)
	}

	s := &searcher{board: b}
	a := Analysis{Score: worstScore(side), Scores: make(map[game.Coordinate]int)}
	for i, c := range b.EmptyCells() {
		score := s.try(c, side, func() int {
			return s.minimax(side.Opponent())
		})
		a.Scores[c] = score
		if i == 0 || better(side, score, a.Score) {
			a.Move, a.Score = c, score
		}
	}
	a.Nodes = s.nodes
	return a, nil
}

// BestMove returns the optimal cell for side.
func BestMove(b *game.Board, side game.Side) (game.Coordinate, error) {
	a, err := Analyze(b, side)
	if err != nil {
		return game.Coordinate{}, err
	}
	return a.Move, nil
}
