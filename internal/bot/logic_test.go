package bot

import (
	"ctchen222/tictactoe/internal/game"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseMove_Medium(t *testing.T) {
	tests := []struct {
		name  string
		board string
		side  game.Side
		want  game.Coordinate
	}{
		{name: "Wins when it can", board: "XX_OO____", side: game.First, want: game.Coordinate{Row: 0, Col: 2}},
		{name: "Completes the top row", board: "XX__O____", side: game.First, want: game.Coordinate{Row: 0, Col: 2}},
		{name: "Prefers its own win over a block", board: "XX_OO_X__", side: game.Second, want: game.Coordinate{Row: 1, Col: 2}},
		{name: "Blocks the opponent", board: "XX_O_____", side: game.Second, want: game.Coordinate{Row: 0, Col: 2}},
		{name: "Falls back to a random cell", board: "X________", side: game.Second, want: game.Coordinate{Row: 0, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board)

			got, err := ChooseMove(b, tt.side, game.Medium, fixedRand{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.board, b.String())
		})
	}
}

func TestChooseMove_Easy(t *testing.T) {
	b := mustParse(t, "XO_X_O___")

	got, err := ChooseMove(b, game.First, game.Easy, fixedRand{v: 2})

	require.NoError(t, err)
	assert.Equal(t, game.Coordinate{Row: 2, Col: 0}, got)
}

func TestChooseMove_Hard(t *testing.T) {
	t.Run("Opens in the first cell", func(t *testing.T) {
		got, err := ChooseMove(game.NewBoard(), game.First, game.Hard, nil)
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{Row: 0, Col: 0}, got)
	})

	t.Run("Hard against Hard is a draw", func(t *testing.T) {
		b := game.NewBoard()
		side := game.First
		for {
			if terminal, _ := b.IsTerminal(); terminal {
				break
			}
			c, err := ChooseMove(b, side, game.Hard, nil)
			require.NoError(t, err)
			require.NoError(t, b.Apply(c, side))
			side = side.Opponent()
		}
		assert.Equal(t, game.Draw, b.Outcome())
	})
}

func TestChooseMove_Errors(t *testing.T) {
	tests := []struct {
		name       string
		board      string
		side       game.Side
		difficulty game.Difficulty
		wantErr    error
	}{
		{name: "User controlled side", board: "_________", side: game.First, difficulty: game.UserControlled, wantErr: ErrUserControlled},
		{name: "Unknown difficulty", board: "_________", side: game.First, difficulty: game.Difficulty(42), wantErr: ErrUnknownDifficulty},
		{name: "Won board", board: "XXXOO____", side: game.Second, difficulty: game.Hard, wantErr: game.ErrTerminalBoard},
		{name: "Full board", board: "XOXXOOOXX", side: game.Second, difficulty: game.Easy, wantErr: game.ErrTerminalBoard},
		{name: "Invalid side", board: "_________", side: game.Side(7), difficulty: game.Medium, wantErr: game.ErrInvalidSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ChooseMove(mustParse(t, tt.board), tt.side, tt.difficulty, fixedRand{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// reachable returns every non-terminal position reachable by legal play from
// the empty board, keyed by its string form, with the side to move.
func reachable() map[string]game.Side {
	seen := make(map[string]game.Side)
	var walk func(b *game.Board, side game.Side)
	walk = func(b *game.Board, side game.Side) {
		if terminal, _ := b.IsTerminal(); terminal {
			return
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = side
		for _, c := range b.EmptyCells() {
			b.Set(c, side.Mark())
			walk(b, side.Opponent())
			b.Set(c, game.Empty)
		}
	}
	walk(game.NewBoard(), game.First)
	return seen
}

func TestChooseMove_ReturnsEmptyCellOnEveryReachableBoard(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	positions := reachable()
	require.NotEmpty(t, positions)

	for key, side := range positions {
		b := mustParse(t, key)
		for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
			got, err := ChooseMove(b, side, d, rng)
			require.NoError(t, err, "%s %s", key, d)
			assert.True(t, slices.Contains(b.EmptyCells(), got), "%s %s chose %s", key, d, got)
			assert.Equal(t, key, b.String(), "%s %s changed the board", key, d)
		}
	}
}

func TestChooseMove_HardNeverLoses(t *testing.T) {
	for _, hard := range []game.Side{game.First, game.Second} {
		t.Run("Hard plays "+hard.String(), func(t *testing.T) {
			losses := 0
			var play func(b *game.Board, toMove game.Side)
			play = func(b *game.Board, toMove game.Side) {
				if terminal, outcome := b.IsTerminal(); terminal {
					if winner, ok := outcome.Winner(); ok && winner != hard {
						losses++
					}
					return
				}
				if toMove == hard {
					c, err := ChooseMove(b, hard, game.Hard, nil)
					require.NoError(t, err)
					b.Set(c, hard.Mark())
					play(b, toMove.Opponent())
					b.Set(c, game.Empty)
					return
				}
				for _, c := range b.EmptyCells() {
					b.Set(c, toMove.Mark())
					play(b, toMove.Opponent())
					b.Set(c, game.Empty)
				}
			}

			play(game.NewBoard(), game.First)

			assert.Zero(t, losses)
		})
	}
}
