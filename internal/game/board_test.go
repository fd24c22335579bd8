package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		terminal bool
		want     Outcome
	}{
		{name: "Empty board", board: "_________", want: Ongoing},
		{name: "Partial board", board: "X___O____", want: Ongoing},
		{name: "X wins - first row", board: "XXX_O___O", terminal: true, want: FirstWins},
		{name: "O wins - second column", board: "XO_XO__O_", terminal: true, want: SecondWins},
		{name: "X wins - main diagonal", board: "X___X___X", terminal: true, want: FirstWins},
		{name: "O wins - anti-diagonal", board: "__O_O_O__", terminal: true, want: SecondWins},
		{name: "Full board without a line", board: "XOXXOOOXX", terminal: true, want: Draw},
		{name: "Full board with a line", board: "XXXOOXOXO", terminal: true, want: FirstWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board)

			terminal, outcome := b.IsTerminal()

			assert.Equal(t, tt.terminal, terminal)
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, tt.want, b.Outcome())
		})
	}
}

func TestIsWinner(t *testing.T) {
	for i, line := range Lines {
		b := NewBoard()
		for _, c := range line {
			b.Set(c, O)
		}
		assert.True(t, b.IsWinner(Second), "line %d", i)
		assert.False(t, b.IsWinner(First), "line %d", i)
	}

	assert.False(t, NewBoard().IsWinner(Side(0)))
}

func TestIsFull(t *testing.T) {
	assert.False(t, NewBoard().IsFull())
	assert.False(t, mustParse(t, "XOXXOOOX_").IsFull())
	assert.True(t, mustParse(t, "XOXXOOOXX").IsFull())
}

func TestEmptyCells(t *testing.T) {
	b := mustParse(t, "X_O_X_OX_")

	got := b.EmptyCells()

	assert.Equal(t, []Coordinate{{0, 1}, {1, 0}, {1, 2}, {2, 2}}, got)

	// A fresh call reflects later mutations.
	b.Set(Coordinate{Row: 0, Col: 1}, O)
	assert.Len(t, b.EmptyCells(), 3)
	assert.Len(t, got, 4)
	assert.Len(t, NewBoard().EmptyCells(), Size*Size)
}

func TestApply(t *testing.T) {
	t.Run("Places the side's mark", func(t *testing.T) {
		b := NewBoard()

		require.NoError(t, b.Apply(Coordinate{Row: 1, Col: 2}, Second))

		assert.Equal(t, O, b.Get(Coordinate{Row: 1, Col: 2}))
		assert.Equal(t, "_____O___", b.String())
	})

	t.Run("Rejects an occupied cell without overwriting", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Apply(Coordinate{Row: 0, Col: 0}, First))

		err := b.Apply(Coordinate{Row: 0, Col: 0}, Second)

		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, X, b.Get(Coordinate{Row: 0, Col: 0}))
	})

	t.Run("Rejects coordinates off the board", func(t *testing.T) {
		for _, c := range []Coordinate{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			err := NewBoard().Apply(c, First)
			assert.ErrorIs(t, err, ErrCoordinateOutOfRange, "coordinate %s", c)
		}
	})

	t.Run("Rejects the zero side", func(t *testing.T) {
		err := NewBoard().Apply(Coordinate{}, Side(0))
		assert.ErrorIs(t, err, ErrInvalidSide)
	})
}

func TestTurn(t *testing.T) {
	assert.Equal(t, First, NewBoard().Turn())
	assert.Equal(t, Second, mustParse(t, "X________").Turn())
	assert.Equal(t, First, mustParse(t, "X___O____").Turn())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, mustParse(t, "_________").Validate())
	assert.NoError(t, mustParse(t, "XX_OO____").Validate())
	assert.ErrorIs(t, mustParse(t, "O________").Validate(), ErrInvalidBoard)
	assert.ErrorIs(t, mustParse(t, "XXX______").Validate(), ErrInvalidBoard)
	assert.ErrorIs(t, mustParse(t, "XXXOOO_X_").Validate(), ErrInvalidBoard)

	// The winner must have made the last move.
	assert.NoError(t, mustParse(t, "XXXOO____").Validate())
	assert.NoError(t, mustParse(t, "OOOXX_X__").Validate())
	assert.ErrorIs(t, mustParse(t, "OOOXX_XX_").Validate(), ErrInvalidBoard)
	assert.ErrorIs(t, mustParse(t, "XXXOO_O__").Validate(), ErrInvalidBoard)
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard("x o_OX   ")
	require.NoError(t, err)
	assert.Equal(t, "X_O_OX___", b.String())

	_, err = ParseBoard("XO")
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = ParseBoard("XO_XO_XOZ")
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestCloneAndReset(t *testing.T) {
	b := mustParse(t, "XO_______")

	cp := b.Clone()
	cp.Set(Coordinate{Row: 2, Col: 2}, X)

	assert.Equal(t, "XO_______", b.String())
	assert.Equal(t, "XO______X", cp.String())

	b.Reset()
	assert.Equal(t, *NewBoard(), *b)
}

func TestSideAndDifficulty(t *testing.T) {
	assert.Equal(t, Second, First.Opponent())
	assert.Equal(t, First, Second.Opponent())
	assert.Equal(t, X, First.Mark())
	assert.Equal(t, O, Second.Mark())
	assert.False(t, Side(0).Valid())

	side, err := ParseSide("o")
	require.NoError(t, err)
	assert.Equal(t, Second, side)
	_, err = ParseSide("Z")
	assert.ErrorIs(t, err, ErrInvalidSide)

	for _, name := range []string{"user", "EASY", "Medium", "hard"} {
		d, err := ParseDifficulty(name)
		require.NoError(t, err, name)
		assert.Equal(t, d != UserControlled, d.IsComputer())
	}
	_, err = ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	var d Difficulty
	require.NoError(t, d.UnmarshalText([]byte("hard")))
	assert.Equal(t, Hard, d)
}

func TestOutcomeText(t *testing.T) {
	for _, o := range []Outcome{Ongoing, FirstWins, SecondWins, Draw} {
		text, err := o.MarshalText()
		require.NoError(t, err)

		var got Outcome
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, o, got)
	}

	var o Outcome
	assert.Error(t, o.UnmarshalText([]byte("stalemate")))

	winner, ok := SecondWins.Winner()
	assert.True(t, ok)
	assert.Equal(t, Second, winner)
	_, ok = Draw.Winner()
	assert.False(t, ok)
}
