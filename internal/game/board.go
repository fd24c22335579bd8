package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCellOccupied         = errors.New("cell already occupied")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrTerminalBoard        = errors.New("board is already terminal")
	ErrInvalidBoard         = errors.New("invalid board")
)

// Lines lists every winning triple in scan order: rows, columns, main diagonal,
// anti-diagonal.
var Lines = [8][Size]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid of cells, row-major.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// ParseBoard reads the nine-character form produced by String. Both '_' and
// ' ' denote an empty cell; marks are case-insensitive.
func ParseBoard(s string) (*Board, error) {
	if len(s) != Size*Size {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, Size*Size, len(s))
	}
	b := NewBoard()
	for i, ch := range strings.ToUpper(s) {
		var cell Cell
		switch ch {
		case 'X':
			cell = X
		case 'O':
			cell = O
		case '_', ' ':
			cell = Empty
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidBoard, ch, i)
		}
		b.cells[i/Size][i%Size] = cell
	}
	return b, nil
}

// Get returns the state of the cell at c.
func (b *Board) Get(c Coordinate) Cell {
	return b.cells[c.Row][c.Col]
}

// Set writes a cell unconditionally. c must be in range.
func (b *Board) Set(c Coordinate, cell Cell) {
	b.cells[c.Row][c.Col] = cell
}

// Apply places side's mark at c. It never overwrites a mark.
func (b *Board) Apply(c Coordinate, side Side) error {
	if !side.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	if !c.InRange() {
		return fmt.Errorf("%w: %s", ErrCoordinateOutOfRange, c)
	}
	if b.Get(c) != Empty {
		return fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}
	b.Set(c, side.Mark())
	return nil
}

// EmptyCells returns a fresh snapshot of the empty cells in row-major order.
func (b *Board) EmptyCells() []Coordinate {
	free := make([]Coordinate, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				free = append(free, Coordinate{Row: r, Col: c})
			}
		}
	}
	return free
}

// IsWinner reports whether any line is fully marked by side.
func (b *Board) IsWinner(side Side) bool {
	mark := side.Mark()
	if mark == Empty {
		return false
	}
	for _, line := range Lines {
		if b.Get(line[0]) == mark && b.Get(line[1]) == mark && b.Get(line[2]) == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// IsTerminal reports whether the match is over and how it ended.
func (b *Board) IsTerminal() (bool, Outcome) {
	switch {
	case b.IsWinner(First):
		return true, FirstWins
	case b.IsWinner(Second):
		return true, SecondWins
	case b.IsFull():
		return true, Draw
	default:
		return false, Ongoing
	}
}

// Outcome returns the terminal outcome, or Ongoing.
func (b *Board) Outcome() Outcome {
	_, outcome := b.IsTerminal()
	return outcome
}

// Counts returns the number of marks placed by each side.
func (b *Board) Counts() (first, second int) {
	for r := range Size {
		for c := range Size {
			switch b.cells[r][c] {
			case X:
				first++
			case O:
				second++
			}
		}
	}
	return first, second
}

// Turn returns the side to move. X moves first, so X is to move whenever it
// has not placed more marks than O.
func (b *Board) Turn() Side {
	first, second := b.Counts()
	if first <= second {
		return First
	}
	return Second
}

// Validate checks that the board is reachable by alternating play from an
// empty board with X moving first and no move after a win.
func (b *Board) Validate() error {
	first, second := b.Counts()
	if diff := first - second; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X marks and %d O marks", ErrInvalidBoard, first, second)
	}
	firstWon, secondWon := b.IsWinner(First), b.IsWinner(Second)
	switch {
	case firstWon && secondWon:
		return fmt.Errorf("%w: both sides have a line", ErrInvalidBoard)
	case firstWon && first != second+1:
		return fmt.Errorf("%w: play continued after X won", ErrInvalidBoard)
	case secondWon && first != second:
		return fmt.Errorf("%w: play continued after O won", ErrInvalidBoard)
	}
	return nil
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = [Size][Size]Cell{}
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// String returns the nine-character row-major form, '_' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				sb.WriteByte('_')
				continue
			}
			sb.WriteString(b.cells[r][c].String())
		}
	}
	return sb.String()
}
