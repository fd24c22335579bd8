package game

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the side length of the board.
const Size = 3

var (
	ErrInvalidSide       = errors.New("invalid side")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Cell is the state of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Side is one of the two competing marks. The zero value is not a side.
type Side uint8

const (
	First Side = iota + 1
	Second
)

// Valid reports whether s is First or Second.
func (s Side) Valid() bool {
	return s == First || s == Second
}

// Mark returns the cell state a side places on the board.
func (s Side) Mark() Cell {
	switch s {
	case First:
		return X
	case Second:
		return O
	default:
		return Empty
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	return s.Mark().String()
}

// ParseSide accepts "X" or "O" in either case.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return First, nil
	case "O":
		return Second, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, s)
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// SideOf returns the side owning a mark.
func SideOf(c Cell) (Side, bool) {
	switch c {
	case X:
		return First, true
	case O:
		return Second, true
	default:
		return 0, false
	}
}

// Coordinate identifies a cell by zero-based row and column.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InRange reports whether the coordinate lies on the board.
func (c Coordinate) InRange() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Outcome is the state of a match as seen from the board.
type Outcome uint8

const (
	Ongoing Outcome = iota
	FirstWins
	SecondWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first_wins"
	case SecondWins:
		return "second_wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{Ongoing, FirstWins, SecondWins, Draw} {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Winner returns the winning side, if any.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case FirstWins:
		return First, true
	case SecondWins:
		return Second, true
	default:
		return 0, false
	}
}

// Difficulty selects who controls a side: the user or one of the computer tiers.
type Difficulty uint8

const (
	UserControlled Difficulty = iota
	Easy
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	UserControlled: "user",
	Easy:           "easy",
	Medium:         "medium",
	Hard:           "hard",
}

// ParseDifficulty accepts user, easy, medium or hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// IsComputer reports whether the difficulty drives a computer strategy.
func (d Difficulty) IsComputer() bool {
	return d == Easy || d == Medium || d == Hard
}

func (d Difficulty) String() string {
	if n, ok := difficultyNames[d]; ok {
		return n
	}
	return fmt.Sprintf("difficulty(%d)", uint8(d))
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if _, ok := difficultyNames[d]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, d)
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
