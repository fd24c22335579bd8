package console

import (
	"ctchen222/tictactoe/internal/game"
	"errors"
	"strings"
)

var ErrBadParameters = errors.New("bad parameters")

// Command is a parsed line of the menu prompt.
type Command struct {
	Exit   bool
	First  game.Difficulty
	Second game.Difficulty
}

// ParseCommand reads "exit" or "start <first> <second>", where each side is
// user, easy, medium or hard. Extra tokens after a complete command are ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrBadParameters
	}

	switch fields[0] {
	case "exit":
		return Command{Exit: true}, nil
	case "start":
		if len(fields) < 3 {
			return Command{}, ErrBadParameters
		}
		first, err := game.ParseDifficulty(fields[1])
		if err != nil {
			return Command{}, errors.Join(ErrBadParameters, err)
		}
		second, err := game.ParseDifficulty(fields[2])
		if err != nil {
			return Command{}, errors.Join(ErrBadParameters, err)
		}
		return Command{First: first, Second: second}, nil
	default:
		return Command{}, ErrBadParameters
	}
}
