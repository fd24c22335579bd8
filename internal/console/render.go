package console

import (
	"ctchen222/tictactoe/internal/game"
	"strings"
)

// Render draws the board framed by dashes, one row per line.
func Render(b *game.Board) string {
	border := strings.Repeat("-", game.Size*2+3)

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for r := range game.Size {
		sb.WriteString("| ")
		for c := range game.Size {
			sb.WriteString(b.Get(game.Coordinate{Row: r, Col: c}).String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteByte('\n')
	return sb.String()
}

func resultLine(o game.Outcome) string {
	switch o {
	case game.FirstWins:
		return "X wins"
	case game.SecondWins:
		return "O wins"
	default:
		return "Draw"
	}
}
