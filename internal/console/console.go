package console

import (
	"bufio"
	"context"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/player"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const (
	msgInputCommand   = "Input command: "
	msgBadParameters  = "Bad parameters!"
	msgEnterCoords    = "Enter the coordinates: "
	msgNotNumbers     = "You should enter numbers!"
	msgOutOfRange     = "Coordinates should be from 1 to 3!"
	msgCellOccupied   = "This cell is occupied! Choose another one!"
	msgMakingMoveTmpl = "Making move level %q\n"
)

// Console plays matches over a line-based text interface.
type Console struct {
	scanner    *bufio.Scanner
	out        io.Writer
	controller *match.Controller
	rng        bot.Rand
}

func New(in io.Reader, out io.Writer, controller *match.Controller, rng bot.Rand) *Console {
	return &Console{
		scanner:    bufio.NewScanner(in),
		out:        out,
		controller: controller,
		rng:        rng,
	}
}

// Run reads commands until "exit" or the end of input.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, msgInputCommand)
		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			slog.Debug("Rejected command", "command", line, "error", err)
			fmt.Fprintln(c.out, msgBadParameters)
			continue
		}
		if cmd.Exit {
			return nil
		}

		err = c.play(ctx, cmd)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) play(ctx context.Context, cmd Command) error {
	first, err := c.newPlayer(cmd.First, game.First)
	if err != nil {
		return err
	}
	second, err := c.newPlayer(cmd.Second, game.Second)
	if err != nil {
		return err
	}
	m, err := match.New(first, second)
	if err != nil {
		return err
	}
	_, err = c.controller.Play(ctx, m, c)
	return err
}

func (c *Console) newPlayer(d game.Difficulty, side game.Side) (*player.Player, error) {
	if d == game.UserControlled {
		return player.NewPlayer("user-"+side.String(), d, &humanMover{console: c}), nil
	}
	return bot.NewBotPlayer(d, c.rng)
}

// OnEvent prints the match as it unfolds.
func (c *Console) OnEvent(_ context.Context, ev events.Event) error {
	var err error
	switch ev.Type {
	case events.MatchStarted:
		var p events.MatchStartedPayload
		if err := ev.Decode(&p); err != nil {
			return err
		}
		err = c.printBoard(p.Board)
	case events.TurnStarted:
		var p events.TurnStartedPayload
		if err := ev.Decode(&p); err != nil {
			return err
		}
		if p.Difficulty.IsComputer() {
			_, err = fmt.Fprintf(c.out, msgMakingMoveTmpl, p.Difficulty.String())
		}
	case events.MoveMade:
		var p events.MoveMadePayload
		if err := ev.Decode(&p); err != nil {
			return err
		}
		err = c.printBoard(p.Board)
	case events.MoveRejected:
		var p events.MoveRejectedPayload
		if err := ev.Decode(&p); err != nil {
			return err
		}
		msg := msgCellOccupied
		if p.Reason == match.ReasonOutOfRange {
			msg = msgOutOfRange
		}
		_, err = fmt.Fprintln(c.out, msg)
	case events.MatchFinished:
		var p events.MatchFinishedPayload
		if err := ev.Decode(&p); err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.out, "%s\n\n", resultLine(p.Outcome))
	}
	return err
}

func (c *Console) printBoard(s string) error {
	b, err := game.ParseBoard(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, Render(b))
	return err
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// humanMover asks for 1-based coordinates until it gets two numbers on the board.
type humanMover struct {
	console *Console
}

func (h *humanMover) NextMove(ctx context.Context, _ *game.Board, _ game.Side) (game.Coordinate, error) {
	out := h.console.out
	for {
		if err := ctx.Err(); err != nil {
			return game.Coordinate{}, err
		}
		fmt.Fprint(out, msgEnterCoords)
		line, err := h.console.readLine()
		if err != nil {
			return game.Coordinate{}, err
		}

		row, col, ok := parseCoordinates(line)
		if !ok {
			fmt.Fprintln(out, msgNotNumbers)
			continue
		}
		coord := game.Coordinate{Row: row - 1, Col: col - 1}
		if !coord.InRange() {
			fmt.Fprintln(out, msgOutOfRange)
			continue
		}
		return coord, nil
	}
}

func parseCoordinates(line string) (row, col int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	col, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
