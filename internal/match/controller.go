package match

import (
	"context"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("match")
	meter  = otel.Meter("match")
)

var ErrIllegalMove = errors.New("computer produced an illegal move")

// Rejection reasons carried by move_rejected events.
const (
	ReasonCellOccupied = "cell_occupied"
	ReasonOutOfRange   = "out_of_range"
)

// Controller drives matches turn by turn.
type Controller struct {
	logger *slog.Logger

	moves        metric.Int64Counter
	matches      metric.Int64Counter
	moveDuration metric.Float64Histogram
}

// NewController creates a controller. A nil logger uses slog.Default.
func NewController(logger *slog.Logger) (*Controller, error) {
	if logger == nil {
		logger = slog.Default()
	}
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to a board"))
	if err != nil {
		return nil, fmt.Errorf("create moves counter: %w", err)
	}
	matches, err := meter.Int64Counter("tictactoe.matches",
		metric.WithDescription("Matches played to completion"))
	if err != nil {
		return nil, fmt.Errorf("create matches counter: %w", err)
	}
	moveDuration, err := meter.Float64Histogram("tictactoe.move.duration",
		metric.WithDescription("Time taken to choose a move"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("create move duration histogram: %w", err)
	}
	return &Controller{
		logger:       logger,
		moves:        moves,
		matches:      matches,
		moveDuration: moveDuration,
	}, nil
}

// Play runs m until the board is terminal, publishing every event to the
// observers. The context is checked between turns.
func (c *Controller) Play(ctx context.Context, m *Match, observers ...Observer) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("match.first", m.Player(game.First).Difficulty.String()),
		attribute.String("match.second", m.Player(game.Second).Difficulty.String()),
	))
	defer span.End()

	outcome, err := c.play(ctx, m, observers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "match aborted")
		c.logger.WarnContext(ctx, "Match aborted", "match.id", m.ID, "error", err)
		return outcome, err
	}

	span.SetAttributes(attribute.String("match.outcome", outcome.String()))
	c.matches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
	c.logger.DebugContext(ctx, "Match finished", "match.id", m.ID, "outcome", outcome.String(), "board", m.Board.String())
	return outcome, nil
}

func (c *Controller) play(ctx context.Context, m *Match, observers []Observer) (game.Outcome, error) {
	c.logger.DebugContext(ctx, "Match started", "match.id", m.ID,
		"player.first", m.Player(game.First).ID, "player.second", m.Player(game.Second).ID)
	err := c.publish(ctx, m, observers, events.MatchStarted, events.MatchStartedPayload{
		Players: m.playerInfo(),
		Board:   m.Board.String(),
	})
	if err != nil {
		return game.Ongoing, err
	}

	for {
		if terminal, outcome := m.Board.IsTerminal(); terminal {
			err := c.publish(ctx, m, observers, events.MatchFinished, events.MatchFinishedPayload{
				Outcome: outcome,
				Board:   m.Board.String(),
			})
			return outcome, err
		}
		if err := ctx.Err(); err != nil {
			return game.Ongoing, err
		}
		if err := c.playTurn(ctx, m, m.Board.Turn(), observers); err != nil {
			return game.Ongoing, err
		}
	}
}

func (c *Controller) playTurn(ctx context.Context, m *Match, side game.Side, observers []Observer) error {
	p := m.Player(side)
	ctx, span := tracer.Start(ctx, "match.playTurn", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("player.id", p.ID),
		attribute.String("player.side", side.String()),
		attribute.String("player.difficulty", p.Difficulty.String()),
	))
	defer span.End()

	err := c.publish(ctx, m, observers, events.TurnStarted, events.TurnStartedPayload{
		Side:       side,
		Difficulty: p.Difficulty,
		PlayerID:   p.ID,
	})
	if err != nil {
		return err
	}

	for {
		start := time.Now()
		coord, err := p.Mover.NextMove(ctx, m.Board, side)
		elapsed := float64(time.Since(start).Microseconds()) / 1000
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "next move failed")
			return fmt.Errorf("player %s: %w", p.ID, err)
		}

		if err := m.Board.Apply(coord, side); err != nil {
			reason, rejectable := rejectionReason(err)
			if p.IsBot() || !rejectable {
				span.RecordError(err)
				span.SetStatus(codes.Error, "illegal move")
				return fmt.Errorf("%w: player %s at %s: %w", ErrIllegalMove, p.ID, coord, err)
			}
			c.logger.DebugContext(ctx, "Move rejected", "match.id", m.ID, "player.id", p.ID, "move", coord.String(), "reason", reason)
			err := c.publish(ctx, m, observers, events.MoveRejected, events.MoveRejectedPayload{
				Side:   side,
				Row:    coord.Row,
				Col:    coord.Col,
				Reason: reason,
			})
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		m.Moves = append(m.Moves, coord)
		attrs := metric.WithAttributes(attribute.String("difficulty", p.Difficulty.String()))
		c.moves.Add(ctx, 1, attrs)
		c.moveDuration.Record(ctx, elapsed, attrs)
		span.SetAttributes(attribute.Int("move.row", coord.Row), attribute.Int("move.col", coord.Col))

		return c.publish(ctx, m, observers, events.MoveMade, events.MoveMadePayload{
			Side:  side,
			Row:   coord.Row,
			Col:   coord.Col,
			Board: m.Board.String(),
		})
	}
}

func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, game.ErrCellOccupied):
		return ReasonCellOccupied, true
	case errors.Is(err, game.ErrCoordinateOutOfRange):
		return ReasonOutOfRange, true
	default:
		return "", false
	}
}

func (c *Controller) publish(ctx context.Context, m *Match, observers []Observer, eventType string, payload any) error {
	ev, err := events.New(eventType, m.ID, payload)
	if err != nil {
		return err
	}
	for _, o := range observers {
		if err := o.OnEvent(ctx, ev); err != nil {
			return fmt.Errorf("observer %s: %w", eventType, err)
		}
	}
	return nil
}
