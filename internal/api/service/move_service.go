package service

import (
	"context"
	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

var ErrInvalidPosition = errors.New("invalid position")

// MoveService defines the engine operations exposed over HTTP.
type MoveService interface {
	SuggestMove(ctx context.Context, req *models.MoveRequest) (*models.MoveResponse, error)
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error)
	PlayMatch(ctx context.Context, req *models.MatchRequest, observers ...match.Observer) (*models.MatchResponse, error)
}

type moveService struct {
	controller *match.Controller
	seed       uint64
}

// NewMoveService creates a new MoveService. A non-zero seed makes requests
// without their own seed reproducible.
func NewMoveService(controller *match.Controller, seed uint64) MoveService {
	return &moveService{controller: controller, seed: seed}
}

// SuggestMove chooses and applies a computer move for the side to play.
func (s *moveService) SuggestMove(ctx context.Context, req *models.MoveRequest) (*models.MoveResponse, error) {
	b, side, err := position(req.Board, req.Side)
	if err != nil {
		return nil, err
	}
	difficulty, err := game.ParseDifficulty(req.Difficulty)
	if err != nil || !difficulty.IsComputer() {
		return nil, fmt.Errorf("%w: difficulty %q", ErrInvalidPosition, req.Difficulty)
	}

	seed := s.resolveSeed(req.Seed)
	coord, err := bot.ChooseMove(b, side, difficulty, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, err
	}
	if err := b.Apply(coord, side); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Suggested move", "board", b.String(), "bot.difficulty", difficulty.String(), "move", coord.String())
	return &models.MoveResponse{
		Row:     coord.Row,
		Col:     coord.Col,
		Side:    side,
		Board:   b.String(),
		Outcome: b.Outcome(),
	}, nil
}

// Analyze returns the minimax score of every empty cell.
func (s *moveService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error) {
	b, side, err := position(req.Board, req.Side)
	if err != nil {
		return nil, err
	}

	a, err := bot.Analyze(b, side)
	if err != nil {
		return nil, err
	}

	cells := make([]models.CellScore, 0, len(a.Scores))
	for _, c := range b.EmptyCells() {
		cells = append(cells, models.CellScore{Row: c.Row, Col: c.Col, Score: a.Scores[c]})
	}
	slog.DebugContext(ctx, "Analyzed position", "board", b.String(), "search.nodes", a.Nodes)
	return &models.AnalysisResponse{
		Side:  side,
		Best:  a.Move,
		Score: a.Score,
		Cells: cells,
		Nodes: a.Nodes,
	}, nil
}

// PlayMatch plays two computer tiers against each other to the end.
func (s *moveService) PlayMatch(ctx context.Context, req *models.MatchRequest, observers ...match.Observer) (*models.MatchResponse, error) {
	first, err := game.ParseDifficulty(req.First)
	if err != nil {
		return nil, fmt.Errorf("%w: first %q", ErrInvalidPosition, req.First)
	}
	second, err := game.ParseDifficulty(req.Second)
	if err != nil {
		return nil, fmt.Errorf("%w: second %q", ErrInvalidPosition, req.Second)
	}

	firstRng, secondRng := matchRands(s.resolveSeed(req.Seed))
	p1, err := bot.NewBotPlayer(first, firstRng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	p2, err := bot.NewBotPlayer(second, secondRng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	m, err := match.New(p1, p2)
	if err != nil {
		return nil, err
	}

	rec := &match.Recorder{}
	outcome, err := s.controller.Play(ctx, m, append([]match.Observer{rec}, observers...)...)
	if err != nil {
		return nil, err
	}
	return &models.MatchResponse{
		ID:      m.ID,
		Outcome: outcome,
		Board:   m.Board.String(),
		Events:  rec.Events,
	}, nil
}

// resolveSeed prefers the request seed, then the service seed, then a random one.
func (s *moveService) resolveSeed(seed uint64) uint64 {
	if seed == 0 {
		seed = s.seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// matchRands derives an independent stream for each side of a match.
func matchRands(seed uint64) (first, second *rand.Rand) {
	return rand.New(rand.NewPCG(seed, seed)), rand.New(rand.NewPCG(seed, seed+1))
}

// position parses a board and the side to analyse. The side defaults to the
// side whose turn it is and must match it when given.
func position(board, sideName string) (*game.Board, game.Side, error) {
	b, err := game.ParseBoard(board)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	if err := b.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}

	side := b.Turn()
	if sideName != "" {
		requested, err := game.ParseSide(sideName)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
		}
		if requested != side {
			return nil, 0, fmt.Errorf("%w: it is %s's turn", ErrInvalidPosition, side)
		}
	}
	return b, side, nil
}
