package controller

import (
	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MoveController handles engine HTTP requests.
type MoveController struct {
	moveService service.MoveService
}

// NewMoveController creates a new MoveController.
func NewMoveController(moveService service.MoveService) *MoveController {
	return &MoveController{
		moveService: moveService,
	}
}

// Move handles the move suggestion endpoint.
func (mc *MoveController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := mc.moveService.SuggestMove(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, StatusFor(err), err.Error())
		return
	}

	response.SuccessResponse(c, res)
}

// Analysis handles the position analysis endpoint.
func (mc *MoveController) Analysis(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := mc.moveService.Analyze(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, StatusFor(err), err.Error())
		return
	}

	response.SuccessResponse(c, res)
}

// Match handles the computer-vs-computer simulation endpoint.
func (mc *MoveController) Match(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := mc.moveService.PlayMatch(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, StatusFor(err), err.Error())
		return
	}

	response.SuccessResponse(c, res)
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrTerminalBoard):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidPosition),
		errors.Is(err, game.ErrInvalidBoard),
		errors.Is(err, game.ErrInvalidSide),
		errors.Is(err, game.ErrInvalidDifficulty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
