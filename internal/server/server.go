package server

import (
	"context"
	"ctchen222/tictactoe/internal/api/controller"
	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/validator"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

const writeWait = 10 * time.Second

type Server struct {
	moveController *controller.MoveController
	moveService    service.MoveService
	upgrader       websocket.Upgrader
}

func NewServer(moveService service.MoveService) (*Server, error) {
	if err := validator.RegisterGinRules(); err != nil {
		return nil, err
	}
	return &Server{
		moveController: controller.NewMoveController(moveService),
		moveService:    moveService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Engine builds the gin router with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), traceRequests(), logRequests())

	r.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponse(c, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/move", s.moveController.Move)
	v1.POST("/analysis", s.moveController.Analysis)
	v1.POST("/matches", s.moveController.Match)
	v1.GET("/matches/watch", s.handleWatch)

	return r
}

// handleWatch upgrades the connection and streams the events of a
// computer-vs-computer match as it is played, then closes normally.
func (s *Server) handleWatch(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWatch", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
	))
	defer span.End()

	var req models.MatchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(attribute.String("match.first", req.First), attribute.String("match.second", req.Second))

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}
	defer conn.Close()

	stream := match.ObserverFunc(func(_ context.Context, ev events.Event) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return conn.WriteJSON(ev)
	})

	res, err := s.moveService.PlayMatch(ctx, &req, stream)
	if err != nil {
		slog.WarnContext(ctx, "Watched match aborted", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "match aborted")
		closeWith(conn, websocket.CloseInternalServerErr, "match aborted")
		return
	}

	span.SetAttributes(attribute.String("match.id", res.ID))
	closeWith(conn, websocket.CloseNormalClosure, res.Outcome.String())
}

func closeWith(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		slog.Debug("Failed to send close frame", "error", err)
	}
}
