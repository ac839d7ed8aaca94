package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("tictactoe-engine/service")

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type moveSearcher interface {
	BestMove(grid *entity.Grid, maximizing, minimizing entity.Mark) minimax.Result
}

type botService struct {
	logger *slog.Logger
	engine moveSearcher

	moves metric.Int64Counter
	nodes metric.Int64Histogram
}

func NewBotService(logger *slog.Logger, engine moveSearcher) BotService {
	log := logger.With("component", "botService")
	meter := otel.Meter("tictactoe-engine/service")

	moves, err := meter.Int64Counter("bot.moves", metric.WithDescription("Moves committed by the computer"))
	if err != nil {
		log.Warn("failed to create bot.moves counter", "error", err)
		moves = noop.Int64Counter{}
	}

	nodes, err := meter.Int64Histogram("bot.search.nodes", metric.WithDescription("Positions visited per search"))
	if err != nil {
		log.Warn("failed to create bot.search.nodes histogram", "error", err)
		nodes = noop.Int64Histogram{}
	}

	return &botService{
		logger: log,
		engine: engine,
		moves:  moves,
		nodes:  nodes,
	}
}

// MakeTurn searches a copy of the grid and commits the chosen move for the bot's mark.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	ctx, span := tracer.Start(ctx, "BotService.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", game.ID),
		attribute.String("bot.mark", string(game.BotMark)),
	))
	defer span.End()

	if !game.IsBotTurn() {
		span.SetStatus(codes.Error, "not the bot's turn")
		return apperror.ErrNotYourTurn
	}

	grid := game.Grid
	result := that.engine.BestMove(&grid, game.BotMark, game.HumanMark)
	if !result.Found {
		span.SetStatus(codes.Error, "no empty cell")
		return apperror.ErrNoAvailableMoves
	}

	span.SetAttributes(
		attribute.Int("move.row", result.Move.Row),
		attribute.Int("move.col", result.Move.Col),
		attribute.Int("search.score", result.Score),
		attribute.Int("search.nodes", result.Nodes),
	)
	that.nodes.Record(ctx, int64(result.Nodes))

	if err := game.MakeTurn(game.BotMark, result.Move.Row, result.Move.Col); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to commit bot move")
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("mark", string(game.BotMark))))
	that.logger.Debug("bot moved",
		"gameID", game.ID, "row", result.Move.Row, "col", result.Move.Col,
		"score", result.Score, "nodes", result.Nodes)

	return nil
}
