package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GamePlayService interface {
	// NewGame replaces the player's current session with a fresh one. X always starts,
	// so a bot holding X is on turn right away; callers follow up with MakeBotTurn or ThinkAndMove.
	NewGame(ctx context.Context, playerID string, humanMark entity.Mark, withBot bool) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	Restart(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	// MakeBotTurn commits the computer's move if it is on turn, otherwise returns the game as is.
	MakeBotTurn(ctx context.Context, playerID string) (*entity.Game, error)
	// ThinkAndMove is MakeBotTurn after the configured thinking time.
	ThinkAndMove(ctx context.Context, playerID string) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	thinkingTime time.Duration

	locks *playerLocks
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	thinkingTime time.Duration,
) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gamePlayService"),
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		thinkingTime:  thinkingTime,
		locks:         newPlayerLocks(),
	}
}

func (that *gamePlayService) NewGame(ctx context.Context, playerID string, humanMark entity.Mark, withBot bool) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame", "playerID", playerID)

	unlock := that.locks.lock(playerID)
	defer unlock()

	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	previousGameID := player.GameID

	game, player, err := that.gameService.CreateGame(ctx, player, humanMark, withBot)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if previousGameID != "" {
		that.cleanupGame(ctx, previousGameID)
	}

	log.Info("game created", "gameID", game.ID, "type", game.Type, "humanMark", game.HumanMark)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) Restart(ctx context.Context, playerID string) (*entity.Game, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.MarkFor(), row, col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.Kind, "winner", game.Outcome.Winner)
	}

	return game, nil
}

func (that *gamePlayService) MakeBotTurn(ctx context.Context, playerID string) (*entity.Game, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	// a caller that gave up while waiting for the lock must not move on a newer state
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bot turn cancelled: %w", err)
	}

	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !game.IsBotTurn() {
		return game, nil
	}

	if err = that.botService.MakeTurn(ctx, game); err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.Kind, "winner", game.Outcome.Winner)
	}

	return game, nil
}

func (that *gamePlayService) ThinkAndMove(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !game.IsBotTurn() {
		return game, nil
	}

	timer := time.NewTimer(that.thinkingTime)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("bot interrupted while thinking: %w", ctx.Err())
	case <-timer.C:
	}

	// the session may have been restarted, replaced or already answered during the pause
	return that.MakeBotTurn(ctx, playerID)
}

func (that *gamePlayService) cleanupGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "cleanupGame", "gameID", gameID)

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
	}
}
