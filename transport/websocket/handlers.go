package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errNotConnected = errors.New("send connect first")

// handleConnect binds the socket to a player, creating one when no known id is given.
// A player with a running game gets it back.
func (that *Server) handleConnect(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleConnect")

	var req ConnectRequest
	if err := decodePayload(msg, &req); err != nil {
		return c.sendError(msg.Action, "invalid payload: "+err.Error())
	}

	player, err := that.getOrCreatePlayer(ctx, req.PlayerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return c.sendError(msg.Action, "failed to create a new player")
	}

	c.bind(player.ID)
	log = log.With("playerID", player.ID)

	payload := ResponsePayload{Player: player}

	if player.GameID != "" {
		game, err := that.gamePlayService.GetGame(ctx, player.ID)
		switch {
		case err == nil:
			payload.Game = game
		case errors.Is(err, apperror.ErrGameNotFound):
			log.Info("previous game expired", "gameID", player.GameID)
		default:
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return c.sendError(msg.Action, "failed to get the game")
		}
	}

	if err = c.send(msg.Action, payload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player")

	if payload.Game != nil {
		that.botReply(ctx, c, player.ID, payload.Game)
	}

	return nil
}

func (that *Server) getOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID != "" {
		player, err := that.playerService.GetByID(ctx, playerID)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, apperror.ErrPlayerNotFound) {
			return nil, err
		}
	}

	return that.playerService.CreatePlayer(ctx)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleNewGame")

	playerID := c.player()
	if playerID == "" {
		return c.sendError(msg.Action, errNotConnected.Error())
	}

	var req NewGameRequest
	if err := decodePayload(msg, &req); err != nil {
		return c.sendError(msg.Action, "invalid payload: "+err.Error())
	}

	if req.WithBot && req.Mark == entity.Empty {
		req.Mark = entity.X
	}

	game, err := that.gamePlayService.NewGame(ctx, playerID, req.Mark, req.WithBot)
	if err != nil {
		log.Error("failed to create game", "playerID", playerID, "error", err)
		return c.sendError(msg.Action, "failed to create a new game")
	}

	if err = c.send(msg.Action, ResponsePayload{Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.botReply(ctx, c, playerID, game)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleGameTurn")

	playerID := c.player()
	if playerID == "" {
		return c.sendError(msg.Action, errNotConnected.Error())
	}

	var req TurnRequest
	if err := decodePayload(msg, &req); err != nil {
		return c.sendError(msg.Action, "invalid payload: "+err.Error())
	}

	game, err := that.gamePlayService.MakeTurn(ctx, playerID, *req.Row, *req.Col)
	if err != nil {
		log.Info("turn rejected", "playerID", playerID, "error", err)
		return c.sendError(msg.Action, turnErrorMessage(err))
	}

	if err = c.send(msg.Action, ResponsePayload{Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.botReply(ctx, c, playerID, game)

	return nil
}

func (that *Server) handleRestart(ctx context.Context, msg *Message, c *client) error {
	playerID := c.player()
	if playerID == "" {
		return c.sendError(msg.Action, errNotConnected.Error())
	}

	game, err := that.gamePlayService.Restart(ctx, playerID)
	if err != nil {
		that.logger.Error("failed to restart game", "playerID", playerID, "error", err)
		return c.sendError(msg.Action, "failed to restart the game")
	}

	if err = c.send(msg.Action, ResponsePayload{Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.botReply(ctx, c, playerID, game)

	return nil
}

// botReply lets the computer think in the background and pushes the game after its move.
// A newer reply on the same socket supersedes this one, and a superseded reply stays silent.
func (that *Server) botReply(ctx context.Context, c *client, playerID string, game *entity.Game) {
	if !game.IsBotTurn() {
		return
	}

	c.replyInBackground(ctx, func(ctx context.Context) {
		log := that.logger.With("method", "botReply", "playerID", playerID)

		updated, err := that.gamePlayService.ThinkAndMove(ctx, playerID)
		if ctx.Err() != nil {
			log.Debug("bot reply superseded", "error", err)
			return
		}

		if err != nil {
			log.Error("bot failed to move", "error", err)
			_ = c.sendError(actionGameUpdate, "bot failed to move")
			return
		}

		if err = c.send(actionGameUpdate, ResponsePayload{Game: updated}); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	})
}

func turnErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return apperror.ErrCellOccupied.Error()
	case errors.Is(err, apperror.ErrNotYourTurn):
		return apperror.ErrNotYourTurn.Error()
	case errors.Is(err, apperror.ErrGameFinished):
		return apperror.ErrGameFinished.Error()
	case errors.Is(err, apperror.ErrInvalidCell):
		return apperror.ErrInvalidCell.Error()
	case errors.Is(err, apperror.ErrNoActiveGame):
		return apperror.ErrNoActiveGame.Error()
	default:
		return "failed to make turn"
	}
}
