package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
}

type gamePlayService interface {
	NewGame(ctx context.Context, playerID string, humanMark entity.Mark, withBot bool) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	Restart(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	MakeBotTurn(ctx context.Context, playerID string) (*entity.Game, error)
}

type newGameRequest struct {
	PlayerID string      `json:"player_id" binding:"required"`
	Mark     entity.Mark `json:"mark" binding:"omitempty,oneof=X O"`
	WithBot  bool        `json:"with_bot"`
}

type turnRequest struct {
	Row *int `json:"row" binding:"required,min=0,max=2"`
	Col *int `json:"col" binding:"required,min=0,max=2"`
}

type handlers struct {
	playerService   playerService
	gamePlayService gamePlayService
}

func (that *handlers) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (that *handlers) createPlayer(c *gin.Context) {
	player, err := that.playerService.CreatePlayer(c.Request.Context())
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, gin.H{"player": player})
}

// newGame starts a session. A bot holding X replies in the same call.
func (that *handlers) newGame(c *gin.Context) {
	var req newGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.WithBot && req.Mark == entity.Empty {
		req.Mark = entity.X
	}

	ctx := c.Request.Context()

	if _, err := that.gamePlayService.NewGame(ctx, req.PlayerID, req.Mark, req.WithBot); err != nil {
		ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	game, err := that.gamePlayService.MakeBotTurn(ctx, req.PlayerID)
	if err != nil {
		ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, gin.H{"game": game})
}

func (that *handlers) getGame(c *gin.Context) {
	game, err := that.gamePlayService.GetGame(c.Request.Context(), c.Param("playerID"))
	if err != nil {
		ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"game": game})
}

// makeTurn applies the human move and, in a bot game, the computer's reply.
func (that *handlers) makeTurn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	playerID := c.Param("playerID")

	game, err := that.gamePlayService.MakeTurn(ctx, playerID, *req.Row, *req.Col)
	if err != nil {
		ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	if game.IsBotTurn() {
		if game, err = that.gamePlayService.MakeBotTurn(ctx, playerID); err != nil {
			ErrorResponse(c, statusFor(err), err.Error())
			return
		}
	}

	SuccessResponse(c, http.StatusOK, gin.H{"game": game})
}

func (that *handlers) restart(c *gin.Context) {
	ctx := c.Request.Context()
	playerID := c.Param("playerID")

	if _, err := that.gamePlayService.Restart(ctx, playerID); err != nil {
		ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	game, err := that.gamePlayService.MakeBotTurn(ctx, playerID)
	if err != nil {
		ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"game": game})
}
