package service

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-engine/mocks/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Bot game binds the other mark to the computer", func(t *testing.T) {
		// Given: a repository accepting writes
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		var stored *entity.Game
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Run(func(_ context.Context, game *entity.Game) { stored = game }).
			Return(nil).
			Once()

		// When: the human picks O against the bot
		game, player, err := gameService.CreateGame(ctx, &entity.Player{ID: "p1"}, entity.O, true)

		// Then: the bot holds X, X starts and the player points at the new game
		require.NoError(t, err)
		assert.Same(t, stored, game)
		assert.Equal(t, entity.WithBotType, game.Type)
		assert.Equal(t, entity.X, game.BotMark)
		assert.Equal(t, entity.X, game.Turn)
		assert.True(t, game.IsBotTurn())
		assert.Equal(t, game.ID, player.GameID)
		assert.Equal(t, "p1", game.PlayerID)
	})

	t.Run("Local game ignores the mark", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		game, _, err := gameService.CreateGame(ctx, &entity.Player{ID: "p1"}, entity.Empty, false)

		require.NoError(t, err)
		assert.Equal(t, entity.LocalType, game.Type)
		assert.False(t, game.IsWithBot())
	})

	t.Run("Invalid mark is rejected before storage", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		_, _, err := gameService.CreateGame(ctx, &entity.Player{ID: "p1"}, "Z", true)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		mockGameRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockGameRepo)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errRedisDown).
			Once()

		player := &entity.Player{ID: "p1"}
		_, _, err := gameService.CreateGame(ctx, player, entity.X, true)

		require.ErrorIs(t, err, errRedisDown)
		assert.Empty(t, player.GameID)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mockedService.NewMockgameRepo(t)
	gameService := NewGameService(mockGameRepo)

	mockGameRepo.EXPECT().
		GetByID(mock.Anything, "missing").
		Return(&entity.Game{}, apperror.ErrGameNotFound).
		Once()

	game, err := gameService.GetGameByID(ctx, "missing")

	require.ErrorIs(t, err, apperror.ErrGameNotFound)
	assert.Nil(t, game)
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mockedService.NewMockgameRepo(t)
	gameService := NewGameService(mockGameRepo)

	mockGameRepo.EXPECT().
		DeleteByID(mock.Anything, "game1").
		Return(nil).
		Once()

	require.NoError(t, gameService.DeleteGame(ctx, "game1"))
}
