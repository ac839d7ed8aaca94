package service

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	mockedService "github.com/rocketscienceinc/tictactoe-engine/mocks/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryGames keeps copies so callers cannot mutate stored state, like Redis.
type memoryGames struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

func (that *memoryGames) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored := *game
	stored.WinningCells = slices.Clone(game.WinningCells)
	that.games[game.ID] = stored

	return nil
}

func (that *memoryGames) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return &entity.Game{}, apperror.ErrGameNotFound
	}
	game.WinningCells = slices.Clone(game.WinningCells)

	return &game, nil
}

func (that *memoryGames) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}
	delete(that.games, id)

	return nil
}

type memoryPlayers struct {
	mu      sync.Mutex
	players map[string]entity.Player
}

func (that *memoryPlayers) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.players[player.ID] = *player

	return nil
}

func (that *memoryPlayers) GetByID(_ context.Context, id string) (*entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player, ok := that.players[id]
	if !ok {
		return &entity.Player{}, apperror.ErrPlayerNotFound
	}

	return &player, nil
}

type gamePlayFixture struct {
	service GamePlayService
	games   *memoryGames
	player  *entity.Player
}

func newGamePlayFixture(t *testing.T, botService BotService, thinkingTime time.Duration) *gamePlayFixture {
	t.Helper()

	games := &memoryGames{games: map[string]entity.Game{}}
	players := &memoryPlayers{players: map[string]entity.Player{}}

	playerService := NewPlayerService(players)
	player, err := playerService.CreatePlayer(context.Background())
	require.NoError(t, err)

	if botService == nil {
		botService = NewBotService(testLogger, minimax.New())
	}

	return &gamePlayFixture{
		service: NewGamePlayService(testLogger, playerService, NewGameService(games), botService, thinkingTime),
		games:   games,
		player:  player,
	}
}

func TestGamePlayService_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Human holding X moves first", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, 0)

		game, err := fx.service.NewGame(ctx, fx.player.ID, entity.X, true)

		require.NoError(t, err)
		assert.Equal(t, entity.X, game.Turn)
		assert.False(t, game.IsBotTurn())

		stored, err := fx.service.GetGame(ctx, fx.player.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Bot holding X is on turn right away", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, 0)

		game, err := fx.service.NewGame(ctx, fx.player.ID, entity.O, true)
		require.NoError(t, err)
		require.True(t, game.IsBotTurn())

		// When: the human tries to move first
		_, err = fx.service.MakeTurn(ctx, fx.player.ID, 0, 0)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// When: the bot moves
		game, err = fx.service.MakeBotTurn(ctx, fx.player.ID)

		// Then: exactly one X is on the grid and the human is on turn
		require.NoError(t, err)
		assert.Equal(t, 8, game.Grid.CountEmpty())
		assert.Equal(t, entity.O, game.Turn)
	})

	t.Run("Replaces the previous session", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, 0)

		first, err := fx.service.NewGame(ctx, fx.player.ID, entity.X, true)
		require.NoError(t, err)

		second, err := fx.service.NewGame(ctx, fx.player.ID, entity.X, false)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		_, err = fx.games.GetByID(ctx, first.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Unknown player", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, 0)

		_, err := fx.service.NewGame(ctx, "ghost", entity.X, true)

		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})
}

func TestGamePlayService_GetGame(t *testing.T) {
	fx := newGamePlayFixture(t, nil, 0)

	_, err := fx.service.GetGame(context.Background(), fx.player.ID)

	require.ErrorIs(t, err, apperror.ErrNoActiveGame)
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Local game alternates marks", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, 0)
		_, err := fx.service.NewGame(ctx, fx.player.ID, entity.Empty, false)
		require.NoError(t, err)

		_, err = fx.service.MakeTurn(ctx, fx.player.ID, 0, 0)
		require.NoError(t, err)
		game, err := fx.service.MakeTurn(ctx, fx.player.ID, 1, 1)
		require.NoError(t, err)

		assert.Equal(t, entity.X, game.Grid[0][0])
		assert.Equal(t, entity.O, game.Grid[1][1])
		assert.Equal(t, entity.X, game.Turn)
	})

	t.Run("Occupied cell leaves the stored game unchanged", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, 0)
		_, err := fx.service.NewGame(ctx, fx.player.ID, entity.Empty, false)
		require.NoError(t, err)
		before, err := fx.service.MakeTurn(ctx, fx.player.ID, 0, 0)
		require.NoError(t, err)

		_, err = fx.service.MakeTurn(ctx, fx.player.ID, 0, 0)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		after, err := fx.service.GetGame(ctx, fx.player.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Bot failure is not persisted", func(t *testing.T) {
		mockBot := mockedService.NewMockBotService(t)
		fx := newGamePlayFixture(t, mockBot, 0)
		_, err := fx.service.NewGame(ctx, fx.player.ID, entity.X, true)
		require.NoError(t, err)
		_, err = fx.service.MakeTurn(ctx, fx.player.ID, 1, 1)
		require.NoError(t, err)

		mockBot.EXPECT().
			MakeTurn(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Run(func(_ context.Context, game *entity.Game) { game.Grid[0][0] = entity.O }).
			Return(apperror.ErrNoAvailableMoves).
			Once()

		_, err = fx.service.MakeBotTurn(ctx, fx.player.ID)
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)

		stored, err := fx.service.GetGame(ctx, fx.player.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, stored.Grid[0][0])
	})
}

func TestGamePlayService_Restart(t *testing.T) {
	ctx := context.Background()
	fx := newGamePlayFixture(t, nil, 0)

	created, err := fx.service.NewGame(ctx, fx.player.ID, entity.O, true)
	require.NoError(t, err)
	_, err = fx.service.MakeBotTurn(ctx, fx.player.ID)
	require.NoError(t, err)

	game, err := fx.service.Restart(ctx, fx.player.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, game.ID)
	assert.Equal(t, entity.Grid{}, game.Grid)
	assert.Equal(t, entity.X, game.BotMark)
	assert.True(t, game.IsBotTurn())
}

func TestGamePlayService_ThinkAndMove(t *testing.T) {
	t.Run("Moves after the pause", func(t *testing.T) {
		ctx := context.Background()
		fx := newGamePlayFixture(t, nil, 10*time.Millisecond)
		_, err := fx.service.NewGame(ctx, fx.player.ID, entity.O, true)
		require.NoError(t, err)

		game, err := fx.service.ThinkAndMove(ctx, fx.player.ID)

		require.NoError(t, err)
		assert.Equal(t, 8, game.Grid.CountEmpty())
	})

	t.Run("Returns immediately when the human is on turn", func(t *testing.T) {
		ctx := context.Background()
		fx := newGamePlayFixture(t, nil, time.Hour)
		_, err := fx.service.NewGame(ctx, fx.player.ID, entity.X, true)
		require.NoError(t, err)

		game, err := fx.service.ThinkAndMove(ctx, fx.player.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.Grid{}, game.Grid)
	})

	t.Run("Cancellation aborts without a move", func(t *testing.T) {
		fx := newGamePlayFixture(t, nil, time.Hour)
		_, err := fx.service.NewGame(context.Background(), fx.player.ID, entity.O, true)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fx.service.ThinkAndMove(ctx, fx.player.ID)
		require.ErrorIs(t, err, context.Canceled)

		stored, err := fx.service.GetGame(context.Background(), fx.player.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Grid{}, stored.Grid)
	})
}

func TestGamePlayService_ConcurrentBotReplies(t *testing.T) {
	ctx := context.Background()

	for range 20 {
		// Given: the bot holds X and two replies are pending for the same session
		fx := newGamePlayFixture(t, nil, 10*time.Millisecond)
		_, err := fx.service.NewGame(ctx, fx.player.ID, entity.O, true)
		require.NoError(t, err)

		var wg sync.WaitGroup
		games := make([]*entity.Game, 2)
		errs := make([]error, 2)

		// When: both finish thinking at about the same time
		for i := range games {
			wg.Add(1)
			go func() {
				defer wg.Done()
				games[i], errs[i] = fx.service.ThinkAndMove(ctx, fx.player.ID)
			}()
		}
		wg.Wait()

		// Then: one opening is committed and both callers see the same grid
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.Equal(t, 8, games[0].Grid.CountEmpty())
		assert.Equal(t, games[0].Grid, games[1].Grid)

		stored, err := fx.service.GetGame(ctx, fx.player.ID)
		require.NoError(t, err)
		assert.Equal(t, games[0].Grid, stored.Grid)
		assert.Equal(t, entity.O, stored.Turn)
	}
}

func TestGamePlayService_MakeBotTurn_CancelledCaller(t *testing.T) {
	fx := newGamePlayFixture(t, nil, 0)
	_, err := fx.service.NewGame(context.Background(), fx.player.ID, entity.O, true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fx.service.MakeBotTurn(ctx, fx.player.ID)
	require.ErrorIs(t, err, context.Canceled)

	stored, err := fx.service.GetGame(context.Background(), fx.player.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Grid{}, stored.Grid)
}

func TestGamePlayService_BotNeverLoses(t *testing.T) {
	ctx := context.Background()

	for _, humanMark := range []entity.Mark{entity.X, entity.O} {
		for seed := range uint64(10) {
			fx := newGamePlayFixture(t, nil, 0)
			rnd := rand.New(rand.NewPCG(seed, seed))

			game, err := fx.service.NewGame(ctx, fx.player.ID, humanMark, true)
			require.NoError(t, err)

			for game.IsOngoing() {
				if game.IsBotTurn() {
					game, err = fx.service.MakeBotTurn(ctx, fx.player.ID)
					require.NoError(t, err)
					continue
				}

				free := game.Grid.EmptyCells()
				cell := free[rnd.IntN(len(free))]
				game, err = fx.service.MakeTurn(ctx, fx.player.ID, cell.Row, cell.Col)
				require.NoError(t, err)
			}

			assert.NotEqual(t, entity.Win(humanMark), game.Outcome, "human %s seed %d", humanMark, seed)
		}
	}
}
