package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedWebsocket "github.com/rocketscienceinc/tictactoe-engine/mocks/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const playerID = "6f1c2a7e-3b1d-4c8e-9a55-2f0d1e7b9c10"

type wsFixture struct {
	players  *mockedWebsocket.MockplayerService
	gamePlay *mockedWebsocket.MockgamePlayService
	conn     *websocket.Conn
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()

	players := mockedWebsocket.NewMockplayerService(t)
	gamePlay := mockedWebsocket.NewMockgamePlayService(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := httptest.NewServer(New(logger, players, gamePlay).Handler())
	t.Cleanup(srv.Close)

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return &wsFixture{
		players:  players,
		gamePlay: gamePlay,
		conn:     conn,
	}
}

func (that *wsFixture) send(t *testing.T, action string, payload any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, that.conn.WriteJSON(Message{Action: action, Payload: body}))
}

func (that *wsFixture) receive(t *testing.T) (string, ResponsePayload) {
	t.Helper()

	require.NoError(t, that.conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, that.conn.ReadJSON(&msg))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return msg.Action, payload
}

func (that *wsFixture) connect(t *testing.T, player *entity.Player) {
	t.Helper()

	that.players.EXPECT().
		GetByID(mock.Anything, player.ID).
		Return(player, nil).
		Once()

	that.send(t, actionConnect, ConnectRequest{PlayerID: player.ID})

	action, payload := that.receive(t)
	require.Equal(t, actionConnect, action)
	require.Equal(t, player.ID, payload.Player.ID)
}

func TestConnect(t *testing.T) {
	t.Run("Creates a player when none is given", func(t *testing.T) {
		fx := newWSFixture(t)

		fx.players.EXPECT().
			CreatePlayer(mock.Anything).
			Return(&entity.Player{ID: playerID}, nil).
			Once()

		fx.send(t, actionConnect, struct{}{})

		action, payload := fx.receive(t)
		assert.Equal(t, actionConnect, action)
		assert.Equal(t, playerID, payload.Player.ID)
		assert.Nil(t, payload.Game)
	})

	t.Run("Unknown id gets a fresh player", func(t *testing.T) {
		fx := newWSFixture(t)

		fx.players.EXPECT().
			GetByID(mock.Anything, playerID).
			Return(&entity.Player{}, apperror.ErrPlayerNotFound).
			Once()
		fx.players.EXPECT().
			CreatePlayer(mock.Anything).
			Return(&entity.Player{ID: "fresh"}, nil).
			Once()

		fx.send(t, actionConnect, ConnectRequest{PlayerID: playerID})

		_, payload := fx.receive(t)
		assert.Equal(t, "fresh", payload.Player.ID)
	})

	t.Run("Existing game is sent back", func(t *testing.T) {
		fx := newWSFixture(t)
		game := entity.NewGame("g1", playerID, entity.LocalType)

		fx.players.EXPECT().
			GetByID(mock.Anything, playerID).
			Return(&entity.Player{ID: playerID, GameID: "g1"}, nil).
			Once()
		fx.gamePlay.EXPECT().
			GetGame(mock.Anything, playerID).
			Return(game, nil).
			Once()

		fx.send(t, actionConnect, ConnectRequest{PlayerID: playerID})

		_, payload := fx.receive(t)
		require.NotNil(t, payload.Game)
		assert.Equal(t, "g1", payload.Game.ID)
	})

	t.Run("Malformed id is rejected", func(t *testing.T) {
		fx := newWSFixture(t)

		fx.send(t, actionConnect, ConnectRequest{PlayerID: "not-a-uuid"})

		action, payload := fx.receive(t)
		assert.Equal(t, actionConnect, action)
		assert.Contains(t, payload.Error, "invalid payload")
	})
}

func TestNewGame_BotThinksThenMoves(t *testing.T) {
	fx := newWSFixture(t)
	fx.connect(t, &entity.Player{ID: playerID})

	// Given: the human picks O, so the bot holds X and opens
	created := entity.NewGame("g1", playerID, entity.LocalType)
	require.NoError(t, created.BindBot(entity.O))

	moved := *created
	require.NoError(t, moved.MakeTurn(entity.X, 1, 1))

	fx.gamePlay.EXPECT().
		NewGame(mock.Anything, playerID, entity.O, true).
		Return(created, nil).
		Once()
	fx.gamePlay.EXPECT().
		ThinkAndMove(mock.Anything, playerID).
		Return(&moved, nil).
		Once()

	// When: starting the game
	fx.send(t, actionNewGame, NewGameRequest{Mark: entity.O, WithBot: true})

	// Then: the empty grid arrives first, the bot's move after
	action, payload := fx.receive(t)
	assert.Equal(t, actionNewGame, action)
	assert.Equal(t, entity.Grid{}, payload.Game.Grid)

	action, payload = fx.receive(t)
	assert.Equal(t, actionGameUpdate, action)
	assert.Equal(t, entity.X, payload.Game.Grid[1][1])
	assert.Equal(t, entity.O, payload.Game.Turn)
}

func TestRestartDuringThinking_SingleBotReply(t *testing.T) {
	fx := newWSFixture(t)
	fx.connect(t, &entity.Player{ID: playerID})

	// Given: the bot holds X and thinks for a while before opening
	created := entity.NewGame("g1", playerID, entity.LocalType)
	require.NoError(t, created.BindBot(entity.O))

	moved := *created
	require.NoError(t, moved.MakeTurn(entity.X, 1, 1))

	thinking := func(ctx context.Context, _ string) (*entity.Game, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
			return &moved, nil
		}
	}

	fx.gamePlay.EXPECT().
		NewGame(mock.Anything, playerID, entity.O, true).
		Return(created, nil).
		Once()
	fx.gamePlay.EXPECT().
		Restart(mock.Anything, playerID).
		Return(created, nil).
		Once()
	fx.gamePlay.EXPECT().
		ThinkAndMove(mock.Anything, playerID).
		RunAndReturn(thinking).
		Twice()

	// When: the player restarts before the bot has moved
	fx.send(t, actionNewGame, NewGameRequest{Mark: entity.O, WithBot: true})
	action, _ := fx.receive(t)
	require.Equal(t, actionNewGame, action)

	fx.send(t, actionRestart, struct{}{})
	action, _ = fx.receive(t)
	require.Equal(t, actionRestart, action)

	// Then: exactly one update arrives and it carries a single X
	action, payload := fx.receive(t)
	assert.Equal(t, actionGameUpdate, action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, 8, payload.Game.Grid.CountEmpty())
	assert.Equal(t, entity.X, payload.Game.Grid[1][1])

	require.NoError(t, fx.conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := fx.conn.ReadMessage()
	require.Error(t, err, "no second game:update expected")
}

func TestGameTurn(t *testing.T) {
	t.Run("Requires connect first", func(t *testing.T) {
		fx := newWSFixture(t)

		fx.send(t, actionTurn, map[string]int{"row": 0, "col": 0})

		_, payload := fx.receive(t)
		assert.Equal(t, errNotConnected.Error(), payload.Error)
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		fx := newWSFixture(t)
		fx.connect(t, &entity.Player{ID: playerID})

		fx.send(t, actionTurn, map[string]int{"row": 5, "col": 0})

		_, payload := fx.receive(t)
		assert.Contains(t, payload.Error, "invalid payload")
	})

	t.Run("Occupied cell", func(t *testing.T) {
		fx := newWSFixture(t)
		fx.connect(t, &entity.Player{ID: playerID})

		fx.gamePlay.EXPECT().
			MakeTurn(mock.Anything, playerID, 0, 0).
			Return(nil, apperror.ErrCellOccupied).
			Once()

		fx.send(t, actionTurn, map[string]int{"row": 0, "col": 0})

		action, payload := fx.receive(t)
		assert.Equal(t, actionTurn, action)
		assert.Equal(t, apperror.ErrCellOccupied.Error(), payload.Error)
	})

	t.Run("Local game has no bot reply", func(t *testing.T) {
		fx := newWSFixture(t)
		fx.connect(t, &entity.Player{ID: playerID})

		game := entity.NewGame("g1", playerID, entity.LocalType)
		require.NoError(t, game.MakeTurn(entity.X, 2, 2))

		fx.gamePlay.EXPECT().
			MakeTurn(mock.Anything, playerID, 2, 2).
			Return(game, nil).
			Once()

		fx.send(t, actionTurn, map[string]int{"row": 2, "col": 2})

		_, payload := fx.receive(t)
		assert.Equal(t, entity.X, payload.Game.Grid[2][2])
	})
}

func TestUnknownAction(t *testing.T) {
	fx := newWSFixture(t)

	fx.send(t, "game:leave", struct{}{})

	action, payload := fx.receive(t)
	assert.Equal(t, "game:leave", action)
	assert.Equal(t, "unknown action", payload.Error)
}
