package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	NewGame(ctx context.Context, playerID string, humanMark entity.Mark, withBot bool) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	Restart(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	MakeBotTurn(ctx context.Context, playerID string) (*entity.Game, error)
	ThinkAndMove(ctx context.Context, playerID string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, msg *Message, client *client) error

type Server struct {
	logger *slog.Logger

	playerService   playerService
	gamePlayService gamePlayService

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, playerService playerService, gamePlayService gamePlayService) *Server {
	server := &Server{
		logger:          logger.With("component", "websocket"),
		playerService:   playerService,
		gamePlayService: gamePlayService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}

	server.handlers = map[string]handlerFunc{
		actionConnect: server.handleConnect,
		actionNewGame: server.handleNewGame,
		actionTurn:    server.handleGameTurn,
		actionRestart: server.handleRestart,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server. It stops when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	ctx, cancel := context.WithCancel(req.Context())
	c := &client{conn: conn}

	defer func() {
		cancel()
		c.wait()
		_ = conn.Close()
	}()

	if err = that.handleMessages(ctx, c); err != nil {
		log.Info("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			_ = c.sendError(actionError, "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			_ = c.sendError(message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, &message, c); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// client - one socket. gorilla allows a single concurrent writer, so writes are serialized.
type client struct {
	conn *websocket.Conn

	mu       sync.Mutex
	playerID string

	background sync.WaitGroup

	replyMu     sync.Mutex
	cancelReply context.CancelFunc
	replyDone   chan struct{}
}

func (that *client) player() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playerID
}

func (that *client) bind(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.playerID = playerID
}

func (that *client) send(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) sendError(action, message string) error {
	return that.send(action, ResponsePayload{Error: message})
}

// goBackground runs fn in the background; wait blocks until all of them return.
func (that *client) goBackground(fn func()) {
	that.background.Add(1)
	go func() {
		defer that.background.Done()
		fn()
	}()
}

// replyInBackground keeps a single pending reply per socket. Starting one cancels the
// previous reply and waits for it to return before fn runs, so replies never overlap.
func (that *client) replyInBackground(ctx context.Context, fn func(ctx context.Context)) {
	replyCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	that.replyMu.Lock()
	if that.cancelReply != nil {
		that.cancelReply()
	}
	previous := that.replyDone
	that.cancelReply = cancel
	that.replyDone = done
	that.replyMu.Unlock()

	that.goBackground(func() {
		defer close(done)
		defer cancel()

		if previous != nil {
			<-previous
		}

		fn(replyCtx)
	})
}

func (that *client) wait() {
	that.background.Wait()
}
