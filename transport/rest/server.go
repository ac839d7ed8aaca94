package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	router *gin.Engine
}

func New(logger *slog.Logger, playerService playerService, gamePlayService gamePlayService) *Server {
	log := logger.With("component", "rest")

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	h := &handlers{
		playerService:   playerService,
		gamePlayService: gamePlayService,
	}

	router.GET("/ping", h.ping)
	router.POST("/players", h.createPlayer)

	games := router.Group("/games")
	games.POST("", h.newGame)
	games.GET("/:playerID", h.getGame)
	games.POST("/:playerID/turns", h.makeTurn)
	games.POST("/:playerID/restart", h.restart)

	return &Server{
		logger: log,
		router: router,
	}
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Debug("request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
