package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerExpire = 120
	maxWait         = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "7-alpine"
)

// Suite - a throwaway Redis container shared by one test.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Addr - host:port of the container, for code that dials Redis itself.
	Addr    string
	Storage *redis.Client
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWait)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}
	pool.MaxWait = maxWait

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}

	// hard kill in case Purge is never reached
	_ = resource.Expire(containerExpire)

	st := &Suite{
		T:      t,
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Addr:   resource.GetHostPort(redisPort),
	}

	if err = pool.Retry(func() error {
		st.Storage = redis.NewClient(&redis.Options{Addr: st.Addr})
		return st.Storage.Ping(ctx).Err()
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = st.Storage.Close()

		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis: %v", err)
		}
	})

	st.Flush(ctx)

	return ctx, st
}

// Flush empties the database between steps of the same test.
func (that *Suite) Flush(ctx context.Context) {
	that.Helper()

	if err := that.Storage.FlushDB(ctx).Err(); err != nil {
		that.Fatalf("could not flush database: %v", err)
	}
}
