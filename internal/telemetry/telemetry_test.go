package telemetry

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/stretchr/testify/require"
)

func TestInitOtel(t *testing.T) {
	t.Run("Disabled without endpoint", func(t *testing.T) {
		shutdown, err := InitOtel(context.Background(), config.Telemetry{})

		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	})

	t.Run("Exporters are created lazily against the endpoint", func(t *testing.T) {
		// Given: an endpoint nobody listens on, the gRPC client does not dial until first export
		conf := config.Telemetry{Endpoint: "127.0.0.1:4317", ServiceName: "test"}

		// When: initializing
		shutdown, err := InitOtel(context.Background(), conf)

		// Then: setup succeeds
		require.NoError(t, err)
		require.NotNil(t, shutdown)
	})
}
