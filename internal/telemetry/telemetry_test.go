package telemetry

import (
	"context"
	"ctchen222/tictactoe/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOtel_Disabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: false})

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOtel_Enabled(t *testing.T) {
	// Exporters connect lazily, so no collector is needed to build the providers.
	shutdown, err := InitOtel(context.Background(), config.Telemetry{
		Enabled:     true,
		Endpoint:    "127.0.0.1:0",
		ServiceName: "tic-tac-toe-test",
	})

	require.NoError(t, err)
	require.NotNil(t, shutdown)
}
