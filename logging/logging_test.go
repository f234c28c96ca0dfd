package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewHonoursLevel(t *testing.T) {
	logger, err := logging.New(config.Logging{Level: "warn", Format: "console"})
	require.NoError(t, err)
	defer logger.Sync()

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewDefaultsToJSON(t *testing.T) {
	logger, err := logging.New(config.Logging{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, err := logging.New(config.Logging{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = logging.New(config.Logging{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunters.log")

	logger, err := logging.New(config.Logging{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	logger.Info("frame", zap.Int("enemies", 3))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"enemies":3`)
	assert.Contains(t, string(data), `"run":`)
}
