package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/cafeteria-billing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToRotatedFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "billing.log")

	logger, err := New(cfg, false)
	require.NoError(t, err)

	logger.Info("counter opened")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "counter opened")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "billing.log")
	cfg.LogLevel = "loud"

	_, err := New(cfg, false)
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
