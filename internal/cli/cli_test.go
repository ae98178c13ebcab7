package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/invoicer/internal/config"
	"github.com/thenoetrevino/invoicer/internal/models"
)

func isolateConfig(t *testing.T, dataDir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvThemeFile, "")
	t.Setenv(config.EnvLogLevel, "info")
	t.Setenv(config.EnvDataDir, dataDir)
}

func TestNewCLI_UnusableDataDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	isolateConfig(t, filepath.Join(blocker, "data"))

	prev := slog.Default()
	c, err := NewCLI(context.Background())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	code, exit := Classify(err)
	assert.Equal(t, "STORAGE_UNAVAILABLE", code)
	assert.Equal(t, ExitError, exit)

	assert.Same(t, prev, slog.Default())
}

func TestNewCLI_CloseRestoresDefaultLogger(t *testing.T) {
	isolateConfig(t, t.TempDir())

	prev := slog.Default()
	c, err := NewCLI(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, prev, slog.Default())

	settings, err := c.App.SettingsService.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCurrency, settings.Currency)

	require.NoError(t, c.Close())
	assert.Same(t, prev, slog.Default())
}
