package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	previous := Logger
	Logger = nil
	defer func() { Logger = previous }()

	assert.NotPanics(t, func() {
		Debug("debug", "key", 1)
		Info("info")
		Warn("warn")
		Error("error", "err", os.ErrNotExist)
	})
}

func TestInitWritesToLogFile(t *testing.T) {
	previous := Logger
	defer func() { Logger = previous }()

	dir := t.TempDir()
	require.NoError(t, Init(Config{ConfigDir: dir}))
	require.NotNil(t, Logger)

	Info("reminder armed", "lane", "main")

	data, err := os.ReadFile(filepath.Join(dir, "logs", logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "reminder armed")
}
