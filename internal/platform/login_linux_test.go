//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginItemDesktopEntry(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	item, err := newLoginItem("CrashBreak", "/opt/crash break/crashbreak")
	require.NoError(t, err)
	require.NoError(t, item.Apply(true))

	path := filepath.Join(configHome, "autostart", "crashbreak.desktop")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Exec="/opt/crash break/crashbreak"`)
	assert.Contains(t, string(data), "Name=CrashBreak")

	require.NoError(t, item.Apply(false))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, item.Apply(false))
}
