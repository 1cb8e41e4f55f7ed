package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the per-user directory for appName, falling back to a
// platform default under the home directory.
func ConfigDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("resolve config dir: %w", homeErr)
		}
		base = fallbackConfigDir(homeDir)
	}
	return filepath.Join(base, appName), nil
}
