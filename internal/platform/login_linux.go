//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func (item *LoginItem) desktopEntryPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("resolve autostart dir: %w", homeErr)
		}
		base = fallbackConfigDir(homeDir)
	}
	return filepath.Join(base, "autostart", item.slug()+".desktop"), nil
}

func (item *LoginItem) register() error {
	path, err := item.desktopEntryPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(item.desktopEntry()), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (item *LoginItem) unregister() error {
	path, err := item.desktopEntryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (item *LoginItem) desktopEntry() string {
	execLine := item.execPath
	if strings.ContainsAny(execLine, " \t") {
		execLine = `"` + strings.Trim(execLine, `"`) + `"`
	}

	var builder strings.Builder
	builder.WriteString("[Desktop Entry]\n")
	builder.WriteString("Type=Application\n")
	fmt.Fprintf(&builder, "Name=%s\n", item.appName)
	builder.WriteString("Comment=Eye-break reminder\n")
	fmt.Fprintf(&builder, "Exec=%s\n", execLine)
	builder.WriteString("Terminal=false\n")
	builder.WriteString("X-GNOME-Autostart-enabled=true\n")
	return builder.String()
}
