package platform

import (
	"fmt"
	"os"
	"strings"
)

// LoginItem starts the app with the user session.
type LoginItem struct {
	appName  string
	execPath string
}

// NewLoginItem targets the running executable.
func NewLoginItem(appName string) (*LoginItem, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return newLoginItem(appName, execPath)
}

func newLoginItem(appName, execPath string) (*LoginItem, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, fmt.Errorf("login item: app name is empty")
	}
	if execPath == "" {
		return nil, fmt.Errorf("login item: exec path is empty")
	}
	return &LoginItem{appName: appName, execPath: execPath}, nil
}

// Apply registers or removes the login item.
func (item *LoginItem) Apply(enabled bool) error {
	if enabled {
		if err := item.register(); err != nil {
			return fmt.Errorf("enable launch at login: %w", err)
		}
		return nil
	}
	if err := item.unregister(); err != nil {
		return fmt.Errorf("disable launch at login: %w", err)
	}
	return nil
}

func (item *LoginItem) slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(item.appName)), " ", "-")
}
