//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func (item *LoginItem) register() error {
	command := `"` + strings.Trim(item.execPath, `"`) + `"`
	return runReg("add", runKey, "/v", item.appName, "/t", "REG_SZ", "/d", command, "/f")
}

func (item *LoginItem) unregister() error {
	return runReg("delete", runKey, "/v", item.appName, "/f")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
