package platform

import (
	"crashbreak/internal/core/suppression"
	"crashbreak/internal/logger"

	"github.com/mitchellh/go-ps"
)

var listProcessesFunc = ps.Processes

// RunningApps reads the process table on demand. Nothing is cached.
type RunningApps struct{}

// NewRunningApps returns a process-table backed snapshot provider.
func NewRunningApps() *RunningApps {
	return &RunningApps{}
}

// Snapshot lists running executables and the app identifiers known for them.
// A failed read yields an empty snapshot.
func (apps *RunningApps) Snapshot() suppression.Snapshot {
	processes, err := listProcessesFunc()
	if err != nil {
		logger.Warn("list processes", "err", err)
		return suppression.Snapshot{}
	}

	snapshot := suppression.Snapshot{
		ProcessNames: make([]string, 0, len(processes)),
	}
	seen := make(map[string]struct{})
	for _, process := range processes {
		executable := process.Executable()
		if executable == "" {
			continue
		}
		snapshot.ProcessNames = append(snapshot.ProcessNames, executable)

		identifier, ok := suppression.IdentifierForExecutable(executable)
		if !ok {
			continue
		}
		if _, dup := seen[identifier]; dup {
			continue
		}
		seen[identifier] = struct{}{}
		snapshot.AppIdentifiers = append(snapshot.AppIdentifiers, identifier)
	}
	return snapshot
}
