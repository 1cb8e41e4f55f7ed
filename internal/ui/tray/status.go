package tray

import (
	"fmt"
	"time"

	"crashbreak/internal/core/model"
)

// Status lines carry wall-clock times only; the menu is not rebuilt on a timer.

func statusLine(settings model.Settings, next time.Time) string {
	if !settings.Enabled {
		return "Reminders off"
	}
	if next.IsZero() {
		return "No reminder scheduled"
	}
	return "Next crash at " + next.Local().Format("15:04")
}

func lunchLine(settings model.Settings, next time.Time) string {
	if !settings.Lunch.Enabled {
		return ""
	}
	if next.IsZero() {
		return fmt.Sprintf("Lunch at %02d:%02d", settings.Lunch.Hour, settings.Lunch.Minute)
	}
	return "Lunch at " + next.Local().Format("15:04")
}

func customLabel(settings model.Settings) string {
	return fmt.Sprintf("Custom (%d min)", settings.CustomMinutes)
}
