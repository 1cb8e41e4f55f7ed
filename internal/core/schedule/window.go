// Package schedule decides whether the main reminder may fire at a given moment.
package schedule

import (
	"time"

	"crashbreak/internal/core/model"
)

// IsActive reports whether the reminder is permitted on weekday at hour.
// Hours form a half-open range per day; start > end wraps past midnight.
func IsActive(weekday model.Weekday, hour int, settings model.Settings) bool {
	schedule := settings.Schedule
	if !schedule.Enabled {
		return true
	}
	if !schedule.HasWeekday(weekday) {
		return false
	}
	return hourInWindow(hour, schedule.StartHour, schedule.EndHour)
}

// IsActiveAt evaluates IsActive for the local wall-clock time of t.
func IsActiveAt(t time.Time, settings model.Settings) bool {
	local := t.Local()
	return IsActive(model.WeekdayOf(local), local.Hour(), settings)
}

func hourInWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
