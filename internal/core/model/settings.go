package model

import "sort"

const (
	MinCustomMinutes = 1
	MaxCustomMinutes = 240
)

// Schedule restricts the main reminder to selected weekdays and an hour range.
type Schedule struct {
	Enabled   bool
	Weekdays  []Weekday
	StartHour int
	EndHour   int
}

// LunchReminder is a daily reminder at a fixed wall-clock time.
type LunchReminder struct {
	Enabled bool
	Hour    int
	Minute  int
}

// Settings is the flat user preference record.
type Settings struct {
	Enabled               bool
	Interval              IntervalPreset
	CustomIntervalEnabled bool
	CustomMinutes         int
	Style                 Style

	Schedule Schedule
	Lunch    LunchReminder

	SuppressDuringScreenShare bool
	LaunchAtLogin             bool
}

// DefaultSettings returns default settings for CrashBreak.
func DefaultSettings() Settings {
	return Settings{
		Enabled:               true,
		Interval:              IntervalOneHour,
		CustomIntervalEnabled: false,
		CustomMinutes:         30,
		Style:                 StyleRandom,
		Schedule: Schedule{
			Enabled:   false,
			Weekdays:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
			StartHour: 9,
			EndHour:   18,
		},
		Lunch: LunchReminder{
			Enabled: false,
			Hour:    12,
			Minute:  0,
		},
		SuppressDuringScreenShare: true,
		LaunchAtLogin:             false,
	}
}

// ClampCustomMinutes bounds a custom interval to [MinCustomMinutes, MaxCustomMinutes].
func ClampCustomMinutes(minutes int) int {
	return clamp(minutes, MinCustomMinutes, MaxCustomMinutes)
}

// SetCustomMinutes stores a clamped custom interval.
func (settings *Settings) SetCustomMinutes(minutes int) {
	settings.CustomMinutes = ClampCustomMinutes(minutes)
}

// Normalize clamps numeric fields and drops values outside their domains.
// Unknown interval ids are left in place; the resolver maps them to the default.
func (settings *Settings) Normalize() {
	settings.CustomMinutes = ClampCustomMinutes(settings.CustomMinutes)
	settings.Schedule.StartHour = clamp(settings.Schedule.StartHour, 0, 23)
	settings.Schedule.EndHour = clamp(settings.Schedule.EndHour, 0, 23)
	settings.Schedule.Weekdays = NormalizeWeekdays(settings.Schedule.Weekdays)
	settings.Lunch.Hour = clamp(settings.Lunch.Hour, 0, 23)
	settings.Lunch.Minute = clamp(settings.Lunch.Minute, 0, 59)
	if !settings.Style.Valid() {
		settings.Style = StyleRandom
	}
}

// Clone returns a copy that shares no slices with the receiver.
func (settings Settings) Clone() Settings {
	clone := settings
	clone.Schedule.Weekdays = append([]Weekday(nil), settings.Schedule.Weekdays...)
	return clone
}

// HasWeekday reports whether the schedule includes the weekday.
func (schedule Schedule) HasWeekday(day Weekday) bool {
	for _, candidate := range schedule.Weekdays {
		if candidate == day {
			return true
		}
	}
	return false
}

// NormalizeWeekdays returns the valid, deduplicated weekdays in ascending order.
func NormalizeWeekdays(days []Weekday) []Weekday {
	seen := make(map[Weekday]struct{}, len(days))
	result := make([]Weekday, 0, len(days))
	for _, day := range days {
		if !day.Valid() {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		result = append(result, day)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
