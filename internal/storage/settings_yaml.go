package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"crashbreak/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Pointer fields distinguish an absent key from a zero value.
type yamlSettings struct {
	Enabled                   *bool   `yaml:"enabled,omitempty"`
	IntervalSelection         *string `yaml:"interval_selection,omitempty"`
	CustomIntervalEnabled     *bool   `yaml:"custom_interval_enabled,omitempty"`
	CustomMinutes             *int    `yaml:"custom_minutes,omitempty"`
	StyleSelection            *string `yaml:"style_selection,omitempty"`
	CustomScheduleEnabled     *bool   `yaml:"custom_schedule_enabled,omitempty"`
	EnabledWeekdays           []int   `yaml:"enabled_weekdays"`
	StartHour                 *int    `yaml:"start_hour,omitempty"`
	EndHour                   *int    `yaml:"end_hour,omitempty"`
	LunchReminderEnabled      *bool   `yaml:"lunch_reminder_enabled,omitempty"`
	LunchHour                 *int    `yaml:"lunch_hour,omitempty"`
	LunchMinute               *int    `yaml:"lunch_minute,omitempty"`
	SuppressDuringScreenShare *bool   `yaml:"suppress_during_screen_share,omitempty"`
	LaunchAtLogin             *bool   `yaml:"launch_at_login,omitempty"`
}

// ResolveConfigPath returns <dir>/<appName>/settings.yaml, using the user config
// directory when dir is empty.
func ResolveConfigPath(appName, dir string) (string, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(configDir, appName)
	}
	return filepath.Join(dir, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned. Absent keys keep
// their defaults and loaded values are normalized.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	settings.Normalize()
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYamlSettings(settings))
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func toYamlSettings(settings model.Settings) yamlSettings {
	interval := string(settings.Interval)
	style := string(settings.Style)
	weekdays := make([]int, 0, len(settings.Schedule.Weekdays))
	for _, day := range settings.Schedule.Weekdays {
		weekdays = append(weekdays, int(day))
	}

	return yamlSettings{
		Enabled:                   &settings.Enabled,
		IntervalSelection:         &interval,
		CustomIntervalEnabled:     &settings.CustomIntervalEnabled,
		CustomMinutes:             &settings.CustomMinutes,
		StyleSelection:            &style,
		CustomScheduleEnabled:     &settings.Schedule.Enabled,
		EnabledWeekdays:           weekdays,
		StartHour:                 &settings.Schedule.StartHour,
		EndHour:                   &settings.Schedule.EndHour,
		LunchReminderEnabled:      &settings.Lunch.Enabled,
		LunchHour:                 &settings.Lunch.Hour,
		LunchMinute:               &settings.Lunch.Minute,
		SuppressDuringScreenShare: &settings.SuppressDuringScreenShare,
		LaunchAtLogin:             &settings.LaunchAtLogin,
	}
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.Enabled != nil {
		settings.Enabled = *fileData.Enabled
	}
	if fileData.IntervalSelection != nil {
		settings.Interval = model.IntervalPreset(*fileData.IntervalSelection)
	}
	if fileData.CustomIntervalEnabled != nil {
		settings.CustomIntervalEnabled = *fileData.CustomIntervalEnabled
	}
	if fileData.CustomMinutes != nil {
		settings.CustomMinutes = *fileData.CustomMinutes
	}
	if fileData.StyleSelection != nil {
		settings.Style = model.Style(*fileData.StyleSelection)
	}
	if fileData.CustomScheduleEnabled != nil {
		settings.Schedule.Enabled = *fileData.CustomScheduleEnabled
	}
	if fileData.EnabledWeekdays != nil {
		settings.Schedule.Weekdays = make([]model.Weekday, 0, len(fileData.EnabledWeekdays))
		for _, day := range fileData.EnabledWeekdays {
			settings.Schedule.Weekdays = append(settings.Schedule.Weekdays, model.Weekday(day))
		}
	}
	if fileData.StartHour != nil {
		settings.Schedule.StartHour = *fileData.StartHour
	}
	if fileData.EndHour != nil {
		settings.Schedule.EndHour = *fileData.EndHour
	}
	if fileData.LunchReminderEnabled != nil {
		settings.Lunch.Enabled = *fileData.LunchReminderEnabled
	}
	if fileData.LunchHour != nil {
		settings.Lunch.Hour = *fileData.LunchHour
	}
	if fileData.LunchMinute != nil {
		settings.Lunch.Minute = *fileData.LunchMinute
	}
	if fileData.SuppressDuringScreenShare != nil {
		settings.SuppressDuringScreenShare = *fileData.SuppressDuringScreenShare
	}
	if fileData.LaunchAtLogin != nil {
		settings.LaunchAtLogin = *fileData.LaunchAtLogin
	}
}
