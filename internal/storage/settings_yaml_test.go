package storage

import (
	"os"
	"path/filepath"
	"testing"

	"crashbreak/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope", settingsFileName))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CrashBreak", settingsFileName)

	settings := model.DefaultSettings()
	settings.Enabled = false
	settings.Interval = model.IntervalAroundThree
	settings.CustomIntervalEnabled = true
	settings.CustomMinutes = 90
	settings.Style = model.StylePaperclip
	settings.Schedule = model.Schedule{
		Enabled:   true,
		Weekdays:  []model.Weekday{model.Sunday, model.Saturday},
		StartHour: 22,
		EndHour:   4,
	}
	settings.Lunch = model.LunchReminder{Enabled: true, Hour: 13, Minute: 5}
	settings.SuppressDuringScreenShare = false
	settings.LaunchAtLogin = true

	require.NoError(t, SaveSettings(path, settings))
	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestEmptyWeekdaysSurviveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	settings := model.DefaultSettings()
	settings.Schedule.Weekdays = nil

	require.NoError(t, SaveSettings(path, settings))
	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Schedule.Weekdays)
}

func TestAbsentKeysKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("enabled: false\nlunch_hour: 14\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	want := model.DefaultSettings()
	want.Enabled = false
	want.Lunch.Hour = 14
	assert.Equal(t, want, settings)
}

func TestOutOfRangeValuesAreClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := `
interval_selection: fortnightly
custom_minutes: 500
style_selection: vaporwave
enabled_weekdays: [0, 3, 3, 8, 1]
start_hour: -2
end_hour: 40
lunch_minute: 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, model.IntervalPreset("fortnightly"), settings.Interval)
	assert.Equal(t, 240, settings.CustomMinutes)
	assert.Equal(t, model.StyleRandom, settings.Style)
	assert.Equal(t, []model.Weekday{model.Sunday, model.Tuesday}, settings.Schedule.Weekdays)
	assert.Equal(t, 0, settings.Schedule.StartHour)
	assert.Equal(t, 23, settings.Schedule.EndHour)
	assert.Equal(t, 59, settings.Lunch.Minute)
}

func TestInvalidYamlReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("enabled: [unterminated"), 0o644))

	settings, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestResolveConfigPathWithOverride(t *testing.T) {
	path, err := ResolveConfigPath("CrashBreak", "/tmp/custom")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/custom", settingsFileName), path)
}
