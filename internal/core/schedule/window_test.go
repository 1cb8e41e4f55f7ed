package schedule

import (
	"testing"
	"time"

	"crashbreak/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestIsActiveScheduleDisabled(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Schedule.Enabled = false
	settings.Schedule.Weekdays = nil

	for _, day := range model.AllWeekdays() {
		for hour := 0; hour < 24; hour++ {
			assert.True(t, IsActive(day, hour, settings), "day %d hour %d", day, hour)
		}
	}
}

func TestIsActiveForwardRange(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Schedule.Enabled = true
	settings.Schedule.Weekdays = []model.Weekday{model.Monday, model.Wednesday}

	for start := 0; start < 24; start++ {
		for end := start; end < 24; end++ {
			settings.Schedule.StartHour = start
			settings.Schedule.EndHour = end
			for _, day := range model.AllWeekdays() {
				for hour := 0; hour < 24; hour++ {
					inDays := day == model.Monday || day == model.Wednesday
					want := inDays && hour >= start && hour < end
					assert.Equal(t, want, IsActive(day, hour, settings), "start %d end %d day %d hour %d", start, end, day, hour)
				}
			}
		}
	}
}

func TestIsActiveWrappingRange(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Schedule.Enabled = true
	settings.Schedule.Weekdays = model.AllWeekdays()

	for start := 1; start < 24; start++ {
		for end := 0; end < start; end++ {
			settings.Schedule.StartHour = start
			settings.Schedule.EndHour = end
			for hour := 0; hour < 24; hour++ {
				want := hour >= start || hour < end
				assert.Equal(t, want, IsActive(model.Friday, hour, settings), "start %d end %d hour %d", start, end, hour)
			}
		}
	}
}

func TestIsActiveNightShift(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Schedule = model.Schedule{
		Enabled:   true,
		Weekdays:  []model.Weekday{model.Saturday},
		StartHour: 22,
		EndHour:   6,
	}

	assert.True(t, IsActive(model.Saturday, 23, settings))
	assert.True(t, IsActive(model.Saturday, 0, settings))
	assert.True(t, IsActive(model.Saturday, 5, settings))
	assert.False(t, IsActive(model.Saturday, 6, settings))
	assert.False(t, IsActive(model.Saturday, 12, settings))
	assert.False(t, IsActive(model.Sunday, 23, settings))
}

func TestIsActiveAt(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Schedule.Enabled = true

	// 2024-01-08 is a Monday.
	monday := time.Date(2024, time.January, 8, 10, 30, 0, 0, time.Local)
	assert.True(t, IsActiveAt(monday, settings))
	assert.False(t, IsActiveAt(monday.Add(8*time.Hour), settings))
	assert.False(t, IsActiveAt(monday.AddDate(0, 0, 5), settings))
}
