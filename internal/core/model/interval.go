package model

// IntervalPreset identifies a main-timer interval choice.
type IntervalPreset string

const (
	IntervalTwentyMinutes IntervalPreset = "20min"
	IntervalOneHour       IntervalPreset = "1h"
	IntervalTwoHours      IntervalPreset = "2h"
	IntervalThreeHours    IntervalPreset = "3h"
	IntervalAroundNinety  IntervalPreset = "random90"
	IntervalAroundThree   IntervalPreset = "random180"
)

// DefaultIntervalSeconds is used for unrecognized presets.
const DefaultIntervalSeconds = 3600

// Preset describes how a preset resolves to seconds.
// Fixed presets have MinSeconds == MaxSeconds.
type Preset struct {
	ID         IntervalPreset
	Label      string
	MinSeconds int
	MaxSeconds int
}

// Random reports whether the preset is re-drawn on every fire.
func (preset Preset) Random() bool {
	return preset.MaxSeconds > preset.MinSeconds
}

var presets = []Preset{
	{ID: IntervalTwentyMinutes, Label: "Every 20 minutes", MinSeconds: 1200, MaxSeconds: 1200},
	{ID: IntervalOneHour, Label: "Every hour", MinSeconds: 3600, MaxSeconds: 3600},
	{ID: IntervalTwoHours, Label: "Every 2 hours", MinSeconds: 7200, MaxSeconds: 7200},
	{ID: IntervalThreeHours, Label: "Every 3 hours", MinSeconds: 10800, MaxSeconds: 10800},
	{ID: IntervalAroundNinety, Label: "Roughly every 1.5 hours", MinSeconds: 2700, MaxSeconds: 8100},
	{ID: IntervalAroundThree, Label: "Roughly every 3 hours", MinSeconds: 5400, MaxSeconds: 16200},
}

// Presets returns the presets in menu order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset finds a preset by id.
func LookupPreset(id IntervalPreset) (Preset, bool) {
	for _, preset := range presets {
		if preset.ID == id {
			return preset, true
		}
	}
	return Preset{}, false
}
