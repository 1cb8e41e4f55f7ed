package interval

import (
	"math/rand"
	"sync"
	"time"

	"crashbreak/internal/core/model"
)

// Resolver computes the delay until the next main reminder.
type Resolver struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver creates a resolver. A nil source seeds from the clock.
func NewResolver(source rand.Source) *Resolver {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Resolver{rng: rand.New(source)}
}

// EffectiveIntervalSeconds returns the delay in seconds. Random presets draw a new
// value on every call.
func (resolver *Resolver) EffectiveIntervalSeconds(settings model.Settings) int {
	if settings.CustomIntervalEnabled {
		return model.ClampCustomMinutes(settings.CustomMinutes) * 60
	}

	preset, ok := model.LookupPreset(settings.Interval)
	if !ok {
		return model.DefaultIntervalSeconds
	}
	if !preset.Random() {
		return preset.MinSeconds
	}

	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	return preset.MinSeconds + resolver.rng.Intn(preset.MaxSeconds-preset.MinSeconds+1)
}

// EffectiveInterval is EffectiveIntervalSeconds as a duration.
func (resolver *Resolver) EffectiveInterval(settings model.Settings) time.Duration {
	return time.Duration(resolver.EffectiveIntervalSeconds(settings)) * time.Second
}
