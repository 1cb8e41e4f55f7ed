package trigger

import (
	"fmt"
	"time"

	"crashbreak/internal/core/model"
	"crashbreak/internal/logger"

	"github.com/robfig/cron/v3"
)

// LunchScheduler fires once a day at a wall-clock time. It does not consult the
// custom schedule or the suppression detector.
type LunchScheduler struct {
	lane
	settings  model.Settings
	onTrigger func()
	started   bool
}

// NewLunch creates a lunch scheduler.
func NewLunch(settings model.Settings, onTrigger func(), clock Clock) *LunchScheduler {
	scheduler := &LunchScheduler{
		settings:  settings.Clone(),
		onTrigger: onTrigger,
	}
	scheduler.setup(LaneLunch, clock)
	return scheduler
}

// NextOccurrence returns the first hour:minute strictly after now, in now's location.
func NextOccurrence(now time.Time, hour, minute int) (time.Time, error) {
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	daily, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse lunch schedule %q: %w", spec, err)
	}
	return daily.Next(now), nil
}

// Start arms the timer, or stays stopped when the reminder is disabled.
func (scheduler *LunchScheduler) Start() {
	scheduler.Reschedule()
}

// Reschedule cancels any pending timer and targets the next lunch time.
func (scheduler *LunchScheduler) Reschedule() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.started = true
	scheduler.rescheduleLocked(scheduler.clock.Now())
}

// Stop cancels the pending timer.
func (scheduler *LunchScheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.started = false
	scheduler.cancelLocked()
	scheduler.emitLocked(Event{Type: EventStopped})
}

// Close stops the scheduler and closes observer channels.
func (scheduler *LunchScheduler) Close() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.started = false
	scheduler.cancelLocked()
	scheduler.closeObserversLocked()
}

// UpdateSettings replaces the settings and reschedules when the lunch reminder changed.
func (scheduler *LunchScheduler) UpdateSettings(settings model.Settings) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	previous := scheduler.settings.Lunch
	scheduler.settings = settings.Clone()
	if scheduler.started && previous != settings.Lunch {
		scheduler.rescheduleLocked(scheduler.clock.Now())
	}
}

// rescheduleLocked arms for the first lunch time after from.
func (scheduler *LunchScheduler) rescheduleLocked(from time.Time) {
	lunch := scheduler.settings.Lunch
	if !lunch.Enabled {
		scheduler.cancelLocked()
		scheduler.emitLocked(Event{Type: EventStopped})
		return
	}

	target, err := NextOccurrence(from, lunch.Hour, lunch.Minute)
	if err != nil {
		logger.Error("lunch reminder not armed", "err", err)
		scheduler.cancelLocked()
		scheduler.emitLocked(Event{Type: EventStopped, Reason: err.Error()})
		return
	}

	next := scheduler.armLocked(target.Sub(scheduler.clock.Now()), scheduler.fire)
	logger.Debug("reminder armed", "lane", scheduler.name, "next", next)
	scheduler.emitLocked(Event{Type: EventArmed, NextFire: next})
}

func (scheduler *LunchScheduler) fire(generation uint64) {
	scheduler.mu.Lock()
	target := scheduler.nextFire
	if !scheduler.claimLocked(generation) {
		scheduler.mu.Unlock()
		return
	}
	if !scheduler.settings.Lunch.Enabled {
		scheduler.cancelLocked()
		scheduler.emitLocked(Event{Type: EventStopped})
		scheduler.mu.Unlock()
		return
	}

	scheduler.emitLocked(Event{Type: EventFired})

	// A timer that runs marginally early must not target the same minute again.
	from := scheduler.clock.Now()
	if from.Before(target) {
		from = target
	}
	scheduler.rescheduleLocked(from)
	callback := scheduler.onTrigger
	scheduler.mu.Unlock()

	if callback != nil {
		callback()
	}
}
