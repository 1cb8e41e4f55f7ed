package trigger

import (
	"crashbreak/internal/core/interval"
	"crashbreak/internal/core/model"
	"crashbreak/internal/core/schedule"
	"crashbreak/internal/core/suppression"
	"crashbreak/internal/logger"
)

// AppsProvider reads the currently running applications.
type AppsProvider interface {
	Snapshot() suppression.Snapshot
}

// Config contains runtime collaborators for the schedulers. Zero values get defaults.
type Config struct {
	Clock    Clock
	Resolver *interval.Resolver
	Detector *suppression.Detector
}

// Scheduler is the main reminder lane: a one-shot timer re-armed after every fire.
type Scheduler struct {
	lane
	settings  model.Settings
	resolver  *interval.Resolver
	detector  *suppression.Detector
	apps      AppsProvider
	onTrigger func()
	started   bool
}

// New creates a main scheduler. onTrigger runs outside the scheduler lock.
func New(settings model.Settings, onTrigger func(), config Config) *Scheduler {
	if config.Resolver == nil {
		config.Resolver = interval.NewResolver(nil)
	}
	if config.Detector == nil {
		config.Detector = suppression.NewDetector()
	}

	scheduler := &Scheduler{
		settings:  settings.Clone(),
		resolver:  config.Resolver,
		detector:  config.Detector,
		onTrigger: onTrigger,
	}
	scheduler.setup(LaneMain, config.Clock)
	return scheduler
}

// SetAppsProvider injects the running-application source. Without one nothing
// is ever suppressed.
func (scheduler *Scheduler) SetAppsProvider(provider AppsProvider) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.apps = provider
}

// Settings returns the settings the scheduler currently uses.
func (scheduler *Scheduler) Settings() model.Settings {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.settings.Clone()
}

// Start arms the timer, or stays stopped when reminders are disabled.
func (scheduler *Scheduler) Start() {
	scheduler.Reschedule()
}

// Reschedule cancels any pending timer and arms a new one from now.
func (scheduler *Scheduler) Reschedule() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.started = true
	scheduler.rescheduleLocked()
}

// Stop cancels the pending timer.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.started = false
	scheduler.cancelLocked()
	scheduler.emitLocked(Event{Type: EventStopped})
}

// Close stops the scheduler and closes observer channels.
func (scheduler *Scheduler) Close() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.started = false
	scheduler.cancelLocked()
	scheduler.closeObserversLocked()
}

// UpdateSettings replaces the settings. Changes to the enabled flag or the
// interval choice restart the countdown; other fields apply at the next fire.
func (scheduler *Scheduler) UpdateSettings(settings model.Settings) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	previous := scheduler.settings
	scheduler.settings = settings.Clone()
	if scheduler.started && mainTimingChanged(previous, settings) {
		scheduler.rescheduleLocked()
	}
}

// TriggerNow invokes the callback immediately without gating and without
// touching the pending timer.
func (scheduler *Scheduler) TriggerNow() {
	scheduler.mu.Lock()
	callback := scheduler.onTrigger
	scheduler.emitLocked(Event{Type: EventFired, NextFire: scheduler.nextFire, Reason: ReasonManual})
	scheduler.mu.Unlock()

	if callback != nil {
		callback()
	}
}

func (scheduler *Scheduler) rescheduleLocked() {
	if !scheduler.settings.Enabled {
		scheduler.cancelLocked()
		scheduler.emitLocked(Event{Type: EventStopped})
		return
	}

	delay := scheduler.resolver.EffectiveInterval(scheduler.settings)
	next := scheduler.armLocked(delay, scheduler.fire)
	logger.Debug("reminder armed", "lane", scheduler.name, "delay", delay, "next", next)
	scheduler.emitLocked(Event{Type: EventArmed, NextFire: next})
}

func (scheduler *Scheduler) fire(generation uint64) {
	scheduler.mu.Lock()
	if !scheduler.claimLocked(generation) {
		scheduler.mu.Unlock()
		return
	}
	if !scheduler.settings.Enabled {
		scheduler.cancelLocked()
		scheduler.emitLocked(Event{Type: EventStopped})
		scheduler.mu.Unlock()
		return
	}

	reason := scheduler.gateLocked()
	if reason == "" {
		scheduler.emitLocked(Event{Type: EventFired})
	} else {
		logger.Info("reminder skipped", "lane", scheduler.name, "reason", reason)
		scheduler.emitLocked(Event{Type: EventSkipped, Reason: reason})
	}

	scheduler.rescheduleLocked()
	callback := scheduler.onTrigger
	scheduler.mu.Unlock()

	if reason == "" && callback != nil {
		callback()
	}
}

// gateLocked returns a skip reason, or "" when the reminder may fire.
// The process snapshot is only read inside the active window.
func (scheduler *Scheduler) gateLocked() string {
	if !schedule.IsActiveAt(scheduler.clock.Now(), scheduler.settings) {
		return ReasonOutsideSchedule
	}
	if scheduler.apps == nil {
		return ""
	}
	result := scheduler.detector.Check(scheduler.apps.Snapshot(), scheduler.settings.SuppressDuringScreenShare)
	if result.Suppress {
		logger.Debug("suppression match", "reason", result.Reason, "match", result.Match)
		return string(result.Reason)
	}
	return ""
}

func mainTimingChanged(previous, current model.Settings) bool {
	return previous.Enabled != current.Enabled ||
		previous.Interval != current.Interval ||
		previous.CustomIntervalEnabled != current.CustomIntervalEnabled ||
		previous.CustomMinutes != current.CustomMinutes
}
