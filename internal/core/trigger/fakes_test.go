package trigger

import (
	"sort"
	"sync"
	"time"

	"crashbreak/internal/core/suppression"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) AfterFunc(delay time.Duration, fn func()) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	timer := &fakeTimer{clock: clock, at: clock.now.Add(delay), fn: fn}
	clock.timers = append(clock.timers, timer)
	return timer
}

// Advance moves time forward, running due timers in order at their own instants.
func (clock *fakeClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(delta)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		pending := make([]*fakeTimer, 0, len(clock.timers))
		for _, timer := range clock.timers {
			if !timer.stopped && !timer.fired && !timer.at.After(target) {
				pending = append(pending, timer)
			}
		}
		if len(pending) == 0 {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		sort.Slice(pending, func(i, j int) bool { return pending[i].at.Before(pending[j].at) })
		next := pending[0]
		next.fired = true
		if next.at.After(clock.now) {
			clock.now = next.at
		}
		clock.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of armed timers.
func (clock *fakeClock) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, timer := range clock.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	active := !timer.stopped && !timer.fired
	timer.stopped = true
	return active
}

type staticApps struct {
	identifiers []string
	processes   []string
	calls       int
}

func (apps *staticApps) Snapshot() suppression.Snapshot {
	apps.calls++
	return suppression.Snapshot{AppIdentifiers: apps.identifiers, ProcessNames: apps.processes}
}
