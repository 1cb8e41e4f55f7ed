package trigger

import (
	"sync"
	"time"
)

// lane holds at most one pending timer. Every cancel bumps the generation so a
// callback from a replaced timer can recognise itself as stale.
type lane struct {
	mu         sync.Mutex
	name       Lane
	clock      Clock
	timer      Timer
	nextFire   time.Time
	generation uint64
	events     []chan Event
}

func (l *lane) setup(name Lane, clock Clock) {
	if clock == nil {
		clock = SystemClock()
	}
	l.name = name
	l.clock = clock
}

// Subscribe registers a new observer channel.
func (l *lane) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	l.mu.Lock()
	l.events = append(l.events, ch)
	l.mu.Unlock()
	return ch
}

// NextFire returns the pending fire time, if any.
func (l *lane) NextFire() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer == nil {
		return time.Time{}, false
	}
	return l.nextFire, true
}

func (l *lane) armLocked(delay time.Duration, fire func(generation uint64)) time.Time {
	l.cancelLocked()
	if delay < 0 {
		delay = 0
	}
	generation := l.generation
	l.nextFire = l.clock.Now().Add(delay)
	l.timer = l.clock.AfterFunc(delay, func() {
		fire(generation)
	})
	return l.nextFire
}

func (l *lane) cancelLocked() {
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = nil
	l.nextFire = time.Time{}
	l.generation++
}

// claimLocked reports whether a firing timer is still the pending one and
// detaches it if so.
func (l *lane) claimLocked(generation uint64) bool {
	if l.timer == nil || generation != l.generation {
		return false
	}
	l.timer = nil
	l.nextFire = time.Time{}
	return true
}

func (l *lane) emitLocked(event Event) {
	event.Lane = l.name
	if event.At.IsZero() {
		event.At = l.clock.Now()
	}
	events := append([]chan Event(nil), l.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (l *lane) closeObserversLocked() {
	for _, ch := range l.events {
		close(ch)
	}
	l.events = nil
}
