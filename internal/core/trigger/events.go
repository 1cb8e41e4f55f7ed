package trigger

import "time"

// Lane names an independent reminder timer.
type Lane string

const (
	LaneMain  Lane = "main"
	LaneLunch Lane = "lunch"
)

// EventType defines the type of scheduler event.
type EventType string

const (
	EventArmed   EventType = "armed"
	EventFired   EventType = "fired"
	EventSkipped EventType = "skipped"
	EventStopped EventType = "stopped"
)

// Skip and fire reasons carried in Event.Reason.
const (
	ReasonManual          = "manual"
	ReasonOutsideSchedule = "outside_schedule"
)

// Event represents a scheduler update for observers.
type Event struct {
	Type     EventType
	Lane     Lane
	NextFire time.Time
	Reason   string
	At       time.Time
}
