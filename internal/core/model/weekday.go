package model

import "time"

// Weekday numbers days 1..7 starting on Sunday.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllWeekdays lists the weekday domain in order.
func AllWeekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// WeekdayOf returns the weekday of t in its own location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// Valid reports whether the value is within 1..7.
func (day Weekday) Valid() bool {
	return day >= Sunday && day <= Saturday
}

// ShortName returns a three-letter label.
func (day Weekday) ShortName() string {
	if !day.Valid() {
		return ""
	}
	return time.Weekday(day - 1).String()[:3]
}
