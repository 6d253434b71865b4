package timeutil

import (
	"fmt"
	"time"
)

// Window is a daily office-hours window expressed in local wall-clock
// hours and minutes. Both boundaries are inclusive: a reservation may
// start exactly at opening and must end no later than closing.
type Window struct {
	openHour   int
	openMinute int
	closeHour  int
	closeMin   int
}

// ParseWindow builds a Window from two "HH:MM" strings, e.g. "08:00" and
// "18:00".
func ParseWindow(open, close string) (Window, error) {
	o, err := time.Parse("15:04", open)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window open time %q: %w", open, err)
	}
	c, err := time.Parse("15:04", close)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window close time %q: %w", close, err)
	}
	return Window{
		openHour:   o.Hour(),
		openMinute: o.Minute(),
		closeHour:  c.Hour(),
		closeMin:   c.Minute(),
	}, nil
}

// MustParseWindow is ParseWindow for statically known inputs.
func MustParseWindow(open, close string) Window {
	w, err := ParseWindow(open, close)
	if err != nil {
		panic(err)
	}
	return w
}

// AllowsStart reports whether t's local hour/minute is at or after the
// opening boundary. Only the time of day is considered; the date is not
// constrained.
func (w Window) AllowsStart(t time.Time) bool {
	h, m := t.Hour(), t.Minute()
	return h > w.openHour || (h == w.openHour && m >= w.openMinute)
}

// AllowsEnd reports whether t's local hour/minute is at or before the
// closing boundary. An end exactly on the boundary is allowed; one minute
// past it is not.
func (w Window) AllowsEnd(t time.Time) bool {
	h, m := t.Hour(), t.Minute()
	return h < w.closeHour || (h == w.closeHour && m <= w.closeMin)
}

// Covers reports whether both the start and end instants fall inside the
// window.
func (w Window) Covers(start, end time.Time) bool {
	return w.AllowsStart(start) && w.AllowsEnd(end)
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.openHour, w.openMinute, w.closeHour, w.closeMin)
}
