// Package clock supplies the current time in the workshop's timezone.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current local time.
type Clock interface {
	Now() time.Time
}

// Local is the wall clock projected into a fixed location.
type Local struct {
	loc *time.Location
}

// NewLocal returns a wall clock in loc. A nil location means UTC.
func NewLocal(loc *time.Location) *Local {
	if loc == nil {
		loc = time.UTC
	}
	return &Local{loc: loc}
}

func (c *Local) Now() time.Time { return time.Now().In(c.loc) }

// Location returns the clock's timezone.
func (c *Local) Location() *time.Location { return c.loc }

// Manual is a settable clock for tests and simulated ticks.
type Manual struct {
	mu sync.Mutex
	t  time.Time
}

func NewManual(t time.Time) *Manual {
	return &Manual{t: t}
}

func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Set moves the clock to t.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// DateString formats t as the calendar date used for day and week markers.
func DateString(t time.Time) string {
	return t.Format(time.DateOnly)
}
