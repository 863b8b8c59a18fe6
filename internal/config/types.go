package config

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a time of day written as HH:MM.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c *ClockTime) UnmarshalText(text []byte) error {
	t, err := time.Parse("15:04", strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid time of day %q, want HH:MM", text)
	}
	c.Hour, c.Minute = t.Hour(), t.Minute()
	return nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Weekday is a day name such as "monday".
type Weekday time.Weekday

func (w *Weekday) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			*w = Weekday(d)
			return nil
		}
	}
	return fmt.Errorf("invalid weekday %q", text)
}
