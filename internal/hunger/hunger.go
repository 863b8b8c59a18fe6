// Package hunger models the tribe's decaying satiety. The only stored value
// is the reference instant of the last replenishment; credit and debit are
// banked by shifting that instant instead of keeping a separate balance.
package hunger

import (
	"time"

	"github.com/keshon/toolmaker/internal/state"
)

// Thresholds in deficit hours.
const (
	WarningHours  = 12.0
	CriticalHours = 24.0
)

// Mode is the three-level classification of the current deficit.
type Mode int

const (
	Normal Mode = iota
	Warning
	Critical
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// DeficitHours returns the hours elapsed since the reference instant. It is
// zero when the resource was never replenished and negative while banked
// credit remains.
func DeficitHours(s *state.State, now time.Time) float64 {
	if s.LastReplenishAt == nil {
		return 0
	}
	return now.Sub(*s.LastReplenishAt).Hours()
}

// Classify maps deficit hours to a Mode. Lower bounds are inclusive.
func Classify(hours float64) Mode {
	switch {
	case hours < WarningHours:
		return Normal
	case hours < CriticalHours:
		return Warning
	default:
		return Critical
	}
}

// ModeAt classifies the deficit of s at now.
func ModeAt(s *state.State, now time.Time) Mode {
	return Classify(DeficitHours(s, now))
}

// Replenish credits bonus hours against the current deficit. The resulting
// deficit may go negative and is kept by moving the reference instant.
func Replenish(s *state.State, now time.Time, bonus float64) {
	deficit := DeficitHours(s, now) - bonus
	at := now.Add(-hoursToDuration(deficit))
	s.LastReplenishAt = &at
}

// Penalize advances the deficit by hours.
func Penalize(s *state.State, now time.Time, hours float64) {
	Replenish(s, now, -hours)
}

// Feed starts the timer at now if it has never been started.
func Feed(s *state.State, now time.Time) {
	if s.LastReplenishAt == nil {
		at := now
		s.LastReplenishAt = &at
	}
}

// Remaining reports the hours left before the next threshold. In Critical
// mode it returns the hours spent past the critical threshold instead.
func Remaining(s *state.State, now time.Time) (Mode, float64) {
	hours := DeficitHours(s, now)
	switch m := Classify(hours); m {
	case Normal:
		return m, WarningHours - hours
	case Warning:
		return m, CriticalHours - hours
	default:
		return m, hours - CriticalHours
	}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
