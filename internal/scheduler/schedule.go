package scheduler

import (
	"time"

	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/config"
)

// Schedule is the calendar of the time-driven triggers.
type Schedule struct {
	WakeHour, WakeMinute       int
	NightlyHour, NightlyMinute int

	ReportDay                time.Weekday
	ReportHour, ReportMinute int
	ReportLimit              int // most recent entries listed
	CollageThreshold         int // weekly count that earns a collage

	BonusMinute    int
	BonusFromHour  int // inclusive
	BonusUntilHour int // inclusive

	CriticalInterval time.Duration

	// Grace is how long after its scheduled instant a trigger may still
	// fire. It must exceed the tick interval.
	Grace time.Duration
}

func DefaultSchedule() Schedule {
	return Schedule{
		WakeHour:         5,
		WakeMinute:       30,
		NightlyHour:      23,
		NightlyMinute:    0,
		ReportDay:        time.Monday,
		ReportHour:       8,
		ReportMinute:     0,
		ReportLimit:      10,
		CollageThreshold: 7,
		BonusMinute:      55,
		BonusFromHour:    6,
		BonusUntilHour:   22,
		CriticalInterval: 30 * time.Minute,
		Grace:            10 * time.Minute,
	}
}

// FromConfig reads the calendar from the configuration. The report limit
// and collage threshold are fixed.
func FromConfig(cfg *config.Config) Schedule {
	s := DefaultSchedule()
	s.WakeHour, s.WakeMinute = cfg.WakeAt.Hour, cfg.WakeAt.Minute
	s.NightlyHour, s.NightlyMinute = cfg.NightlyAt.Hour, cfg.NightlyAt.Minute
	s.ReportDay = time.Weekday(cfg.WeeklyReportDay)
	s.ReportHour, s.ReportMinute = cfg.WeeklyReportAt.Hour, cfg.WeeklyReportAt.Minute
	s.BonusMinute = cfg.BonusMinute
	s.BonusFromHour = cfg.BonusFromHour
	s.BonusUntilHour = cfg.BonusUntilHour
	s.CriticalInterval = cfg.CriticalAlertInterval
	s.Grace = cfg.TriggerGrace
	return s
}

// latestDaily returns the most recent hh:mm at or before now.
func latestDaily(now time.Time, hour, minute int) time.Time {
	occ := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if occ.After(now) {
		occ = occ.AddDate(0, 0, -1)
	}
	return occ
}

// latestWeekly returns the most recent weekday hh:mm at or before now.
func latestWeekly(now time.Time, day time.Weekday, hour, minute int) time.Time {
	occ := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	back := (int(now.Weekday()) - int(day) + 7) % 7
	occ = occ.AddDate(0, 0, -back)
	if occ.After(now) {
		occ = occ.AddDate(0, 0, -7)
	}
	return occ
}

// latestHourly returns the most recent :mm at or before now.
func latestHourly(now time.Time, minute int) time.Time {
	occ := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), minute, 0, 0, now.Location())
	if occ.After(now) {
		occ = occ.Add(-time.Hour)
	}
	return occ
}

// due reports whether occ was crossed recently and has not been handled.
func due(now, occ time.Time, grace time.Duration, handled *time.Time) bool {
	if now.Sub(occ) >= grace {
		return false
	}
	return handled == nil || handled.Before(occ)
}

// dueToday is due restricted to occurrences on today's date. An occurrence
// from before the rollover belongs to a day whose flags are already reset.
func dueToday(now, occ time.Time, grace time.Duration, handled *time.Time, today string) bool {
	return clock.DateString(occ) == today && due(now, occ, grace, handled)
}
