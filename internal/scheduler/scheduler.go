// Package scheduler evaluates the time-windowed and state-windowed triggers
// on every tick. Time-of-day triggers detect the crossing of their scheduled
// instant and remember the handled occurrence in the state, so a trigger
// fires once per occurrence whatever the tick cadence.
package scheduler

import (
	"time"

	"github.com/keshon/toolmaker/internal/arsenal"
	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/hunger"
	"github.com/keshon/toolmaker/internal/notify"
	"github.com/keshon/toolmaker/internal/state"
	"github.com/keshon/toolmaker/internal/texts"
)

// Trigger names a scheduled event.
type Trigger string

const (
	TriggerWake     Trigger = "wake"
	TriggerCritical Trigger = "critical"
	TriggerWarning  Trigger = "warning"
	TriggerBonus    Trigger = "bonus"
	TriggerNightly  Trigger = "nightly"
	TriggerWeekly   Trigger = "weekly"
)

// Event is a fired trigger and the message it emits.
type Event struct {
	Trigger Trigger
	Message notify.Message
}

// Dispatcher evaluates all triggers against a state.
type Dispatcher struct {
	sched Schedule
	rnd   arsenal.Source
}

func New(sched Schedule, rnd arsenal.Source) *Dispatcher {
	return &Dispatcher{sched: sched, rnd: rnd}
}

// Tick mutates s for the instant now and returns the fired events in order.
func (d *Dispatcher) Tick(s *state.State, now time.Time) []Event {
	var events []Event
	today := clock.DateString(now)

	s.RollDay(today)

	if ev, ok := d.wake(s, now, today); ok {
		events = append(events, ev)
	}

	mode := hunger.ModeAt(s, now)
	switch mode {
	case hunger.Critical:
		if s.LastCriticalAlertAt == nil || now.Sub(*s.LastCriticalAlertAt) >= d.sched.CriticalInterval {
			at := now
			s.LastCriticalAlertAt = &at
			events = append(events, Event{TriggerCritical, notify.Text(arsenal.Pick(d.rnd, texts.CriticalAlerts))})
		}
	case hunger.Warning:
		if !s.DecayWarningSent {
			s.DecayWarningSent = true
			events = append(events, Event{TriggerWarning, notify.Text(texts.WarningAlert)})
		}
	}

	if ev, ok := d.bonus(s, now, today); ok {
		events = append(events, ev)
	}
	if ev, ok := d.nightly(s, now, today, mode); ok {
		events = append(events, ev)
	}
	events = append(events, d.weekly(s, now, today)...)
	return events
}

func (d *Dispatcher) wake(s *state.State, now time.Time, today string) (Event, bool) {
	occ := latestDaily(now, d.sched.WakeHour, d.sched.WakeMinute)
	if !dueToday(now, occ, d.sched.Grace, s.WakeCheckedAt, today) {
		return Event{}, false
	}
	s.WakeCheckedAt = &occ
	if s.MorningAcknowledged {
		return Event{}, false
	}
	s.AwaitingDailyPlan = true
	return Event{TriggerWake, notify.Text(texts.WakePrompt)}, true
}

func (d *Dispatcher) bonus(s *state.State, now time.Time, today string) (Event, bool) {
	occ := latestHourly(now, d.sched.BonusMinute)
	hour := occ.Hour()
	switch {
	case now.Sub(occ) >= d.sched.Grace,
		clock.DateString(occ) != today,
		hour < d.sched.BonusFromHour || hour > d.sched.BonusUntilHour,
		s.LastPeriodicBonusHour != nil && *s.LastPeriodicBonusHour == hour:
		return Event{}, false
	}
	s.LastPeriodicBonusHour = &hour
	reward := arsenal.DrawReward(d.rnd)
	return Event{TriggerBonus, notify.Text(reward.Text)}, true
}

func (d *Dispatcher) nightly(s *state.State, now time.Time, today string, mode hunger.Mode) (Event, bool) {
	occ := latestDaily(now, d.sched.NightlyHour, d.sched.NightlyMinute)
	if !dueToday(now, occ, d.sched.Grace, s.NightlyCheckedAt, today) {
		return Event{}, false
	}
	s.NightlyCheckedAt = &occ
	if mode != hunger.Normal || s.NightlySummarySent {
		return Event{}, false
	}
	s.NightlySummarySent = true
	return Event{TriggerNightly, notify.Message{Image: &notify.Image{
		Prompt:   texts.NightPrompt,
		Caption:  texts.NightCaption,
		Fallback: texts.NightFallback,
	}}}, true
}

func (d *Dispatcher) weekly(s *state.State, now time.Time, today string) []Event {
	occ := latestWeekly(now, d.sched.ReportDay, d.sched.ReportHour, d.sched.ReportMinute)
	if !due(now, occ, d.sched.Grace, s.LastWeeklyReportAt) {
		return nil
	}
	s.LastWeeklyReportAt = &occ

	var events []Event
	count := len(s.WeeklyLog)
	if count == 0 {
		events = append(events, Event{TriggerWeekly, notify.Text(texts.WeekWasted)})
	} else {
		msg := notify.Text(texts.WeeklyReport(s.WeeklyLog, d.sched.ReportLimit))
		if count >= d.sched.CollageThreshold {
			msg.Image = &notify.Image{Prompt: texts.CollagePrompt, Caption: texts.CollageCaption}
		}
		events = append(events, Event{TriggerWeekly, msg})
	}
	s.ResetWeek(today)
	return events
}
