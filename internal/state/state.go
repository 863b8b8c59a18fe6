// Package state holds the single mutable record of the workshop and the
// contract of the stores that persist it.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by a Store that has no persisted document yet.
var ErrNotFound = errors.New("state not found")

// ErrMalformed is returned when a persisted document cannot be decoded.
var ErrMalformed = errors.New("malformed state")

// Store persists the whole State document. Save replaces the previous copy.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, s *State) error
}

// Tool is one production event in the weekly log. Immutable once appended.
type Tool struct {
	Date      string `json:"date"`
	Category  string `json:"category"`
	Variant   string `json:"variant"`
	Milestone bool   `json:"milestone"`
}

// State is the whole persisted session of the subject.
type State struct {
	SubjectID string `json:"subject_id,omitempty"`
	DayMarker string `json:"day_marker,omitempty"`

	MorningAcknowledged bool  `json:"morning_acknowledged"`
	AwaitingDailyPlan   bool  `json:"awaiting_daily_plan"`
	PlanConfirmed       *bool `json:"plan_confirmed,omitempty"`

	LastReplenishAt       *time.Time `json:"last_replenish_at,omitempty"`
	DecayWarningSent      bool       `json:"decay_warning_sent"`
	LastPeriodicBonusHour *int       `json:"last_periodic_bonus_hour,omitempty"`
	NightlySummarySent    bool       `json:"nightly_summary_sent"`
	LastCriticalAlertAt   *time.Time `json:"last_critical_alert_at,omitempty"`

	ProductionTotal         int    `json:"production_total"`
	WeeklyLog               []Tool `json:"weekly_log"`
	WeekStartMarker         string `json:"week_start_marker"`
	GrandAchievementReached bool   `json:"grand_achievement_reached"`

	// Occurrence markers of the time-of-day triggers.
	WakeCheckedAt      *time.Time `json:"wake_checked_at,omitempty"`
	NightlyCheckedAt   *time.Time `json:"nightly_checked_at,omitempty"`
	LastWeeklyReportAt *time.Time `json:"last_weekly_report_at,omitempty"`
}

// New returns the default state for a deployment that has never been saved.
func New(today string) *State {
	return &State{
		WeeklyLog:       []Tool{},
		WeekStartMarker: today,
	}
}

// Decode parses a persisted document on top of the defaults, so keys missing
// from older documents keep their default values.
func Decode(data []byte, today string) (*State, error) {
	s := New(today)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if s.WeeklyLog == nil {
		s.WeeklyLog = []Tool{}
	}
	return s, nil
}

// Encode serializes the state as an indented JSON document.
func Encode(s *State) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// RollDay resets the per-day flags when today differs from the stored day
// marker. It reports whether a rollover happened.
func (s *State) RollDay(today string) bool {
	if s.DayMarker == today {
		return false
	}
	s.DayMarker = today
	s.MorningAcknowledged = false
	s.AwaitingDailyPlan = false
	s.DecayWarningSent = false
	s.LastPeriodicBonusHour = nil
	s.NightlySummarySent = false
	s.LastCriticalAlertAt = nil
	return true
}

// ResetWeek clears the weekly log. ProductionTotal is lifetime and stays.
func (s *State) ResetWeek(today string) {
	s.WeeklyLog = []Tool{}
	s.WeekStartMarker = today
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
