// Package engine coordinates every operation on the single workshop state.
// Each operation runs load, mutate and save under one lock; rendering and
// delivery of the resulting messages happen after the lock is released.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/keshon/toolmaker/internal/ai"
	"github.com/keshon/toolmaker/internal/arsenal"
	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/hunger"
	"github.com/keshon/toolmaker/internal/notify"
	"github.com/keshon/toolmaker/internal/scheduler"
	"github.com/keshon/toolmaker/internal/state"
	"github.com/keshon/toolmaker/internal/texts"
	"github.com/rs/zerolog/log"
)

var (
	ErrInactive       = errors.New("workshop is outside its active window")
	ErrForeignSubject = errors.New("workshop is bound to another subject")
)

// Options wires a Workshop. A zero Until leaves the window open-ended.
type Options struct {
	Store    state.Store
	Clock    clock.Clock
	Rand     arsenal.Source
	Images   ai.ImageGenerator
	Schedule scheduler.Schedule
	From     time.Time
	Until    time.Time
}

// Workshop owns all access to the state.
type Workshop struct {
	mu         sync.Mutex
	store      state.Store
	clock      clock.Clock
	rnd        arsenal.Source // used only under mu
	images     ai.ImageGenerator
	dispatcher *scheduler.Dispatcher
	from       time.Time
	until      time.Time
}

func New(opts Options) *Workshop {
	images := opts.Images
	if images == nil {
		images = ai.Disabled{}
	}
	return &Workshop{
		store:      opts.Store,
		clock:      opts.Clock,
		rnd:        opts.Rand,
		images:     images,
		dispatcher: scheduler.New(opts.Schedule, opts.Rand),
		from:       opts.From,
		until:      opts.Until,
	}
}

// Active reports whether t is inside the active window.
func (w *Workshop) Active(t time.Time) bool {
	if t.Before(w.from) {
		return false
	}
	return w.until.IsZero() || t.Before(w.until)
}

type operation func(s *state.State, now time.Time) []notify.Message

// load returns the persisted state, or the defaults when there is none or
// it cannot be decoded.
func (w *Workshop) load(ctx context.Context, now time.Time) (*state.State, error) {
	today := clock.DateString(now)
	s, err := w.store.Load(ctx)
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, state.ErrNotFound):
		return state.New(today), nil
	case errors.Is(err, state.ErrMalformed):
		log.Error().Str("component", "engine").Err(err).Msg("Persisted state is malformed, starting from defaults")
		return state.New(today), nil
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}
}

// mutate runs op as one load-mutate-save cycle on behalf of subject.
func (w *Workshop) mutate(ctx context.Context, subject string, op operation) ([]notify.Message, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	s, err := w.load(ctx, now)
	if err != nil {
		return nil, err
	}
	return w.apply(ctx, s, now, subject, op)
}

func (w *Workshop) apply(ctx context.Context, s *state.State, now time.Time, subject string, op operation) ([]notify.Message, error) {
	if !w.Active(now) {
		return nil, ErrInactive
	}
	if s.SubjectID != "" && subject != "" && subject != s.SubjectID {
		return nil, ErrForeignSubject
	}
	msgs := op(s, now)
	if err := w.store.Save(ctx, s); err != nil {
		log.Error().Str("component", "engine").Err(err).Msg("Failed to save state")
		return nil, fmt.Errorf("save state: %w", err)
	}
	return msgs, nil
}

// Start binds the subject, or confirms the binding, and opens the day.
func (w *Workshop) Start(ctx context.Context, subject string) ([]notify.Message, error) {
	return w.mutate(ctx, subject, func(s *state.State, now time.Time) []notify.Message {
		if s.SubjectID == "" {
			log.Info().Str("component", "engine").Str("subject", subject).Msg("Subject bound")
		}
		s.SubjectID = subject
		s.RollDay(clock.DateString(now))
		hunger.Feed(s, now)
		return []notify.Message{notify.Text(texts.Welcome)}
	})
}

// AnswerPlan records the reply to the daily plan prompt.
func (w *Workshop) AnswerPlan(ctx context.Context, subject, text string) ([]notify.Message, error) {
	return w.mutate(ctx, subject, func(s *state.State, _ time.Time) []notify.Message {
		return w.answerPlan(s, text)
	})
}

func (w *Workshop) answerPlan(s *state.State, text string) []notify.Message {
	yes, ok := PlanAnswer(text)
	if !ok {
		return []notify.Message{notify.Text(texts.PlanReprompt)}
	}
	s.PlanConfirmed = &yes
	s.MorningAcknowledged = true
	s.AwaitingDailyPlan = false
	if yes {
		return []notify.Message{
			notify.Text(texts.PlanConfirmed),
			{Image: &notify.Image{
				Prompt:   texts.SunrisePrompt,
				Caption:  texts.SunriseCaption,
				Fallback: texts.SunriseFallback,
			}},
		}
	}
	return []notify.Message{notify.Text(texts.Goals(arsenal.DrawDailyGoals(w.rnd)))}
}

// Done records a produced tool.
func (w *Workshop) Done(ctx context.Context, subject string) ([]notify.Message, error) {
	return w.mutate(ctx, subject, w.done)
}

func (w *Workshop) done(s *state.State, now time.Time) []notify.Message {
	if s.AwaitingDailyPlan {
		return []notify.Message{notify.Text(texts.PlanRequired)}
	}
	out := arsenal.Record(s, now, w.rnd)
	log.Info().Str("component", "engine").Int("number", out.Number).
		Str("tool", out.Tool.Key).Str("material", out.Material.Key).
		Bool("milestone", out.Milestone).Msg("Tool produced")

	msgs := []notify.Message{
		notify.Text(texts.Produced(out.Number, out.Tool.Name, out.Material.Name, out.Milestone, out.BonusHours)),
		{Image: &notify.Image{
			Prompt:   texts.ToolPrompt(out.Tool.Name, out.Material.Name, out.Milestone),
			Fallback: texts.ImageUnavailable,
		}},
	}
	if out.GrandAchievement {
		msgs = append(msgs, notify.Message{Image: &notify.Image{
			Prompt:  texts.AmberPrompt,
			Caption: texts.AmberCaption,
		}})
	}
	return append(msgs, notify.Text(texts.Progress(out.Number, arsenal.GrandAchievementAt)))
}

// Tried banks the attempt bonus.
func (w *Workshop) Tried(ctx context.Context, subject string) ([]notify.Message, error) {
	return w.mutate(ctx, subject, w.tried)
}

func (w *Workshop) tried(s *state.State, now time.Time) []notify.Message {
	hunger.Replenish(s, now, arsenal.AttemptBonusHours)
	return []notify.Message{notify.Text(arsenal.Pick(w.rnd, texts.TriedPhrases))}
}

// Penalty takes the penalty hour away.
func (w *Workshop) Penalty(ctx context.Context, subject string) ([]notify.Message, error) {
	return w.mutate(ctx, subject, w.penalty)
}

func (w *Workshop) penalty(s *state.State, now time.Time) []notify.Message {
	hunger.Penalize(s, now, arsenal.PenaltyHours)
	return []notify.Message{notify.Text(arsenal.Pick(w.rnd, texts.PenaltyPhrases))}
}

// Status reports the supplies. It is read-only and ignores the window.
func (w *Workshop) Status(ctx context.Context) ([]notify.Message, error) {
	s, now, err := w.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	mode, left := hunger.Remaining(s, now)
	report := texts.Status(s.ProductionTotal, arsenal.GrandAchievementAt, hunger.DeficitHours(s, now), mode, left)
	return []notify.Message{notify.Text(report)}, nil
}

// HandleText routes free text: to the plan interpreter while a plan answer
// is awaited, otherwise to the operation its vocabulary names. Unrecognized
// text yields no messages and no error.
func (w *Workshop) HandleText(ctx context.Context, subject, text string) ([]notify.Message, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	s, err := w.load(ctx, now)
	if err != nil {
		return nil, err
	}

	var op operation
	if s.AwaitingDailyPlan {
		op = func(s *state.State, _ time.Time) []notify.Message { return w.answerPlan(s, text) }
	} else {
		intent := Classify(text)
		log.Debug().Str("component", "engine").Str("subject", subject).
			Str("intent", intent.String()).Msg("Free text classified")
		switch intent {
		case IntentDone:
			op = w.done
		case IntentTried:
			op = w.tried
		case IntentPenalty:
			op = w.penalty
		default:
			return nil, nil
		}
	}
	return w.apply(ctx, s, now, subject, op)
}

// Snapshot returns the current state, freshly loaded, and the instant it
// was read at. Changes to it are not persisted.
func (w *Workshop) Snapshot(ctx context.Context) (*state.State, time.Time, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	s, err := w.load(ctx, now)
	if err != nil {
		return nil, now, err
	}
	return s, now, nil
}

// Deliver renders msgs through the image generator and sends them to recipient.
func (w *Workshop) Deliver(ctx context.Context, n notify.Notifier, recipient string, msgs []notify.Message) error {
	return notify.Deliver(ctx, w.images, n, recipient, msgs)
}
