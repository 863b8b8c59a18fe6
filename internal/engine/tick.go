package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/toolmaker/internal/notify"
	"github.com/rs/zerolog/log"
)

// Tick evaluates the scheduled triggers once. It does nothing outside the
// active window or before a subject is bound.
func (w *Workshop) Tick(ctx context.Context) (recipient string, msgs []notify.Message, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	if !w.Active(now) {
		return "", nil, nil
	}
	s, err := w.load(ctx, now)
	if err != nil {
		return "", nil, err
	}
	if s.SubjectID == "" {
		return "", nil, nil
	}

	for _, ev := range w.dispatcher.Tick(s, now) {
		log.Info().Str("component", "scheduler").Str("trigger", string(ev.Trigger)).
			Str("subject", s.SubjectID).Msg("Trigger fired")
		msgs = append(msgs, ev.Message)
	}
	if err := w.store.Save(ctx, s); err != nil {
		return "", nil, fmt.Errorf("save state: %w", err)
	}
	return s.SubjectID, msgs, nil
}

// Run ticks every interval and delivers the fired notifications through n
// until ctx is done.
func (w *Workshop) Run(ctx context.Context, interval time.Duration, n notify.Notifier) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runOnce(ctx, n)
		}
	}
}

func (w *Workshop) runOnce(ctx context.Context, n notify.Notifier) {
	// A tick that has started must save even if shutdown cancels ctx.
	recipient, msgs, err := w.Tick(context.WithoutCancel(ctx))
	if err != nil {
		log.Error().Str("component", "scheduler").Err(err).Msg("Tick failed")
		return
	}
	if len(msgs) == 0 {
		return
	}
	if err := w.Deliver(ctx, n, recipient, msgs); err != nil {
		log.Warn().Str("component", "scheduler").Str("subject", recipient).Err(err).Msg("Failed to deliver notifications")
	}
}
