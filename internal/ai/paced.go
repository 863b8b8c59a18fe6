package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Paced spaces generations at least minInterval apart and bounds each call,
// including its wait for the limiter, by timeout.
type Paced struct {
	next    ImageGenerator
	limiter *rate.Limiter
	timeout time.Duration
}

func NewPaced(next ImageGenerator, minInterval, timeout time.Duration) *Paced {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Paced{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
		timeout: timeout,
	}
}

func (p *Paced) Generate(ctx context.Context, prompt string) []byte {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.limiter.Wait(ctx); err != nil {
		log.Warn().Str("component", "ai").Err(err).Msg("image generation skipped while pacing")
		return nil
	}
	return p.next.Generate(ctx, prompt)
}
