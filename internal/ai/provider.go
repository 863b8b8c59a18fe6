package ai

import (
	"context"
	"fmt"

	"github.com/keshon/toolmaker/internal/config"
	"github.com/rs/zerolog/log"
)

// ImageGenerator turns a prompt into image bytes. A nil result is the only
// failure signal: implementations log their errors and never return them.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) []byte
}

// Disabled never produces an image.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) []byte { return nil }

// New builds the configured generator, paced and bounded by the image
// timeout. Missing credentials degrade to Disabled.
func New(cfg *config.Config) (ImageGenerator, error) {
	var gen ImageGenerator
	switch cfg.ImageProvider {
	case "gigachat":
		if cfg.GigaChatAuth == "" {
			log.Warn().Str("component", "ai").Msg("GIGACHAT_AUTH is not set, images disabled")
			return Disabled{}, nil
		}
		gen = NewGigaChat(GigaChatOptions{
			Auth:          cfg.GigaChatAuth,
			OAuthURL:      cfg.GigaChatOAuthURL,
			APIURL:        cfg.GigaChatAPIURL,
			Scope:         cfg.GigaChatScope,
			Model:         cfg.GigaChatModel,
			SkipTLSVerify: cfg.GigaChatSkipTLSVerify,
		})
	case "pollinations":
		gen = NewPollinations(cfg.PollinationsURL)
	case "none", "":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unsupported IMAGE_PROVIDER: %s", cfg.ImageProvider)
	}
	return NewPaced(gen, cfg.ImageMinInterval, cfg.ImageTimeout), nil
}
