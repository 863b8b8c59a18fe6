package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type PollinationsProvider struct {
	baseURL string
	client  *http.Client
}

func NewPollinations(baseURL string) *PollinationsProvider {
	return &PollinationsProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

func (p *PollinationsProvider) Generate(ctx context.Context, prompt string) []byte {
	img, err := p.generate(ctx, prompt)
	if err != nil {
		log.Error().Str("component", "ai").Str("provider", "pollinations").Err(err).
			Str("prompt", previewPrompt(prompt)).Msg("image generation failed")
		return nil
	}
	return img
}

func (p *PollinationsProvider) generate(ctx context.Context, prompt string) ([]byte, error) {
	q := url.Values{
		"width":   {"1024"},
		"height":  {"1024"},
		"nologo":  {"true"},
		"private": {"true"},
	}
	endpoint := p.baseURL + "/prompt/" + url.PathEscape(prompt) + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pollinations http %d: %s", resp.StatusCode, truncate(body))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("pollinations returned %q", ct)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("pollinations returned empty image")
	}
	return body, nil
}
