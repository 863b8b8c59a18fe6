package ai

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GigaChatOptions configures the GigaChat image client.
type GigaChatOptions struct {
	Auth          string // base64 client credentials for Basic auth
	OAuthURL      string
	APIURL        string
	Scope         string
	Model         string
	SkipTLSVerify bool
}

// GigaChat asks the chat model to draw and downloads the attached file.
type GigaChat struct {
	opts   GigaChatOptions
	client *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

func NewGigaChat(opts GigaChatOptions) *GigaChat {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.SkipTLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &GigaChat{
		opts:   opts,
		client: &http.Client{Transport: transport},
		now:    time.Now,
	}
}

func (g *GigaChat) Generate(ctx context.Context, prompt string) []byte {
	img, err := g.generate(ctx, prompt)
	if err != nil {
		log.Error().Str("component", "ai").Str("provider", "gigachat").Err(err).
			Str("prompt", previewPrompt(prompt)).Msg("image generation failed")
		return nil
	}
	return img
}

func (g *GigaChat) generate(ctx context.Context, prompt string) ([]byte, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	payload := map[string]interface{}{
		"model":         g.opts.Model,
		"messages":      []map[string]string{{"role": "user", "content": prompt}},
		"function_call": "auto",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.opts.APIURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completions http %d: %s", resp.StatusCode, truncate(respBody))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal: %w body=%s", err, truncate(respBody))
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("gigachat empty choices")
	}
	fileID, ok := extractImageID(parsed.Choices[0].Message.Content)
	if !ok {
		return nil, fmt.Errorf("no image in reply: %s", truncate([]byte(parsed.Choices[0].Message.Content)))
	}
	return g.download(ctx, token, fileID)
}

func (g *GigaChat) download(ctx context.Context, token, fileID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.opts.APIURL+"/files/"+url.PathEscape(fileID)+"/content", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("file %s http %d: %s", fileID, resp.StatusCode, truncate(b))
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}

// accessToken returns the cached token until a minute before it expires.
func (g *GigaChat) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && g.now().Before(g.expires.Add(-time.Minute)) {
		return g.token, nil
	}

	form := url.Values{"scope": {g.opts.Scope}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.opts.OAuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Authorization", "Basic "+g.opts.Auth)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oauth http %d: %s", resp.StatusCode, truncate(body))
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresAt   int64  `json:"expires_at"` // unix milliseconds
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal oauth: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("oauth returned no token")
	}
	g.token = parsed.AccessToken
	g.expires = time.UnixMilli(parsed.ExpiresAt)
	return g.token, nil
}
