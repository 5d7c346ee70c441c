// Package pronounce resolves word and phrase text to an audio URL.
package pronounce

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrNoAudio is returned when a lookup succeeds but carries no audio URL.
var ErrNoAudio = errors.New("no audio url in response")

// Lookup resolves text to a playable audio URL.
type Lookup interface {
	Resolve(ctx context.Context, text string) (string, error)
}

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// audioPaths are the response fields checked for an audio URL, in order.
// They cover the Youdao translate API and dictionaryapi.dev shapes.
var audioPaths = []string{
	"speakUrl",
	"basic.uk-speak-url",
	"basic.us-speak-url",
	"0.phonetics.#(audio!=\"\").audio",
}

// Client looks up pronunciations over HTTP and caches resolved URLs.
type Client struct {
	endpoint string
	doer     Doer
	log      *zap.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewClient creates a Client for endpoint. A "{text}" placeholder in the
// endpoint is replaced by the escaped text; otherwise it is sent as the
// "q" query parameter.
func NewClient(endpoint string, timeout time.Duration, log *zap.Logger) *Client {
	return NewClientWithDoer(endpoint, &http.Client{Timeout: timeout}, log)
}

// NewClientWithDoer creates a Client that sends requests through doer.
func NewClientWithDoer(endpoint string, doer Doer, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		doer:     doer,
		log:      log,
		cache:    make(map[string]string),
	}
}

func (c *Client) requestURL(text string) (string, error) {
	if strings.Contains(c.endpoint, "{text}") {
		return strings.ReplaceAll(c.endpoint, "{text}", url.PathEscape(text)), nil
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", text)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Resolve returns the audio URL for text.
func (c *Client) Resolve(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoAudio
	}

	c.mu.Lock()
	cached, ok := c.cache[text]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	u, err := c.requestURL(text)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.doer.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pronunciation lookup failed: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	audio := extractAudio(body)
	if audio == "" {
		return "", ErrNoAudio
	}

	c.mu.Lock()
	c.cache[text] = audio
	c.mu.Unlock()
	return audio, nil
}

func extractAudio(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, p := range audioPaths {
		if v := gjson.GetBytes(body, p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// Quiet wraps a Lookup so failures are logged and reported as an empty
// URL. Pronunciation never interrupts a session.
func Quiet(l Lookup, log *zap.Logger) func(ctx context.Context, text string) string {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context, text string) string {
		if l == nil {
			return ""
		}
		u, err := l.Resolve(ctx, text)
		if err != nil {
			log.Warn("pronunciation lookup failed", zap.String("text", text), zap.Error(err))
			return ""
		}
		return u
	}
}
