package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/wordcards/internal/vocab"
)

// Fetcher loads the raw dataset payload for a mode.
type Fetcher interface {
	Fetch(ctx context.Context, mode vocab.Mode) ([]byte, error)
}

// FileNames maps dataset modes to file names under a directory or base URL.
var FileNames = map[vocab.Mode]string{
	vocab.ModeWords:   "words.json",
	vocab.ModePhrases: "phrases.json",
}

func fileName(mode vocab.Mode) (string, error) {
	name, ok := FileNames[mode]
	if !ok {
		return "", fmt.Errorf("no dataset for mode %q", mode)
	}
	return name, nil
}

//go:embed data/*.json
var builtin embed.FS

type embeddedFetcher struct{}

// Builtin returns the Fetcher for the datasets compiled into the binary.
func Builtin() Fetcher {
	return embeddedFetcher{}
}

func (embeddedFetcher) Fetch(_ context.Context, mode vocab.Mode) ([]byte, error) {
	name, err := fileName(mode)
	if err != nil {
		return nil, err
	}
	return builtin.ReadFile("data/" + name)
}

// DirFetcher reads datasets from JSON files in a directory.
type DirFetcher struct {
	Dir string
}

func (d DirFetcher) Fetch(_ context.Context, mode vocab.Mode) ([]byte, error) {
	name, err := fileName(mode)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(d.Dir, name))
}

// HTTPFetcher downloads datasets from BaseURL/<file>.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher with a client bounded by timeout.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (h *HTTPFetcher) Fetch(ctx context.Context, mode vocab.Mode) ([]byte, error) {
	name, err := fileName(mode)
	if err != nil {
		return nil, err
	}
	u, err := url.JoinPath(strings.TrimRight(h.BaseURL, "/"), name)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s failed: %d", u, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// ErrSourceUnavailable reports that a dataset could not be fetched or
// was not usable.
type ErrSourceUnavailable struct {
	Mode vocab.Mode
	Err  error
}

func (e *ErrSourceUnavailable) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Mode, e.Err)
}

func (e *ErrSourceUnavailable) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is an ErrSourceUnavailable.
func IsUnavailable(err error) bool {
	var su *ErrSourceUnavailable
	return errors.As(err, &su)
}
