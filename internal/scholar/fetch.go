// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar turns a Google Scholar profile listing into finalized
// publication records: fetch, extract, classify, assemble.
package scholar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vinit-katariya/scholar-sync/internal/httputil"
	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// ErrRequestFailed is matched by every RequestError.
var ErrRequestFailed = errors.New("request failed")

// ErrRateLimitExhausted is returned when every attempt hit HTTP 429.
var ErrRateLimitExhausted = httputil.ErrRateLimitExhausted

// RequestError reports a response other than 200 or 429. It is never retried.
type RequestError struct {
	URL        string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// Is lets errors.Is(err, ErrRequestFailed) succeed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// Fetcher downloads the profile listing with a browser-like identity.
type Fetcher struct {
	Client *http.Client
	Config types.SyncConfig
	Logger *zap.Logger

	// Rand and Sleep are passed through to the retry policy; nil uses the
	// real clock and the process-wide random source.
	Rand  *rand.Rand
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewFetcher returns a Fetcher whose HTTP client honours cfg.Timeout.
func NewFetcher(cfg types.SyncConfig, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

// Fetch GETs url and returns the body of a 200 response. HTTP 429 is retried
// with backoff up to Config.MaxAttempts; any other status fails immediately
// with a *RequestError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	logger.Debug("fetching profile listing", zap.String("url", url))

	resp, err := httputil.DoWithRetry(ctx, f.Client, req, httputil.Policy{
		MaxAttempts: f.Config.MaxAttempts,
		BaseDelay:   f.Config.InitialBackoff,
		Rand:        f.Rand,
		Sleep:       f.Sleep,
		Logger:      logger,
	})
	if err != nil {
		if errors.Is(err, httputil.ErrRateLimitExhausted) {
			return nil, err
		}
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	logger.Debug("fetched profile listing", zap.Int("bytes", len(body)))
	return body, nil
}
