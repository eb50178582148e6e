// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the rate-limit aware request loop used by the
// fetcher.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrRateLimitExhausted is matched by every RateLimitError.
var ErrRateLimitExhausted = errors.New("rate limit retries exhausted")

// RateLimitError reports that every attempt was answered with HTTP 429.
type RateLimitError struct {
	URL      string
	Attempts int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("exceeded maximum retries (%d) due to repeated HTTP 429 responses from %s", e.Attempts, e.URL)
}

// Is lets errors.Is(err, ErrRateLimitExhausted) succeed.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimitExhausted
}

const (
	defaultMaxAttempts = 6
	defaultBaseDelay   = 2 * time.Second
)

// Policy configures DoWithRetry. Zero fields fall back to defaults.
type Policy struct {
	// MaxAttempts is the total number of requests, including the first (default 6).
	MaxAttempts int

	// BaseDelay is the first backoff step before jitter (default 2s).
	BaseDelay time.Duration

	// Rand supplies jitter. Nil uses the process-wide source.
	Rand *rand.Rand

	// Sleep waits between attempts. Tests replace it to avoid real sleeps.
	Sleep func(ctx context.Context, d time.Duration) error

	Logger *zap.Logger
}

// MaxBackoff is the longest wait Backoff ever returns.
const MaxBackoff = time.Duration(math.MaxInt64)

// Backoff returns how long to wait before retry number attempt (1-based).
//
// A Retry-After hint that parses as a non-negative number of seconds wins
// outright. Otherwise the delay is base * 2^(attempt-1) plus a uniform
// jitter in [0, 1s). Both are capped at MaxBackoff.
func Backoff(attempt int, hint string, base time.Duration, rnd *rand.Rand) time.Duration {
	if secs, ok := parseHint(hint); ok {
		return clampDuration(secs * float64(time.Second))
	}
	if attempt < 1 {
		attempt = 1
	}

	var f float64
	if rnd != nil {
		f = rnd.Float64()
	} else {
		f = rand.Float64()
	}
	exp := float64(base) * math.Pow(2, float64(attempt-1))
	if exp >= float64(MaxBackoff) {
		return MaxBackoff
	}
	// exp is exact here (base times a power of two), so jitter is added in
	// integer nanoseconds to keep the lower bound tight.
	jitter := time.Duration(f * float64(time.Second))
	d := time.Duration(exp)
	if d > MaxBackoff-jitter {
		return MaxBackoff
	}
	return d + jitter
}

// clampDuration converts nanoseconds to a Duration without overflowing.
func clampDuration(ns float64) time.Duration {
	if ns >= float64(MaxBackoff) {
		return MaxBackoff
	}
	return time.Duration(ns)
}

func parseHint(hint string) (float64, bool) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(hint, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// DoWithRetry executes req and retries on HTTP 429 (Too Many Requests).
//
// Any response other than 429 is returned to the caller as-is, so status
// handling stays with the caller. On each 429 the body is drained and closed
// before sleeping for Backoff(attempt, Retry-After). After MaxAttempts
// rate-limited responses it returns a *RateLimitError. If the context is
// cancelled during a wait the function returns ctx.Err().
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, p Policy) (*http.Response, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	base := p.BaseDelay
	if base <= 0 {
		base = defaultBaseDelay
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		hint := resp.Header.Get("Retry-After")
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		// No point waiting after the final attempt.
		if attempt == maxAttempts {
			break
		}

		wait := Backoff(attempt, hint, base, p.Rand)
		logger.Warn("rate limited, backing off",
			zap.String("url", req.URL.String()),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.String("retry_after", hint),
			zap.Duration("wait", wait),
		)

		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	return nil, &RateLimitError{URL: req.URL.String(), Attempts: maxAttempts}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
