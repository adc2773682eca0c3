package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
)

// IdempotencyKeyHeader marks a request the caller is willing to have sent
// more than once. Without it, only methods that are idempotent by definition
// are retried.
const IdempotencyKeyHeader = "Idempotency-Key"

// jitter spreads each delay within ±25% of the computed interval.
const jitter = 0.25

// retryPolicy holds the values of config.RetryConfig in unexported form so
// the config package does not leak through the client API.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func (p retryPolicy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxInterval = p.maxInterval
	b.Multiplier = p.multiplier
	b.RandomizationFactor = jitter
	return b
}

// attemptsFor reports how many times req may be sent.
func (p retryPolicy) attemptsFor(req *http.Request) int {
	if replayable(req) {
		return p.maxAttempts
	}
	return 1
}

func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(IdempotencyKeyHeader) != ""
}

// doWithRetry sends req until it gets a non-retryable answer or runs out of
// attempts, waiting an exponentially growing, jittered delay in between.
// The body is buffered so every attempt sends it again.
//
// The result is written to resp rather than returned to keep the bodyclose
// linter quiet; the caller closes it. Once attempts run out on a retryable
// status, resp holds that last response with its body unread and the error
// is non-nil as well.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	attempts := c.retry.attemptsFor(req)
	attempt := 0
	// rejected is a retryable response not yet drained.
	var rejected *http.Response

	send := func() (*http.Response, error) {
		attempt++
		resetRequestBody(req, bodyBytes)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if isRetryableStatus(r.StatusCode) {
			rejected = r
			return nil, fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		}
		return r, nil
	}

	notify := func(err error, delay time.Duration) {
		if rejected != nil {
			drainResponseBody(rejected)
			rejected = nil
		}
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			logging.Operation("httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", attempts),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)
	}

	r, err := backoff.Retry(ctx, send,
		backoff.WithBackOff(c.retry.backOff()),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithNotify(notify),
	)
	if err != nil {
		*resp = rejected
		return err
	}
	*resp = r
	return nil
}

// bufferRequestBody reads and closes the request body so it can be replayed.
// A nil body gives nil bytes.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else, network errors
// included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the remote store asked us to come back
// later: 429 or any 5xx.
func isRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
