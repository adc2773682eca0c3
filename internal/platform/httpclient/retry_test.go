package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_BackOffGrowsWithinJitter(t *testing.T) {
	t.Parallel()

	p := retryPolicy{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	const samples = 50
	for range samples {
		b := p.backOff()
		base := 100 * time.Millisecond
		for attempt := 1; attempt <= 4; attempt++ {
			delay := b.NextBackOff()
			lo := time.Duration(float64(base) * (1 - jitter))
			hi := time.Duration(float64(base) * (1 + jitter))
			assert.True(t, delay >= lo && delay <= hi, "attempt %d: delay %v not in [%v, %v]", attempt, delay, lo, hi)
			base *= 2
		}
	}
}

func TestRetryPolicy_BackOffCappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	p := retryPolicy{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}
	ceiling := time.Duration(float64(p.maxInterval) * (1 + jitter))

	b := p.backOff()
	for range 20 {
		assert.LessOrEqual(t, b.NextBackOff(), ceiling)
	}
}

func TestRetryPolicy_AttemptsFor(t *testing.T) {
	t.Parallel()

	p := retryPolicy{maxAttempts: 3}

	tests := []struct {
		method string
		key    string
		want   int
	}{
		{method: http.MethodGet, want: 3},
		{method: http.MethodHead, want: 3},
		{method: http.MethodPut, want: 3},
		{method: http.MethodDelete, want: 3},
		{method: http.MethodPost, want: 1},
		{method: http.MethodPatch, want: 1},
		{method: http.MethodPost, key: "import-1", want: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s key=%q", tt.method, tt.key), func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/api/v1/tasks/import", http.NoBody)
			if tt.key != "" {
				req.Header.Set(IdempotencyKeyHeader, tt.key)
			}
			assert.Equal(t, tt.want, p.attemptsFor(req))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("GET /api/v1/tasks/export: %w", context.DeadlineExceeded), want: false},
		{name: "network", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: true},
		{name: "other", err: errors.New("EOF"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusConflict, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusGatewayTimeout, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetryableStatus(tt.status))
		})
	}
}
