package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/httpclient"
)

// requester runs one JSON request/response exchange through the instrumented
// client: marshal, send, check status, translate errors, decode, close.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func (r *requester) do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := r.client.NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if method == http.MethodPost {
		// The only POST is an import, which replaces the whole list, so a
		// replay leaves the remote store in the same state.
		req.Header.Set(httpclient.IdempotencyKeyHeader, uuid.NewString())
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Do returns both resp and err once retries on a retryable status are
		// exhausted; the status then carries the better error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "remote request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logger.ErrorContext(ctx, "unexpected status from remote store",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
