// Package search is the HTTP client for the external case-law search
// service. The service does all scoring and ranking; this package only
// submits the query and decodes the ranked results.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"kanun/internal/caselaw"
)

// StatusError is returned when the service answers with a non-2xx
// status. The code is kept for diagnostic logging; the body is
// truncated upstream of the caller and not meant for direct display.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search service error (status %d): %s", e.StatusCode, e.Body)
}

// Client submits queries to the search service.
type Client struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a search client for the given endpoint. The timeout
// bounds each request end to end.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

// Search submits a query and returns the ranked results. The query is
// forwarded exactly as given; an empty query is a valid request and the
// service decides what to do with it. Results arrive in service rank
// order and are returned unmodified.
func (c *Client) Search(ctx context.Context, query string) ([]caselaw.CaseRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := c.doWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return resp.Results, nil
}

// doWithRetry executes the search request, retrying up to 3 times on
// HTTP 429 or 5xx with exponential backoff (1s, 2s, 4s). The Retry-After
// header is honored on 429. Other 4xx responses fail immediately.
func (c *Client) doWithRetry(ctx context.Context, jsonBody []byte) ([]byte, error) {
	maxRetries := 3
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
			}
			lastErr = fmt.Errorf("request failed: %w", err)
			if attempt < maxRetries {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(backoffs[attempt]):
				}
			}
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("read response: %w", readErr)
			if attempt < maxRetries {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(backoffs[attempt]):
				}
			}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: truncateBody(body)}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = statusErr
			if attempt < maxRetries {
				delay := backoffs[attempt]
				if resp.StatusCode == http.StatusTooManyRequests {
					if ra := resp.Header.Get("Retry-After"); ra != "" {
						if seconds, parseErr := strconv.Atoi(ra); parseErr == nil && seconds > 0 {
							delay = time.Duration(seconds) * time.Second
							if delay > 30*time.Second {
								delay = 30 * time.Second
							}
						}
					}
				}
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(delay):
				}
			}
			continue
		}

		// Non-retryable status (e.g. 400, 404).
		return nil, statusErr
	}

	return nil, fmt.Errorf("search request failed after %d retries: %w", maxRetries, lastErr)
}

// FullDocumentURL builds the external viewer link for a record index.
// The link is opened by the user's browser; no response is consumed.
func FullDocumentURL(base, index string) string {
	return base + index
}

func truncateBody(body []byte) string {
	const maxLen = 512
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}

// searchRequest is the request body for the search service.
type searchRequest struct {
	Query string `json:"query"`
}

// searchResponse is the success response body.
type searchResponse struct {
	Results []caselaw.CaseRecord `json:"results"`
}
