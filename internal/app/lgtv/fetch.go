package lgtv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// fetchJSON performs a GET against the configured upstream and decodes the
// JSON object response. Transport errors, non-2xx statuses and undecodable
// bodies are all retried with a linearly increasing delay; the last error is
// returned once the attempts are exhausted.
func (c *Client) fetchJSON(ctx context.Context, apiPath string, params url.Values) (map[string]any, error) {
	u, err := url.Parse(c.origin)
	if err != nil {
		return nil, err
	}
	u = u.JoinPath(apiPath)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	reqURL := u.String()

	var lastErr error
	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.backoff):
			}
		}

		if err = c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to fetch %s after %d attempts: %w", apiPath, c.config.Retries+1, lastErr)
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("http status code: %d", resp.StatusCode)
	}

	var result map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return result, nil
}
