package lgtv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

// newTestClient builds a client against a test server with the retry
// backoff and rate limiter collapsed so tests stay fast.
func newTestClient(t *testing.T, baseURL, shape string, retries int) *Client {
	t.Helper()
	c, err := NewClient(&http.Client{Timeout: 5 * time.Second}, &Config{
		BaseURL: baseURL,
		Shape:   shape,
		Retries: retries,
	})
	if err != nil {
		t.Fatal(err)
	}
	c.backoff = time.Millisecond
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestFetchJSON_retriesUntilSuccess(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 2)
	result, err := c.fetchJSON(context.Background(), "/v1/channels", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 attempts; got %d", got)
	}
	if ok, _ := result["ok"].(bool); !ok {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestFetchJSON_exhaustsRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 2)
	if _, err := c.fetchJSON(context.Background(), "/v1/channels", nil); err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 attempts; got %d", got)
	}
}

func TestFetchJSON_badJSONIsRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 1)
	if _, err := c.fetchJSON(context.Background(), "/v1/channels", nil); err == nil {
		t.Fatal("expected a decode error")
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("expected 2 attempts; got %d", got)
	}
}

func TestFetchJSON_sendsBrowserHeaders(t *testing.T) {
	var gotUA, gotOrigin, gotCustom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotOrigin = r.Header.Get("Origin")
		gotCustom = r.Header.Get("X-Custom")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 0)
	c.config.Headers = map[string]string{"X-Custom": "yes"}
	if _, err := c.fetchJSON(context.Background(), "/v1/channels", nil); err != nil {
		t.Fatal(err)
	}
	if gotUA == "" {
		t.Error("User-Agent header not set")
	}
	if gotOrigin != "https://lgchannels.com" {
		t.Errorf("Origin = %q", gotOrigin)
	}
	if gotCustom != "yes" {
		t.Errorf("custom header not applied, got %q", gotCustom)
	}
}
