package lgtv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestGetChannelPrograms_genreForms(t *testing.T) {
	srv := channelServer(t, "/v1/epg", `{
		"programs": [
			{"title": "Listed", "startTime": "2024-01-15T10:30:00Z", "endTime": "2024-01-15T11:00:00Z",
			 "genre": ["Drama", "Crime", "Mystery"]},
			{"title": "Single", "genre": "Comedy"},
			{"startTime": "2024-01-15T12:00:00Z"}
		]
	}`)
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 0)
	programs, err := c.GetChannelPrograms(context.Background(), "42")
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) != 3 {
		t.Fatalf("expected 3 programs; got %d", len(programs))
	}

	if got := programs[0].Categories; len(got) != 3 || got[0] != "Drama" || got[1] != "Crime" || got[2] != "Mystery" {
		t.Errorf("list genre = %v", got)
	}
	if got := programs[1].Categories; len(got) != 1 || got[0] != "Comedy" {
		t.Errorf("single genre = %v", got)
	}
	if programs[2].Title != "Unknown" {
		t.Errorf("missing title must default to Unknown; got %q", programs[2].Title)
	}
	for _, p := range programs {
		if p.ChannelID != "42" {
			t.Errorf("program not bound to its channel: %+v", p)
		}
	}
}

func TestGetChannelPrograms_missingProgramsKey(t *testing.T) {
	srv := channelServer(t, "/v1/epg", `{}`)
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 0)
	programs, err := c.GetChannelPrograms(context.Background(), "42")
	if err != nil {
		t.Fatalf("a channel without schedule data must not fail: %v", err)
	}
	if len(programs) != 0 {
		t.Errorf("expected no programs; got %d", len(programs))
	}
}

func TestGetChannelPrograms_queryWindow(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"programs": []}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.Client(), &Config{
		BaseURL:   srv.URL,
		Shape:     ShapeV1,
		EPGWindow: 24 * time.Hour,
		EPGLimit:  50,
	})
	if err != nil {
		t.Fatal(err)
	}
	c.limiter = rate.NewLimiter(rate.Inf, 1)

	if _, err = c.GetChannelPrograms(context.Background(), "42"); err != nil {
		t.Fatal(err)
	}

	if gotQuery.Get("channelId") != "42" {
		t.Errorf("channelId = %q", gotQuery.Get("channelId"))
	}
	if gotQuery.Get("limit") != "50" {
		t.Errorf("limit = %q", gotQuery.Get("limit"))
	}

	startStr, endStr := gotQuery.Get("startTime"), gotQuery.Get("endTime")
	if !strings.HasSuffix(startStr, "Z") || !strings.HasSuffix(endStr, "Z") {
		t.Errorf("timestamps must carry the Z suffix: start=%q end=%q", startStr, endStr)
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		t.Fatalf("startTime not RFC3339: %v", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		t.Fatalf("endTime not RFC3339: %v", err)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Errorf("window = %v, want 24h", got)
	}
}

func TestGetChannelPrograms_skipsMalformedEntries(t *testing.T) {
	srv := channelServer(t, "/v1/epg", `{
		"programs": ["junk", {"title": "Valid"}]
	}`)
	defer srv.Close()

	c := newTestClient(t, srv.URL, ShapeV1, 0)
	programs, err := c.GetChannelPrograms(context.Background(), "42")
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) != 1 || programs[0].Title != "Valid" {
		t.Errorf("expected only the valid program; got %+v", programs)
	}
}
