package lgtv

import (
	"strings"
	"testing"
)

func TestToM3UFormat(t *testing.T) {
	channels := []Channel{
		{
			ID:         "1",
			Name:       "News One",
			Logo:       "https://cdn.example.com/1.png",
			StreamURL:  "https://cdn.example.com/1.m3u8",
			Categories: []string{"News", "Local"},
		},
		{
			ID:   "2",
			Name: "Lineup Only",
			// no stream URL, must not appear in the playlist
		},
	}

	got := ToM3UFormat(channels, "lgchannels_epg.xml.gz")
	want := "#EXTM3U x-tvg-url=lgchannels_epg.xml.gz\n" +
		"#EXTINF:-1 tvg-id=\"1\" tvg-name=\"News One\" tvg-logo=\"https://cdn.example.com/1.png\" group-title=\"News,Local\",News One\n" +
		"https://cdn.example.com/1.m3u8\n"
	if got != want {
		t.Errorf("ToM3UFormat:\ngot:  %q\nwant: %q", got, want)
	}

	if n := strings.Count(got, "#EXTINF"); n != 1 {
		t.Errorf("expected exactly 1 #EXTINF entry; got %d", n)
	}
}

func TestToM3UFormat_noCategories(t *testing.T) {
	channels := []Channel{{ID: "5", Name: "Bare", StreamURL: "http://x/5"}}
	got := ToM3UFormat(channels, "epg.xml.gz")
	if !strings.Contains(got, `group-title="",Bare`) {
		t.Errorf("empty category list must render an empty group-title; got %q", got)
	}
}

func TestToTxtFormat(t *testing.T) {
	channels := []Channel{
		{Name: "A", StreamURL: "http://x/a"},
		{Name: "No Stream"},
		{Name: "B", StreamURL: "http://x/b"},
	}
	got := ToTxtFormat(channels)
	want := "A,http://x/a\nB,http://x/b\n"
	if got != want {
		t.Errorf("ToTxtFormat = %q, want %q", got, want)
	}
}
