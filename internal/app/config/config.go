package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"github.com/BuddyChewChew/lg-playlist-generator/internal/pkg/logging"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL          = "https://api.lgchannels.com"
	defaultOutputDir        = "lgchannels_playlist"
	defaultPlaylistFilename = "lgchannels.m3u"
	defaultEPGFilename      = "lgchannels_epg.xml.gz"
	defaultTimeoutSeconds   = 30
	defaultRetries          = 2
	defaultEPGDays          = 3
)

type Config struct {
	BaseURL  string            `json:"baseURL" yaml:"baseURL"`   // upstream origin
	APIShape string            `json:"apiShape" yaml:"apiShape"` // v1 or lineup
	Headers  map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	OutputDir        string `json:"outputDir" yaml:"outputDir"`
	PlaylistFilename string `json:"playlistFilename" yaml:"playlistFilename"`
	EPGFilename      string `json:"epgFilename" yaml:"epgFilename"`

	TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"` // per-request timeout
	Retries        int `json:"retries" yaml:"retries"`               // additional attempts after the first failure

	EPGDays  int `json:"epgDays" yaml:"epgDays"`                       // lookahead window in days
	EPGHours int `json:"epgHours,omitempty" yaml:"epgHours,omitempty"` // overrides epgDays when > 0
	EPGLimit int `json:"epgLimit,omitempty" yaml:"epgLimit,omitempty"` // per-channel program cap, 0 means unset

	Log *logging.LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// Validate fills defaults and rejects values the run cannot proceed with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("invalid config: baseURL must be an absolute URL")
	}

	if _, err = lgtv.ShapeByName(c.APIShape); err != nil {
		return err
	}

	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.PlaylistFilename == "" {
		c.PlaylistFilename = defaultPlaylistFilename
	}
	if c.EPGFilename == "" {
		c.EPGFilename = defaultEPGFilename
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Retries <= 0 {
		c.Retries = defaultRetries
	}
	if c.EPGDays <= 0 {
		c.EPGDays = defaultEPGDays
	}
	if c.EPGHours < 0 {
		c.EPGHours = 0
	}
	if c.EPGLimit < 0 {
		c.EPGLimit = 0
	}
	return nil
}

// RequestTimeout is the per-request socket timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EPGWindow is the forward-looking program window. Hours take precedence
// over days when both are set.
func (c *Config) EPGWindow() time.Duration {
	if c.EPGHours > 0 {
		return time.Duration(c.EPGHours) * time.Hour
	}
	return time.Duration(c.EPGDays) * 24 * time.Hour
}

// LGTV builds the upstream client configuration.
func (c *Config) LGTV() *lgtv.Config {
	return &lgtv.Config{
		BaseURL:   c.BaseURL,
		Shape:     c.APIShape,
		Headers:   c.Headers,
		Retries:   c.Retries,
		EPGWindow: c.EPGWindow(),
		EPGLimit:  c.EPGLimit,
	}
}

func Load(fPath string) (*Config, error) {
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func CreateDefaultCfg(fPath string) error {
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)

	defaultCfg := Config{
		BaseURL:          defaultBaseURL,
		APIShape:         lgtv.ShapeV1,
		OutputDir:        defaultOutputDir,
		PlaylistFilename: defaultPlaylistFilename,
		EPGFilename:      defaultEPGFilename,
		TimeoutSeconds:   defaultTimeoutSeconds,
		Retries:          defaultRetries,
		EPGDays:          defaultEPGDays,
	}

	return encoder.Encode(&defaultCfg)
}
