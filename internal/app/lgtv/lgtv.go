package lgtv

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config carries everything the upstream client needs for one run.
type Config struct {
	BaseURL   string            // upstream origin, e.g. https://api.lgchannels.com
	Shape     string            // API shape name, see shape.go
	Headers   map[string]string // extra request headers, override the defaults
	Retries   int               // additional attempts after the first failure
	EPGWindow time.Duration     // forward-looking program window from now
	EPGLimit  int               // optional per-channel program cap, 0 means unset
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("invalid lgtv config: baseURL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("invalid lgtv config: baseURL must be an absolute URL")
	}
	if _, err = ShapeByName(c.Shape); err != nil {
		return err
	}
	if c.Retries < 0 {
		c.Retries = 0
	}
	if c.EPGWindow <= 0 {
		c.EPGWindow = 3 * 24 * time.Hour
	}
	return nil
}

type Client struct {
	httpClient *http.Client  // HTTP client, injected by the caller
	config     *Config       // upstream configuration
	shape      *APIShape     // resolved API shape
	origin     string        // scheme://host of BaseURL, used to absolutize relative URLs
	limiter    *rate.Limiter // spaces out upstream requests
	backoff    time.Duration // base delay between retry attempts
	logger     *zap.Logger
}

func NewClient(httpClient *http.Client, config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	shape, err := ShapeByName(config.Shape)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, err
	}

	c := Client{
		httpClient: httpClient,
		config:     config,
		shape:      shape,
		origin:     base.Scheme + "://" + base.Host,
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		backoff:    time.Second,
		logger:     zap.L(),
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &c, nil
}

// setCommonHeaders mimics the browser requests the upstream expects.
// The API rejects or misbehaves for clients without them.
// Accept-Encoding is deliberately left to net/http so the transport
// keeps decompressing gzip bodies transparently.
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Origin", "https://lgchannels.com")
	req.Header.Set("Referer", "https://lgchannels.com/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-site")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:141.0) Gecko/20100101 Firefox/141.0")
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
}
