package lgtv

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var ErrNoChannels = errors.New("no channels found in the lineup response")

// Channel is the canonical channel record, normalized from whichever API
// shape the upstream speaks.
type Channel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Number      string   `json:"number"` // display number, not used for ordering
	Logo        string   `json:"logo"`   // absolute URL or empty
	StreamURL   string   `json:"streamUrl"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// GetChannelList fetches the channel lineup and normalizes it. A response
// without a "channels" array is an error since nothing else can proceed
// without a lineup. Malformed entries are logged and skipped so that one bad
// channel cannot abort the batch.
func (c *Client) GetChannelList(ctx context.Context) ([]Channel, error) {
	data, err := c.fetchJSON(ctx, c.shape.ChannelsPath, nil)
	if err != nil {
		return nil, err
	}

	rawChannels, ok := data["channels"].([]any)
	if !ok {
		return nil, ErrNoChannels
	}

	fields := c.shape.Fields
	channels := make([]Channel, 0, len(rawChannels))
	for i, raw := range rawChannels {
		entry, ok := raw.(map[string]any)
		if !ok {
			c.logger.Warn("The channel entry is not an object, skip it.", zap.Int("index", i))
			continue
		}

		id := stringField(entry, fields.ID)
		if id == "" {
			c.logger.Warn("The channel entry has no identifier, skip it.", zap.Int("index", i))
			continue
		}

		name := stringField(entry, fields.Name)
		if name == "" {
			name = "Unknown"
		}

		channels = append(channels, Channel{
			ID:          id,
			Name:        name,
			Number:      stringField(entry, fields.Number),
			Logo:        c.absoluteURL(stringField(entry, fields.Logo)),
			StreamURL:   c.absoluteURL(stringField(entry, fields.Stream)),
			Description: stringField(entry, fields.Description),
			Categories:  stringListField(entry, fields.Categories),
		})
	}
	return channels, nil
}

// absoluteURL resolves root-relative logo/stream paths against the upstream
// origin. The newer API shape returns paths like /images/logo.png.
func (c *Client) absoluteURL(s string) string {
	if s == "" || strings.HasPrefix(s, "http") {
		return s
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return c.origin + s
}

// stringField reads a JSON value as a string. Channel identifiers in
// particular show up both as strings and as numbers depending on the API
// generation.
func stringField(entry map[string]any, key string) string {
	switch v := entry[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// stringListField reads a JSON value that may be a single string or a list
// of strings, preserving order and dropping non-string members.
func stringListField(entry map[string]any, key string) []string {
	switch v := entry[key].(type) {
	case string:
		return []string{v}
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	default:
		return nil
	}
}
