package lgtv

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Program is one scheduled broadcast on a channel. Start and Stop keep the
// raw ISO-8601 timestamps as received; conversion to the guide format
// happens at render time.
type Program struct {
	ChannelID   string   `json:"channelId"`
	Title       string   `json:"title"`
	Start       string   `json:"start"`
	Stop        string   `json:"stop"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// GetChannelPrograms fetches the program schedule for one channel over the
// configured forward-looking window. A response without a "programs" array
// is not an error: the channel simply has no schedule data and must not
// block the rest of the guide. Malformed program entries are logged with
// channel context and skipped.
func (c *Client) GetChannelPrograms(ctx context.Context, channelID string) ([]Program, error) {
	start := time.Now().UTC()
	end := start.Add(c.config.EPGWindow)

	params := url.Values{}
	params.Set(c.shape.ChannelIDParam, channelID)
	params.Set("startTime", start.Format(time.RFC3339))
	params.Set("endTime", end.Format(time.RFC3339))
	if c.config.EPGLimit > 0 {
		params.Set("limit", strconv.Itoa(c.config.EPGLimit))
	}

	data, err := c.fetchJSON(ctx, c.shape.EPGPath, params)
	if err != nil {
		return nil, err
	}

	rawPrograms, ok := data["programs"].([]any)
	if !ok {
		c.logger.Warn("No EPG data found for channel.", zap.String("channelId", channelID))
		return nil, nil
	}

	programs := make([]Program, 0, len(rawPrograms))
	for i, raw := range rawPrograms {
		entry, ok := raw.(map[string]any)
		if !ok {
			c.logger.Warn("The program entry is not an object, skip it.",
				zap.String("channelId", channelID), zap.Int("index", i))
			continue
		}

		title := stringField(entry, "title")
		if title == "" {
			title = "Unknown"
		}

		programs = append(programs, Program{
			ChannelID:   channelID,
			Title:       title,
			Start:       stringField(entry, "startTime"),
			Stop:        stringField(entry, "endTime"),
			Description: stringField(entry, "description"),
			// genre arrives as a single string or a list of strings
			Categories: stringListField(entry, "genre"),
		})
	}
	return programs, nil
}
