package router

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
)

const waitSeconds = 30

var (
	// latest lineup, swapped atomically by the scheduler
	channelsPtr atomic.Pointer[[]lgtv.Channel]
)

func loadChannels() []lgtv.Channel {
	if p := channelsPtr.Load(); p != nil {
		return *p
	}
	return nil
}

// GetM3UPlaylist serves the lineup as an M3U playlist.
func GetM3UPlaylist(c *gin.Context) {
	channels := loadChannels()
	if len(channels) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	c.String(http.StatusOK, lgtv.ToM3UFormat(channels, guideFilename))
}

// GetTxtPlaylist serves the lineup as plain name,url lines.
func GetTxtPlaylist(c *gin.Context) {
	channels := loadChannels()
	if len(channels) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	c.String(http.StatusOK, lgtv.ToTxtFormat(channels))
}

// GetChannels serves the normalized lineup as JSON.
func GetChannels(c *gin.Context) {
	channels := loadChannels()
	if len(channels) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	c.PureJSON(http.StatusOK, channels)
}

// updateChannelsWithRetry refreshes the cached lineup, waiting between
// failed attempts.
func updateChannelsWithRetry(ctx context.Context, client *lgtv.Client, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = updateChannels(ctx, client); err != nil {
			logger.Sugar().Errorf("Failed to update channel list, will try again after waiting %d seconds. Error: %v, number of retries: %d.", waitSeconds, err, i)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(waitSeconds * time.Second):
			}
		} else {
			break
		}
	}
	return err
}

func updateChannels(ctx context.Context, client *lgtv.Client) error {
	channels, err := client.GetChannelList(ctx)
	if err != nil {
		refreshTotal.WithLabelValues(refreshTargetChannels, refreshResultFailure).Inc()
		return err
	}

	if len(channels) == 0 {
		refreshTotal.WithLabelValues(refreshTargetChannels, refreshResultFailure).Inc()
		return errors.New("no channels found")
	}

	logger.Sugar().Infof("The channel list has been updated, rows: %d.", len(channels))
	channelsPtr.Store(&channels)

	refreshTotal.WithLabelValues(refreshTargetChannels, refreshResultSuccess).Inc()
	cachedChannels.Set(float64(len(channels)))

	return nil
}
