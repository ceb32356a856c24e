package router

import (
	"context"
	"time"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"go.uber.org/zap"
)

// Schedule periodically refreshes the cached lineup and guide until the
// context is canceled.
func Schedule(ctx context.Context, client *lgtv.Client, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("The scheduling task has been stopped.")
				return
			case <-ticker.C:
				logger.Info("Start executing the scheduling task.")

				if err := updateChannelsWithRetry(ctx, client, 3); err != nil {
					logger.Error("Failed to update channel list.", zap.Error(err))
				}

				if err := updateEPG(ctx, client); err != nil {
					logger.Error("Failed to update EPG.", zap.Error(err))
				}

				logger.Info("The scheduling task has been completed.")
			}
		}
	}()
}
