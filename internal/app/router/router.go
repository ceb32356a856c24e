package router

import (
	"context"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	// guideFilename is the x-tvg-url value embedded in served playlists,
	// pointing back at this server's gzipped guide endpoint.
	guideFilename string
)

// NewEngine loads the initial lineup and guide, starts the refresh
// scheduler and wires the HTTP endpoints.
func NewEngine(ctx context.Context, client *lgtv.Client, epgFilename string, interval time.Duration) (*gin.Engine, error) {
	logger = zap.L()
	guideFilename = epgFilename

	gin.SetMode(gin.ReleaseMode)

	if err := initData(ctx, client); err != nil {
		return nil, err
	}

	Schedule(ctx, client, interval)

	r := gin.New()

	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// playlist formats
	r.GET("/playlist.m3u", GetM3UPlaylist)
	r.GET("/playlist.txt", GetTxtPlaylist)

	// guide formats
	r.GET("/epg.xml", GetXMLEPG)
	r.GET("/"+guideFilename, GetXMLEPGWithGzip)

	// lineup as JSON
	r.GET("/channels", GetChannels)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}

// initData performs the first lineup and guide load. A failed lineup load is
// fatal for startup; a failed guide load is not, the scheduler will retry.
func initData(ctx context.Context, client *lgtv.Client) error {
	if err := updateChannelsWithRetry(ctx, client, 3); err != nil {
		return err
	}

	if err := updateEPG(ctx, client); err != nil {
		logger.Error("Failed to update EPG.", zap.Error(err))
	}
	return nil
}
