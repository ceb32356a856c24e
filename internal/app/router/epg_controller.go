package router

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/generator"
	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"go.uber.org/zap"
)

var (
	// latest rendered guide, swapped atomically by the scheduler
	epgPtr atomic.Pointer[lgtv.TV]
)

// GetXMLEPG serves the guide as a plain XMLTV document.
func GetXMLEPG(c *gin.Context) {
	tv := epgPtr.Load()
	if tv == nil {
		c.Status(http.StatusNotFound)
		return
	}

	data, err := lgtv.MarshalXMLTV(tv)
	if err != nil {
		logger.Error("Failed to marshal xml.", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}

// GetXMLEPGWithGzip serves the guide as a gzip-compressed XMLTV download.
func GetXMLEPGWithGzip(c *gin.Context) {
	tv := epgPtr.Load()
	if tv == nil {
		c.Status(http.StatusNotFound)
		return
	}

	data, err := lgtv.MarshalXMLTV(tv)
	if err != nil {
		logger.Error("Failed to marshal xml.", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", guideFilename))

	gzipWriter := gzip.NewWriter(c.Writer)
	defer gzipWriter.Close()

	if _, err = gzipWriter.Write(data); err != nil {
		logger.Error("Failed to write gzipped xml.", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
}

// updateEPG refreshes the cached guide from the cached lineup.
func updateEPG(ctx context.Context, client *lgtv.Client) error {
	channels := loadChannels()
	if len(channels) == 0 {
		refreshTotal.WithLabelValues(refreshTargetEPG, refreshResultFailure).Inc()
		return errors.New("no channels")
	}

	programsByID := generator.FetchAllPrograms(ctx, client, channels)
	tv := lgtv.ToXMLTV(channels, programsByID)

	logger.Sugar().Infof("EPG data updated, programmes: %d.", len(tv.Programmes))
	epgPtr.Store(tv)

	refreshTotal.WithLabelValues(refreshTargetEPG, refreshResultSuccess).Inc()

	return nil
}
