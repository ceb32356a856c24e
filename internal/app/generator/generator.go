package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNoChannels = errors.New("no channels found")

// epgFetchConcurrency bounds the number of in-flight EPG requests.
const epgFetchConcurrency = 4

const (
	FormatM3U = "m3u"
	FormatTxt = "txt"
)

// Options selects the output artifacts of one generation run.
type Options struct {
	OutputDir        string
	PlaylistFilename string
	EPGFilename      string
	Format           string // m3u or txt
}

// Run performs one full generation: fetch and normalize the lineup, write
// the playlist, fetch the schedules and write the gzipped guide. A missing
// output directory or an empty lineup aborts the run before anything is
// written; a failure writing one artifact does not prevent the other.
func Run(ctx context.Context, client *lgtv.Client, opts Options) error {
	logger := zap.L()

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	channels, err := client.GetChannelList(ctx)
	if err != nil {
		return err
	}
	if len(channels) == 0 {
		return ErrNoChannels
	}
	logger.Sugar().Infof("A total of %d channels have been found.", len(channels))

	// The playlist is written first; a failure here is logged and the
	// guide is still attempted.
	var content string
	switch opts.Format {
	case FormatTxt:
		content = lgtv.ToTxtFormat(channels)
	default:
		content = lgtv.ToM3UFormat(channels, opts.EPGFilename)
	}
	playlistPath := filepath.Join(opts.OutputDir, opts.PlaylistFilename)
	if err = os.WriteFile(playlistPath, []byte(content), 0o644); err != nil {
		logger.Error("Failed to write the playlist.", zap.String("path", playlistPath), zap.Error(err))
	} else {
		logger.Info("Playlist saved.", zap.String("path", playlistPath))
	}

	programsByID := FetchAllPrograms(ctx, client, channels)
	guidePath := filepath.Join(opts.OutputDir, opts.EPGFilename)
	if err = lgtv.WriteXMLTVGzip(lgtv.ToXMLTV(channels, programsByID), guidePath); err != nil {
		logger.Error("Failed to write the EPG.", zap.String("path", guidePath), zap.Error(err))
	} else {
		logger.Info("EPG saved.", zap.String("path", guidePath))
	}

	return nil
}

// FetchAllPrograms fetches the schedule of every channel with a bounded
// number of concurrent requests. Results are collected into a slice indexed
// by channel position, so the guide order stays the channel order regardless
// of fetch completion order. A channel whose fetch fails degrades to an
// empty schedule.
func FetchAllPrograms(ctx context.Context, client *lgtv.Client, channels []lgtv.Channel) map[string][]lgtv.Program {
	logger := zap.L()

	results := make([][]lgtv.Program, len(channels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(epgFetchConcurrency)
	for i, channel := range channels {
		i, channel := i, channel
		g.Go(func() error {
			programs, err := client.GetChannelPrograms(gctx, channel.ID)
			if err != nil {
				logger.Warn("Failed to fetch the program list for channel.",
					zap.String("channelId", channel.ID), zap.Error(err))
				return nil
			}
			results[i] = programs
			return nil
		})
	}
	// Workers never return errors, they degrade to empty schedules.
	_ = g.Wait()

	programsByID := make(map[string][]lgtv.Program, len(channels))
	for i, channel := range channels {
		programsByID[channel.ID] = results[i]
	}
	return programsByID
}
