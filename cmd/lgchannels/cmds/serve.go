package cmds

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/router"
	"github.com/spf13/cobra"
)

var httpConfig HttpConfig

type HttpConfig struct {
	Port     int           `json:"port"`
	Interval time.Duration `json:"interval"`
}

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start an HTTP service that serves the playlist and EPG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := conf.Validate(); err != nil {
				return err
			}

			// guard against hammering the upstream
			if httpConfig.Interval < 15*time.Minute {
				return errors.New("interval cannot be less than 15 minutes")
			}

			client, err := lgtv.NewClient(&http.Client{
				Timeout: conf.RequestTimeout(),
			}, conf.LGTV())
			if err != nil {
				return err
			}

			r, err := router.NewEngine(cmd.Context(), client, conf.EPGFilename, httpConfig.Interval)
			if err != nil {
				return err
			}
			return r.Run(fmt.Sprintf(":%d", httpConfig.Port))
		},
	}

	serveCmd.Flags().IntVarP(&httpConfig.Port, "port", "p", 8080, "HTTP listen port")
	serveCmd.Flags().DurationVarP(&httpConfig.Interval, "interval", "i", 24*time.Hour, "refresh interval for the lineup and EPG, e.g `24h or 15m`")

	return serveCmd
}
