package cmds

import (
	"errors"
	"net/http"
	"slices"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/generator"
	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/lgtv"
	"github.com/spf13/cobra"
)

var (
	supportFileFormat = []string{generator.FormatM3U, generator.FormatTxt}

	format    string
	outputDir string
)

func NewGenerateCLI() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the channel lineup and EPG, then write the playlist and guide files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := conf.Validate(); err != nil {
				return err
			}

			if !slices.Contains(supportFileFormat, format) {
				return errors.New("file format not support")
			}

			client, err := lgtv.NewClient(&http.Client{
				Timeout: conf.RequestTimeout(),
			}, conf.LGTV())
			if err != nil {
				return err
			}

			dir := conf.OutputDir
			if outputDir != "" {
				dir = outputDir
			}

			return generator.Run(cmd.Context(), client, generator.Options{
				OutputDir:        dir,
				PlaylistFilename: conf.PlaylistFilename,
				EPGFilename:      conf.EPGFilename,
				Format:           format,
			})
		},
	}

	generateCmd.Flags().StringVarP(&format, "format", "f", generator.FormatM3U, "playlist file format, e.g `m3u or txt`")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory, overrides the config value")

	return generateCmd
}
