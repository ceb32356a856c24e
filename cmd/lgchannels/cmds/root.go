package cmds

import (
	"os"
	"path/filepath"

	"github.com/BuddyChewChew/lg-playlist-generator/internal/app/config"
	"github.com/BuddyChewChew/lg-playlist-generator/internal/pkg/logging"
	"github.com/BuddyChewChew/lg-playlist-generator/internal/pkg/util"
	"github.com/spf13/cobra"
)

var (
	cfgFile string

	conf *config.Config
)

func init() {
	cobra.OnInitialize(initConfig)
}

func NewRootCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lgchannels",
		Short:         "Generate M3U playlists and XMLTV guides from the LG Channels API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewGenerateCLI())
	rootCmd.AddCommand(NewServeCLI())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML config file")

	return rootCmd
}

// initConfig locates and loads the config file, writing a default one next
// to the executable on first run, then installs the global logger.
func initConfig() {
	var err error
	var fPath string

	if cfgFile != "" {
		fPath = cfgFile
	} else {
		cfgHome, err := util.GetCurrentAbPathByExecutable()
		cobra.CheckErr(err)

		fPath = filepath.Join(cfgHome, "config.yml")

		if _, err = os.Stat(fPath); os.IsNotExist(err) {
			err = config.CreateDefaultCfg(fPath)
			cobra.CheckErr(err)
		}
	}

	conf, err = config.Load(fPath)
	cobra.CheckErr(err)

	lCfg := conf.Log
	if lCfg == nil {
		lCfg = &logging.LogConfig{}
	}
	cobra.CheckErr(logging.InitLogger(lCfg))
}
