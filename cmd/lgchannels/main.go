package main

import (
	"context"

	"github.com/BuddyChewChew/lg-playlist-generator/cmd/lgchannels/cmds"
	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(cmds.NewRootCLI().ExecuteContext(context.Background()))
}
