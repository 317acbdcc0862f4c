package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alphaquant/academy/internal/selfupdate"
)

// Release builds override this with -ldflags "-X .../cmd.version=vX.Y.Z".
var version = selfupdate.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the aqa version and platform",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s/%s, %s)\n",
			selfupdate.BinaryName, version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
