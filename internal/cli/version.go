package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cymig/cymig/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cymig version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cymig %s (%s, %s)\n", build.Version, build.Commit, build.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
