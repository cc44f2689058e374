package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bin2c version",
	Args:  exactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bin2c %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
