package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/generator"
	"github.com/xll-gen/bin2c/internal/ui"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the outputs listed in bin2c.yaml are up to date",
	Long: `Renders every embed in memory and compares it with the file on disk.
Exits with status 1 and prints the changed lines when an output is missing or stale.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(manifestPath, logFlagsChanged(cmd))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&manifestPath, "file", "f", config.DefaultFile, "Manifest to read")
	rootCmd.AddCommand(checkCmd)
}

// runCheck reports embeds whose outputs differ from a fresh rendering.
// It returns an error wrapping generator.ErrStale when any output drifted.
func runCheck(path string, keepLogging bool) error {
	cfg, err := loadManifest(path, keepLogging)
	if err != nil {
		return err
	}

	ui.PrintHeader("Checking embeds:")
	drifts, err := generator.Check(cfg, filepath.Dir(path))
	if err != nil {
		ui.PrintError("Failed", err.Error())
		return err
	}

	for _, d := range drifts {
		if d.Missing {
			ui.PrintWarning(d.Name, d.Output+" is missing")
			continue
		}
		ui.PrintWarning(d.Name, d.Output+" is stale")
		ui.PrintBlock(d.Diff)
	}

	if len(drifts) > 0 {
		return fmt.Errorf("%w: %d of %d embeds (run 'bin2c generate')", generator.ErrStale, len(drifts), len(cfg.Embeds))
	}
	ui.PrintSuccess("Up to date", fmt.Sprintf("%d embeds", len(cfg.Embeds)))
	return nil
}
