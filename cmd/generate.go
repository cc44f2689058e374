package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/generator"
	"github.com/xll-gen/bin2c/internal/ui"
	"github.com/xll-gen/bin2c/pkg/log"
)

var (
	// manifestPath is the manifest read by generate and check (--file).
	manifestPath string
	// jobs overrides the manifest's jobs setting when positive (--jobs).
	jobs int
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Convert every embed listed in bin2c.yaml",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), manifestPath, jobs, logFlagsChanged(cmd))
	},
}

func init() {
	generateCmd.Flags().StringVarP(&manifestPath, "file", "f", config.DefaultFile, "Manifest to read")
	generateCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Parallel conversions (default: manifest jobs, else number of CPUs)")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the manifest and converts all of its embeds.
// Paths in the manifest are relative to the manifest's directory.
//
// Parameters:
//   - path: The manifest file.
//   - jobs: Overrides the manifest's parallelism when positive.
//   - keepLogging: Leaves the logger configured by the command line flags alone.
func runGenerate(ctx context.Context, path string, jobs int, keepLogging bool) error {
	cfg, err := loadManifest(path, keepLogging)
	if err != nil {
		return err
	}
	if jobs > 0 {
		cfg.Jobs = jobs
	}
	ui.PrintHeader("Embeds:")
	results, err := generator.Generate(ctx, cfg, filepath.Dir(path))
	for _, r := range results {
		ui.PrintSuccess(r.Name, fmt.Sprintf("%s (%d bytes, %s)", r.Output, r.Bytes, r.Codec))
	}
	if err != nil {
		ui.PrintError("Failed", err.Error())
		return err
	}

	ui.PrintSuccess("Done", fmt.Sprintf("%d of %d embeds", len(results), len(cfg.Embeds)))
	return nil
}

// loadManifest reads the manifest and, unless the log flags were given,
// applies its logging section.
func loadManifest(path string, keepLogging bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if !keepLogging {
		logPath := cfg.Logging.Path
		if logPath != "" && !filepath.IsAbs(logPath) {
			logPath = filepath.Join(filepath.Dir(path), logPath)
		}
		if err := log.Init(logPath, cfg.Logging.Level); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func logFlagsChanged(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("log-level") || cmd.Flags().Changed("log-file")
}
