package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/codec"
	"github.com/xll-gen/bin2c/internal/generator"
	"github.com/xll-gen/bin2c/pkg/log"
)

var (
	// compress selects the codec applied before rendering (--compress).
	compress string
	logLevel string
	logFile  string
)

// rootCmd converts a single file: bin2c <input> <output> <name>.
var rootCmd = &cobra.Command{
	Use:   "bin2c <input> <output> <name>",
	Short: "Convert a binary file into a C byte array",
	Long: `bin2c renders the bytes of a file as a C source fragment declaring
"uint8_t <name>[]" and "uint32_t <name>_len", ready to be compiled into a
C/C++ build. Use "bin2c generate" to convert every file listed in bin2c.yaml.

Arguments starting with "-" must follow "--", as in: bin2c in.bin out.c -- -x`,
	Args:              exactArgs(3),
	PersistentPreRunE: initLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1], args[2], compress)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with its status:
// -1 for usage errors, 1 for any other failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

func init() {
	rootCmd.Flags().StringVar(&compress, "compress", string(codec.None), "Compress the payload before embedding (none, zstd, lz4)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Cmd: cmd, Err: err}
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// runConvert converts inputPath into outputPath as the array name.
// Nothing is printed on success.
func runConvert(inputPath, outputPath, name, compress string) error {
	kind, err := codec.ParseKind(compress)
	if err != nil {
		return err
	}
	_, err = generator.Convert(inputPath, outputPath, name, generator.Options{Codec: kind})
	return err
}

func initLogging(cmd *cobra.Command, args []string) error {
	return log.Init(logFile, logLevel)
}

// UsageError reports a command line that does not match the command's usage.
type UsageError struct {
	Cmd *cobra.Command
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// exactArgs is cobra.ExactArgs returning a UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{
				Cmd: cmd,
				Err: fmt.Errorf("accepts %d arg(s), received %d", n, len(args)),
			}
		}
		return nil
	}
}

// report prints err to w and returns the process exit status for it.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		if usageErr.Cmd != nil {
			fmt.Fprint(w, usageErr.Cmd.UsageString())
		}
		return -1
	}
	return 1
}
