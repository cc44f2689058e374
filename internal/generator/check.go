package generator

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/xll-gen/bin2c/internal/config"
)

// Drift is an embed whose output does not match a fresh rendering.
type Drift struct {
	Name   string
	Output string
	// Missing is set when the output file does not exist.
	Missing bool
	// Diff lists removed ("-") and added ("+") lines, old output first.
	Diff string
}

// Check renders every embed in memory and compares the result with the
// output file on disk. Nothing is written.
func Check(cfg *config.Config, baseDir string) ([]Drift, error) {
	var drifts []Drift
	for _, e := range cfg.Embeds {
		opts, err := embedOptions(e)
		if err != nil {
			return nil, err
		}

		outputPath := resolve(baseDir, e.Output)
		want, err := renderFile(resolve(baseDir, e.Input), e.Name, opts)
		if err != nil {
			return nil, err
		}

		got, err := os.ReadFile(outputPath)
		if errors.Is(err, fs.ErrNotExist) {
			drifts = append(drifts, Drift{Name: e.Name, Output: outputPath, Missing: true})
			continue
		}
		if err != nil {
			return nil, &FileAccessError{Op: "read output", Path: outputPath, Err: err}
		}

		if !bytes.Equal(got, want) {
			drifts = append(drifts, Drift{
				Name:   e.Name,
				Output: outputPath,
				Diff:   lineDiff(string(got), string(want)),
			})
		}
	}
	return drifts, nil
}

// lineDiff returns the changed lines between two texts.
func lineDiff(oldText, newText string) string {
	differ := dmp.New()
	a, b, lines := differ.DiffLinesToChars(oldText, newText)
	diffs := differ.DiffCharsToLines(differ.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case dmp.DiffDelete:
			prefix = "-"
		case dmp.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
