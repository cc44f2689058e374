package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xll-gen/bin2c/internal/codec"
	"github.com/xll-gen/bin2c/internal/config"
	"golang.org/x/sync/errgroup"
)

// Generate converts every embed listed in cfg. Relative paths are resolved
// against baseDir, normally the directory holding bin2c.yaml.
//
// Up to cfg.Jobs conversions run at once. The first failure stops embeds
// that have not started yet and is returned together with the results of
// the embeds that did complete, in manifest order.
func Generate(ctx context.Context, cfg *config.Config, baseDir string) ([]Result, error) {
	log := slog.With("run", uuid.NewString())
	log.Info("generating", "embeds", len(cfg.Embeds), "jobs", cfg.Jobs)

	results := make([]Result, len(cfg.Embeds))
	done := make([]bool, len(cfg.Embeds))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}

	for i, e := range cfg.Embeds {
		i, e := i, e // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			opts, err := embedOptions(e)
			if err != nil {
				return err
			}

			res, err := Convert(resolve(baseDir, e.Input), resolve(baseDir, e.Output), e.Name, opts)
			if err != nil {
				log.Error("conversion failed", "name", e.Name, "error", err)
				return fmt.Errorf("embed %s: %w", e.Name, err)
			}

			log.Info("converted", "name", e.Name, "output", res.Output, "bytes", res.Bytes)
			results[i] = res
			done[i] = true
			return nil
		})
	}

	err := g.Wait()

	completed := make([]Result, 0, len(results))
	for i, ok := range done {
		if ok {
			completed = append(completed, results[i])
		}
	}
	return completed, err
}

func embedOptions(e config.Embed) (Options, error) {
	kind, err := codec.ParseKind(e.Compress)
	if err != nil {
		return Options{}, fmt.Errorf("embed %s: %w", e.Name, err)
	}
	return Options{Codec: kind}, nil
}

func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
