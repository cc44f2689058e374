package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	closer io.Closer
)

// Init configures the default slog logger to write text records to path
// (stderr when empty) at the given level. Calling Init again replaces the
// previous configuration and closes the previous log file.
//
// path: Log file path, appended to. Parent directories are created.
// level: "debug", "info", "warn" or "error". Empty means "info".
func Init(path string, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	var c io.Closer
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w, c = f, f
	}

	setDefault(w, lvl)
	if closer != nil {
		closer.Close()
	}
	closer = c
	return nil
}

// Close flushes and closes the log file opened by Init, if any, and points
// the default logger back at stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if closer == nil {
		return nil
	}
	setDefault(os.Stderr, slog.LevelInfo)
	err := closer.Close()
	closer = nil
	return err
}

func setDefault(w io.Writer, lvl slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s (allowed: debug, info, warn, error)", s)
	}
}
