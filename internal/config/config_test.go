package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidate_Embeds(t *testing.T) {
	tests := []struct {
		name      string
		embeds    []Embed
		compress  string
		wantError string
	}{
		{
			name:      "missing input",
			embeds:    []Embed{{Output: "a.c", Name: "a"}},
			wantError: "embed #1: input cannot be empty",
		},
		{
			name:      "missing output",
			embeds:    []Embed{{Input: "a.bin", Name: "a"}},
			wantError: "output cannot be empty",
		},
		{
			name:      "missing name",
			embeds:    []Embed{{Input: "a.bin", Output: "a.c"}},
			wantError: "name cannot be empty",
		},
		{
			name:      "unknown embed codec",
			embeds:    []Embed{{Input: "a.bin", Output: "a.c", Name: "a", Compress: "gzip"}},
			wantError: "unknown codec",
		},
		{
			name:      "unknown default codec",
			compress:  "brotli",
			wantError: "compress: unknown codec",
		},
		{
			name: "duplicate output",
			embeds: []Embed{
				{Input: "a.bin", Output: "out.c", Name: "a"},
				{Input: "b.bin", Output: "out.c", Name: "b"},
			},
			wantError: "duplicate output: out.c (embeds #1 and #2)",
		},
		{
			name: "duplicate output spelled differently",
			embeds: []Embed{
				{Input: "a.bin", Output: "src/out.c", Name: "a"},
				{Input: "b.bin", Output: "./src/out.c", Name: "b"},
			},
			wantError: "duplicate output: ./src/out.c (embeds #1 and #2)",
		},
		{
			name: "duplicate output through parent dir",
			embeds: []Embed{
				{Input: "a.bin", Output: "x.c", Name: "a"},
				{Input: "b.bin", Output: "b.c", Name: "b"},
				{Input: "c.bin", Output: "a/../x.c", Name: "c"},
			},
			wantError: "duplicate output: a/../x.c (embeds #1 and #3)",
		},
		{
			name:      "name is not checked as an identifier",
			embeds:    []Embed{{Input: "a.bin", Output: "a.c", Name: "not-an identifier"}},
			wantError: "",
		},
		{
			name: "valid",
			embeds: []Embed{
				{Input: "a.bin", Output: "a.c", Name: "a", Compress: "zstd"},
				{Input: "b.bin", Output: "b.c", Name: "b", Compress: "LZ4"},
			},
			compress:  "none",
			wantError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Compress: tt.compress,
				Embeds:   tt.embeds,
			}

			err := Validate(cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestValidate_LoggingLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", "warn", "error"} {
		if err := Validate(&Config{Logging: LoggingConfig{Level: level}}); err != nil {
			t.Errorf("level %q: unexpected error: %v", level, err)
		}
	}

	err := Validate(&Config{Logging: LoggingConfig{Level: "verbose"}})
	if err == nil || !strings.Contains(err.Error(), "invalid logging level: verbose") {
		t.Errorf("Validate() error = %v, want invalid logging level", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Compress: "zstd",
		Embeds: []Embed{
			{Input: "a.bin", Output: "a.c", Name: "a"},
			{Input: "b.bin", Output: "b.c", Name: "b", Compress: "lz4"},
		},
	}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Jobs != runtime.NumCPU() {
		t.Errorf("Jobs = %d, want %d", cfg.Jobs, runtime.NumCPU())
	}
	if cfg.Embeds[0].Compress != "zstd" {
		t.Errorf("embed a inherits %q, want zstd", cfg.Embeds[0].Compress)
	}
	if cfg.Embeds[1].Compress != "lz4" {
		t.Errorf("embed b override lost: %q", cfg.Embeds[1].Compress)
	}

	empty := &Config{Jobs: 3}
	ApplyDefaults(empty)
	if empty.Compress != "none" {
		t.Errorf("Compress = %q, want none", empty.Compress)
	}
	if empty.Jobs != 3 {
		t.Errorf("Jobs = %d, want 3", empty.Jobs)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	manifest := `
logging:
  level: debug
jobs: 2
embeds:
  - input: boot.bin
    output: boot_bin.c
    name: boot_bin
  - input: flash.bin
    output: flash_bin.c
    name: flash_bin
    compress: zstd
`
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Jobs != 2 {
		t.Errorf("unexpected settings: %+v", cfg)
	}
	if len(cfg.Embeds) != 2 {
		t.Fatalf("got %d embeds, want 2", len(cfg.Embeds))
	}
	if cfg.Embeds[0].Compress != "none" || cfg.Embeds[1].Compress != "zstd" {
		t.Errorf("unexpected codecs: %q %q", cfg.Embeds[0].Compress, cfg.Embeds[1].Compress)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("missing manifest: error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("embeds: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed manifest: error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("embeds:\n  - input: a.bin\n    output: a.c\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "name cannot be empty") {
		t.Errorf("invalid manifest: error = %v", err)
	}
}
