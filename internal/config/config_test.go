package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"imagestage/internal/config"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("IMAGEMAGICK_PATH", "")
	t.Setenv("IMAGESTAGE_TEMP_DIR", "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "imagestage", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.ImageMagick.Path != "" {
		t.Fatalf("expected empty tool path, got %q", cfg.ImageMagick.Path)
	}
	if cfg.ImageMagick.IdentifyBinary != "identify" || cfg.ImageMagick.ConvertBinary != "convert" {
		t.Fatalf("unexpected binaries: %+v", cfg.ImageMagick)
	}
	if cfg.Image.Quality != 90 {
		t.Fatalf("expected default quality 90, got %d", cfg.Image.Quality)
	}
	if cfg.Paths.TempDir == "" {
		t.Fatal("expected temp dir default")
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "imagestage", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.ToolTimeout() != 0 {
		t.Fatalf("expected no tool timeout, got %s", cfg.ToolTimeout())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	toolDir := filepath.Join(tempDir, "ImageMagick")
	if err := os.MkdirAll(toolDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tempDir, "imagestage.toml")
	t.Setenv("IMAGEMAGICK_PATH", "")

	type payload struct {
		ImageMagick struct {
			Path               string `toml:"path"`
			ToolTimeoutSeconds int    `toml:"tool_timeout_seconds"`
		} `toml:"imagemagick"`
		Image struct {
			Quality     int   `toml:"quality"`
			CanvasColor []int `toml:"canvas_color"`
		} `toml:"image"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.ImageMagick.Path = toolDir
	custom.ImageMagick.ToolTimeoutSeconds = 30
	custom.Image.Quality = 75
	custom.Image.CanvasColor = []int{10, 20, 30}
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.ImageMagick.Path != toolDir {
		t.Fatalf("expected tool path %q, got %q", toolDir, cfg.ImageMagick.Path)
	}
	if cfg.ToolTimeout() != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.ToolTimeout())
	}
	if cfg.Image.Quality != 75 {
		t.Fatalf("expected quality 75, got %d", cfg.Image.Quality)
	}
	if len(cfg.Image.CanvasColor) != 3 || cfg.Image.CanvasColor[2] != 30 {
		t.Fatalf("unexpected canvas color: %v", cfg.Image.CanvasColor)
	}
	if cfg.Image.ScaleMethod != "smooth" {
		t.Fatalf("expected default scale method to survive partial file, got %q", cfg.Image.ScaleMethod)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized log format, got %q", cfg.Logging.Format)
	}
}

func TestEnvOverridesToolPath(t *testing.T) {
	toolDir := t.TempDir()
	t.Setenv("IMAGEMAGICK_PATH", toolDir)
	t.Setenv("HOME", t.TempDir())

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ImageMagick.Path != toolDir {
		t.Fatalf("expected tool path from env, got %q", cfg.ImageMagick.Path)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[imagemagick]") {
		t.Fatalf("sample config missing imagemagick section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Image.Quality != 90 {
		t.Fatalf("expected sample quality 90, got %d", cfg.Image.Quality)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Image.Quality = 101
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for quality above 100")
	}

	cfg = config.Default()
	cfg.Image.TextColor = []int{0, 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short color")
	}

	cfg = config.Default()
	cfg.Image.PencilColor = []int{0, 0, 256}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for color component out of range")
	}

	cfg = config.Default()
	cfg.Image.ScaleMethod = "lanczos -debug all"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for scale method that is not a filter name")
	}

	cfg = config.Default()
	cfg.Image.ScaleMethod = "mitchell"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected filter name to validate, got %v", err)
	}

	cfg = config.Default()
	cfg.ImageMagick.ToolTimeoutSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative timeout")
	}

	cfg = config.Default()
	cfg.ImageMagick.Path = filepath.Join(t.TempDir(), "missing")
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing tool directory")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.TempDir = filepath.Join(base, "tmp")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.TempDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}
