package preflight

import (
	"context"

	"imagestage/internal/config"
	"imagestage/internal/magick"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config. A nil exec runs
// the tools on the host.
func RunAll(ctx context.Context, cfg *config.Config, platform magick.Platform, exec magick.Executor) []Result {
	if cfg == nil {
		return nil
	}
	if exec == nil {
		exec = magick.DefaultExecutor()
	}

	results := []Result{
		CheckDirectoryAccess("Working-copy directory", cfg.Paths.TempDir),
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	dir := cfg.ImageMagick.Path
	results = append(results,
		CheckToolVersion(ctx, exec, platform.Command(dir, cfg.ImageMagick.IdentifyBinary, "-version"), "identify"),
		CheckToolVersion(ctx, exec, platform.Command(dir, cfg.ImageMagick.ConvertBinary, "-version"), "convert"),
	)
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
