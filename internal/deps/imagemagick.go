package deps

import (
	"path/filepath"
	"runtime"
	"strings"

	"imagestage/internal/config"
)

// ImageMagickRequirements lists the identify and convert binaries described by
// cfg, resolved the same way images launch them.
func ImageMagickRequirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		return nil
	}
	dir := strings.TrimSpace(cfg.ImageMagick.Path)
	return []Requirement{
		{
			Name:        "identify",
			Command:     ToolCommand(dir, cfg.ImageMagick.IdentifyBinary),
			Description: "Reads image dimensions and format",
		},
		{
			Name:        "convert",
			Command:     ToolCommand(dir, cfg.ImageMagick.ConvertBinary),
			Description: "Applies transformations and exports images",
		},
	}
}

// ToolCommand resolves tool inside dir. An empty dir leaves the lookup to PATH.
func ToolCommand(dir, tool string) string {
	tool = strings.TrimSpace(tool)
	if dir == "" || tool == "" || filepath.IsAbs(tool) {
		return tool
	}
	return filepath.Join(dir, executableName(tool))
}

func executableName(base string) string {
	if runtime.GOOS == "windows" && filepath.Ext(base) == "" {
		return base + ".exe"
	}
	return base
}
