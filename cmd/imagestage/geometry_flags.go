package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"imagestage/internal/magick"
)

// parseSize reads "WxH".
func parseSize(value string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(value)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("geometry %q: expected WxH", value)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("geometry %q: invalid width", value)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("geometry %q: invalid height", value)
	}
	return w, h, nil
}

// cropGeometry is a parsed "WxH+X+Y" region.
type cropGeometry struct {
	Width, Height, X, Y int
}

func parseCrop(value string) (cropGeometry, error) {
	parts := strings.Split(strings.TrimSpace(value), "+")
	if len(parts) != 3 {
		return cropGeometry{}, fmt.Errorf("crop %q: expected WxH+X+Y", value)
	}
	w, h, err := parseSize(parts[0])
	if err != nil {
		return cropGeometry{}, err
	}
	x, errX := strconv.Atoi(parts[1])
	y, errY := strconv.Atoi(parts[2])
	if errX != nil || errY != nil {
		return cropGeometry{}, fmt.Errorf("crop %q: invalid offset", value)
	}
	return cropGeometry{Width: w, Height: h, X: x, Y: y}, nil
}

// exportFlags carries the per-export overrides shared by output commands.
type exportFlags struct {
	format  string
	quality int
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Output format (defaults to the destination extension)")
	cmd.Flags().IntVar(&f.quality, "quality", 0, "Output quality 1-100 (defaults to the configured quality)")
}

func (f *exportFlags) options(cmd *cobra.Command) []magick.ExportOption {
	var opts []magick.ExportOption
	if strings.TrimSpace(f.format) != "" {
		opts = append(opts, magick.WithFormat(f.format))
	}
	if cmd.Flags().Changed("quality") {
		opts = append(opts, magick.WithQuality(f.quality))
	}
	return opts
}
