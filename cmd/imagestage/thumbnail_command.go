package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imagestage/internal/magick"
)

var thumbnailModes = []string{"cover", "fit", "cut", "fill"}

func newThumbnailCommand(ctx *commandContext) *cobra.Command {
	var width, height int
	var mode, fillColor string
	var export exportFlags

	cmd := &cobra.Command{
		Use:   "thumbnail FILE DEST",
		Short: "Write a thumbnail of FILE to DEST",
		Long: `Write a thumbnail of FILE to DEST.

Modes:
  cover  scale to cover the box and center-crop the overflow (default)
  fit    scale to fit inside the box
  cut    oversample, halve and center-crop to the box
  fill   fit inside the box and pad to it with --fill-color`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode = strings.ToLower(strings.TrimSpace(mode))
			step, err := thumbnailStep(mode, width, height, fillColor)
			if err != nil {
				return err
			}

			img, err := ctx.openImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer img.Close()

			if err := step(cmd.Context(), img); err != nil {
				return fmt.Errorf("thumbnail %s: %w", args[0], err)
			}
			if err := img.Export(cmd.Context(), args[1], export.options(cmd)...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", args[1], dimensions(img.Width(), img.Height()))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Thumbnail width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Thumbnail height in pixels")
	cmd.Flags().StringVar(&mode, "mode", "cover", "Thumbnail mode: "+strings.Join(thumbnailModes, ", "))
	cmd.Flags().StringVar(&fillColor, "fill-color", "", "Padding color as R,G,B or #rrggbb for fill mode (defaults to the canvas color)")
	export.register(cmd)
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func thumbnailStep(mode string, w, h int, fillColor string) (imageStep, error) {
	switch mode {
	case "cover":
		return func(ctx context.Context, img *magick.Image) error {
			return img.ResizeProportionalCropTo(ctx, w, h)
		}, nil
	case "fit":
		return func(ctx context.Context, img *magick.Image) error {
			return img.ResizeProportional(ctx, w, h)
		}, nil
	case "cut":
		return func(ctx context.Context, img *magick.Image) error {
			return img.ThumbnailCutToFit(ctx, w, h)
		}, nil
	case "fill":
		color := ""
		if strings.TrimSpace(fillColor) != "" {
			rgb, err := magick.ParseRGB(fillColor)
			if err != nil {
				return nil, err
			}
			color = rgb.String()
		}
		return func(ctx context.Context, img *magick.Image) error {
			return img.ResizeWithFill(ctx, w, h, color)
		}, nil
	default:
		return nil, fmt.Errorf("unknown thumbnail mode %q (want %s)", mode, strings.Join(thumbnailModes, ", "))
	}
}
