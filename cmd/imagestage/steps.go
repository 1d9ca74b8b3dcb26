package main

import (
	"context"

	"imagestage/internal/magick"
)

// imageStep is one committed transformation applied by a command.
type imageStep func(context.Context, *magick.Image) error

func cropStep(geom cropGeometry) imageStep {
	return func(ctx context.Context, img *magick.Image) error {
		return img.Crop(ctx, geom.Width, geom.Height, geom.X, geom.Y, true)
	}
}

func resizeStep(w, h int) imageStep {
	return func(ctx context.Context, img *magick.Image) error {
		return img.Resize(ctx, w, h)
	}
}

func fitStep(w, h int, interlace bool) imageStep {
	return func(ctx context.Context, img *magick.Image) error {
		if interlace {
			return img.ResizeProportionalInterlaced(ctx, w, h)
		}
		return img.ResizeProportional(ctx, w, h)
	}
}

func rotateStep(degrees int) imageStep {
	return func(ctx context.Context, img *magick.Image) error {
		return img.Rotate(ctx, degrees)
	}
}

func roundStep(radius int) imageStep {
	return func(ctx context.Context, img *magick.Image) error {
		return img.MakeRoundedCorners(ctx, radius)
	}
}
