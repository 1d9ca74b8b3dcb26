package magick

import "context"

func checkBox(op string, w, h int) error {
	if w <= 0 || h <= 0 {
		return argumentError(op, "dimensions %dx%d must be positive", w, h)
	}
	return nil
}

// atLeastOne keeps extreme aspect ratios from truncating an axis to zero,
// which ImageMagick would read as "unspecified".
func atLeastOne(s Size) Size {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	return s
}

// Resize forces the exact target dimensions regardless of aspect ratio.
func (img *Image) Resize(ctx context.Context, w, h int) error {
	const op = "resize"
	if err := checkBox(op, w, h); err != nil {
		return err
	}
	if err := img.queue(op, SlotResize, exactResizeDirective(w, h)); err != nil {
		return err
	}
	return img.Commit(ctx)
}

// ResizeProportional scales the image to fit inside maxW x maxH.
func (img *Image) ResizeProportional(ctx context.Context, maxW, maxH int) error {
	if err := checkBox("resize proportional", maxW, maxH); err != nil {
		return err
	}
	size := atLeastOne(FitWithin(img.Size(), maxW, maxH))
	return img.Resize(ctx, size.Width, size.Height)
}

// ResizeProportionalInterlaced scales by the smaller of the two axis ratios
// and requests line interlacing in an RGB colorspace.
func (img *Image) ResizeProportionalInterlaced(ctx context.Context, w, h int) error {
	const op = "resize proportional interlaced"
	if err := checkBox(op, w, h); err != nil {
		return err
	}
	size := atLeastOne(MinRatio(img.Size(), w, h))
	if err := img.queue(op, SlotResize, exactResizeDirective(size.Width, size.Height)); err != nil {
		return err
	}
	if err := img.queue(op, SlotOptions, interlaceDirective()); err != nil {
		return err
	}
	return img.Commit(ctx)
}

// ResizeProportionalCropTo resizes the image to cover sizeX x sizeY and
// center-crops the overflow, yielding exactly sizeX x sizeY.
func (img *Image) ResizeProportionalCropTo(ctx context.Context, sizeX, sizeY int) error {
	if err := checkBox("resize proportional crop", sizeX, sizeY); err != nil {
		return err
	}
	size := atLeastOne(Cover(img.Size(), sizeX, sizeY))
	if err := img.Resize(ctx, size.Width, size.Height); err != nil {
		return err
	}
	x, y := CenterCropOffset(img.Size(), sizeX, sizeY)
	return img.Crop(ctx, sizeX, sizeY, x, y, true)
}

// ResizeFitTo pins the width (toWidth) or the height to size and scales the
// other axis proportionally.
func (img *Image) ResizeFitTo(ctx context.Context, size int, toWidth bool) error {
	if err := checkBox("resize fit", size, size); err != nil {
		return err
	}
	target := atLeastOne(FitTo(img.Size(), size, toWidth))
	return img.Resize(ctx, target.Width, target.Height)
}

// ResizeWithFill fits the image inside w x h and pads it to exactly w x h with
// color, centered. An empty color uses the canvas color option.
func (img *Image) ResizeWithFill(ctx context.Context, w, h int, color string) error {
	const op = "resize with fill"
	if err := checkBox(op, w, h); err != nil {
		return err
	}
	if color == "" {
		color = img.options.CanvasColor.String()
	}
	if err := img.queue(op, SlotResize, fillDirective(w, h, color)); err != nil {
		return err
	}
	return img.Commit(ctx)
}

// Crop cuts a w x h region at offset x,y. repage resets the virtual canvas so
// later operations see the crop result as a fresh image.
func (img *Image) Crop(ctx context.Context, w, h, x, y int, repage bool) error {
	const op = "crop"
	if err := checkBox(op, w, h); err != nil {
		return err
	}
	if x < 0 || y < 0 {
		return argumentError(op, "offset %d,%d must not be negative", x, y)
	}
	if err := img.queue(op, SlotCrop, cropDirective(w, h, x, y, repage)); err != nil {
		return err
	}
	return img.Commit(ctx)
}

// Rotate turns the image by degrees.
func (img *Image) Rotate(ctx context.Context, degrees int) error {
	if err := img.queue("rotate", SlotRotate, rotateDirective(degrees)); err != nil {
		return err
	}
	return img.Commit(ctx)
}

// MakeRoundedCorners masks the four corners with quarter circles of radius.
// A zero radius leaves the image unchanged.
func (img *Image) MakeRoundedCorners(ctx context.Context, radius int) error {
	const op = "rounded corners"
	if radius < 0 {
		return argumentError(op, "radius %d must not be negative", radius)
	}
	if err := img.requireSource(op); err != nil {
		return err
	}
	if radius == 0 {
		return nil
	}
	if err := img.queue(op, SlotDraw, roundedCornersDirective(radius)); err != nil {
		return err
	}
	return img.Commit(ctx)
}

// ThumbnailCutToFit produces an exact w x h thumbnail by oversampling to twice
// the target, halving, and center-cropping.
func (img *Image) ThumbnailCutToFit(ctx context.Context, w, h int) error {
	const op = "thumbnail"
	if err := checkBox(op, w, h); err != nil {
		return err
	}
	if err := img.queue(op, SlotResize, thumbnailDirective(img.Size(), w, h)); err != nil {
		return err
	}
	return img.Commit(ctx)
}
