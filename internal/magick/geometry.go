package magick

import "math"

// Size is a pixel extent.
type Size struct {
	Width  int
	Height int
}

// wider reports whether w:h is relatively wider than boxW:boxH. Cross
// multiplication keeps the comparison in integers.
func wider(w, h, boxW, boxH int) bool {
	return int64(w)*int64(boxH) > int64(boxW)*int64(h)
}

func scale(value, num, den int) int {
	if den == 0 {
		return 0
	}
	return int(int64(value) * int64(num) / int64(den))
}

// FitWithin returns the largest size with the aspect ratio of src that fits
// inside maxW x maxH. One axis is pinned to the box; the other truncates.
func FitWithin(src Size, maxW, maxH int) Size {
	if wider(src.Width, src.Height, maxW, maxH) {
		return Size{Width: maxW, Height: scale(src.Height, maxW, src.Width)}
	}
	return Size{Width: scale(src.Width, maxH, src.Height), Height: maxH}
}

// Cover returns the smallest size with the aspect ratio of src that fully
// covers sizeX x sizeY.
func Cover(src Size, sizeX, sizeY int) Size {
	if wider(src.Width, src.Height, sizeX, sizeY) {
		return Size{Width: scale(src.Width, sizeY, src.Height), Height: sizeY}
	}
	return Size{Width: sizeX, Height: scale(src.Height, sizeX, src.Width)}
}

// FitTo pins one axis to size and scales the other proportionally.
func FitTo(src Size, size int, toWidth bool) Size {
	if toWidth {
		return Size{Width: size, Height: scale(src.Height, size, src.Width)}
	}
	return Size{Width: scale(src.Width, size, src.Height), Height: size}
}

// MinRatio scales src by min(w/src.Width, h/src.Height). The axis that owns
// the minimum ratio keeps the requested value, the other is floored.
func MinRatio(src Size, w, h int) Size {
	useX := int64(w)*int64(src.Height) <= int64(h)*int64(src.Width)
	if useX {
		return Size{Width: w, Height: scale(src.Height, w, src.Width)}
	}
	return Size{Width: scale(src.Width, h, src.Height), Height: h}
}

// CenterCropOffset centers a sizeX x sizeY window on an image of size cur.
// The axis to crop is chosen by comparing the image's own width and height,
// not the target box, so square-ish targets crop the longer side.
func CenterCropOffset(cur Size, sizeX, sizeY int) (x, y int) {
	if cur.Width > cur.Height {
		return halfRound(cur.Width - sizeX), 0
	}
	return 0, halfRound(cur.Height - sizeY)
}

func halfRound(delta int) int {
	return int(math.Round(float64(delta) / 2))
}

// Landscape reports whether the size is landscape or square.
func (s Size) Landscape() bool {
	return s.Width >= s.Height
}
