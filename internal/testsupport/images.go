package testsupport

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// WriteImage renders a w x h two-tone test picture at path. The encoder
// follows the file extension.
func WriteImage(t testing.TB, path string, w, h int) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	canvas := imaging.New(w, h, color.NRGBA{R: 200, G: 80, B: 40, A: 255})
	inner := imaging.New(max(w/2, 1), max(h/2, 1), color.NRGBA{B: 255, A: 255})
	canvas = imaging.Paste(canvas, inner, image.Pt(w/4, h/4))
	if err := imaging.Save(canvas, path, imaging.JPEGQuality(90)); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
	return path
}

// ImageSize decodes path and returns its pixel dimensions.
func ImageSize(t testing.TB, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
