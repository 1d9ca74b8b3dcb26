package magick_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"imagestage/internal/magick"
	"imagestage/internal/testsupport"
)

func requireImageMagick(t *testing.T) {
	t.Helper()
	for _, tool := range []string{"identify", "convert"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available: %v", tool, err)
		}
	}
}

func TestImageMagickRoundTrip(t *testing.T) {
	requireImageMagick(t)
	ctx := context.Background()

	img, err := magick.New(magick.HostPlatform(), magick.WithTempDir(t.TempDir()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer img.Close()

	if err := img.SetSource(ctx, testsupport.WriteImage(t, filepath.Join(t.TempDir(), "fixture.jpg"), 800, 600)); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	assertSize(t, img, 800, 600)
	if img.Format() != "jpeg" {
		t.Fatalf("format = %q", img.Format())
	}

	if err := img.ResizeProportionalCropTo(ctx, 300, 300); err != nil {
		t.Fatalf("ResizeProportionalCropTo: %v", err)
	}
	assertSize(t, img, 300, 300)

	dest := filepath.Join(t.TempDir(), "out.png")
	if err := img.Export(ctx, dest); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if w, h := testsupport.ImageSize(t, dest); w != 300 || h != 300 {
		t.Fatalf("exported size = %dx%d", w, h)
	}
}

func TestImageMagickThumbnail(t *testing.T) {
	requireImageMagick(t)
	ctx := context.Background()

	img, err := magick.New(magick.HostPlatform(), magick.WithTempDir(t.TempDir()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer img.Close()

	if err := img.SetSource(ctx, testsupport.WriteImage(t, filepath.Join(t.TempDir(), "fixture.jpg"), 640, 480)); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if err := img.ThumbnailCutToFit(ctx, 120, 90); err != nil {
		t.Fatalf("ThumbnailCutToFit: %v", err)
	}
	assertSize(t, img, 120, 90)
}
