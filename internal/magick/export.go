package magick

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"imagestage/internal/logging"
)

// ExportOption overrides a per-export setting without touching the image's
// defaults.
type ExportOption func(*exportSettings)

type exportSettings struct {
	format  string
	quality int
}

// WithFormat selects the output format (for example "png" or "jpeg").
func WithFormat(format string) ExportOption {
	return func(s *exportSettings) {
		if format = strings.TrimSpace(format); format != "" {
			s.format = format
		}
	}
}

// WithQuality overrides the output quality (1..100).
func WithQuality(quality int) ExportOption {
	return func(s *exportSettings) {
		s.quality = quality
	}
}

// extensionFormats maps destination extensions to format tokens.
var extensionFormats = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".gif":  "gif",
	".bmp":  "bmp",
	".webp": "webp",
	".tif":  "tiff",
	".tiff": "tiff",
	".avif": "avif",
	".heic": "heic",
}

// outputFormat normalizes a format token for the convert command line.
func outputFormat(format string) string {
	token := cases.Upper(language.Und).String(strings.TrimSpace(format))
	if token == "JPEG" {
		token = "JPG"
	}
	return token
}

// Export writes the first frame of the working copy to destination. Without
// WithFormat the format follows a recognised destination extension, falling
// back to the current format. The image itself is not modified.
func (img *Image) Export(ctx context.Context, destination string, opts ...ExportOption) error {
	const op = "export"
	if err := img.requireSource(op); err != nil {
		return err
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return argumentError(op, "empty destination")
	}
	dest, err := filepath.Abs(destination)
	if err != nil {
		return newError(IOError, op, err)
	}

	settings := exportSettings{quality: img.options.Quality}
	if format, ok := extensionFormats[strings.ToLower(filepath.Ext(dest))]; ok {
		settings.format = format
	} else {
		settings.format = img.format
	}
	for _, opt := range opts {
		opt(&settings)
	}
	if !validQuality(settings.quality) {
		return argumentError(op, "quality %d outside 1..100", settings.quality)
	}

	lock := flock.New(img.exportLockPath(dest))
	if err := lock.Lock(); err != nil {
		return newError(IOError, op, fmt.Errorf("lock destination: %w", err))
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			img.logger.Warn("export lock not released", logging.Args(logging.Error(err))...)
		}
	}()

	inv := img.platform.Command(img.toolDir, img.convertBin,
		"-quality", strconv.Itoa(settings.quality),
		firstFrame(img.workingPath),
		formatTarget(outputFormat(settings.format), dest),
	)
	out, err := img.run(ctx, inv)
	if err != nil {
		return &Error{Kind: ExportError, Op: op, Output: string(out), Err: err}
	}
	img.logger.Debug("image exported",
		logging.Args(
			logging.String(logging.FieldDestination, dest),
			logging.String("format", outputFormat(settings.format)),
			logging.Int("quality", settings.quality),
			logging.Bool("overwrites_source", dest == img.sourcePath),
		)...,
	)
	return nil
}

// Save exports the working copy back onto the original source path.
func (img *Image) Save(ctx context.Context, opts ...ExportOption) error {
	if err := img.requireSource("save"); err != nil {
		return err
	}
	return img.Export(ctx, img.sourcePath, opts...)
}

// exportLockPath derives a lock file in the working-copy directory so that
// exports onto the same destination from independent images serialize. The
// file is named after the destination and is left in place after Unlock:
// removing it would let a waiter holding the old inode and a newcomer creating
// a fresh one both acquire the lock. Repeated exports reuse the same file, so
// there is one lock file per distinct destination.
func (img *Image) exportLockPath(dest string) string {
	dir := img.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	sum := sha256.Sum256([]byte(dest))
	return filepath.Join(dir, "imagestage-"+hex.EncodeToString(sum[:8])+".lock")
}
