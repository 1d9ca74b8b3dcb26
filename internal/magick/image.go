package magick

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"imagestage/internal/config"
	"imagestage/internal/fileutil"
	"imagestage/internal/logging"
)

const workingCopyPrefix = "ct_"

// Option configures an Image.
type Option func(*Image)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(img *Image) {
		if exec != nil {
			img.exec = exec
		}
	}
}

// WithLogger routes invocation and cleanup logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(img *Image) {
		if logger != nil {
			img.logger = logger
		}
	}
}

// WithToolDir sets the ImageMagick installation directory. Empty means PATH.
func WithToolDir(dir string) Option {
	return func(img *Image) {
		img.toolDir = strings.TrimSpace(dir)
	}
}

// WithBinaries overrides the identify and convert executable names.
func WithBinaries(identify, convert string) Option {
	return func(img *Image) {
		if identify = strings.TrimSpace(identify); identify != "" {
			img.identifyBin = identify
		}
		if convert = strings.TrimSpace(convert); convert != "" {
			img.convertBin = convert
		}
	}
}

// WithTempDir places working copies in dir instead of os.TempDir.
func WithTempDir(dir string) Option {
	return func(img *Image) {
		img.tempDir = strings.TrimSpace(dir)
	}
}

// WithTimeout bounds every tool invocation. Zero disables the limit.
func WithTimeout(timeout time.Duration) Option {
	return func(img *Image) {
		img.timeout = timeout
	}
}

// WithOptions replaces the default per-image settings.
func WithOptions(opts Options) Option {
	return func(img *Image) {
		img.options = opts
	}
}

// Image stages ImageMagick transformations against a private working copy of
// a source file. It is not safe for concurrent use.
type Image struct {
	platform    Platform
	toolDir     string
	identifyBin string
	convertBin  string
	tempDir     string
	timeout     time.Duration
	exec        Executor
	logger      *slog.Logger
	options     Options

	sourcePath  string
	workingPath string
	width       int
	height      int
	format      string
	pending     map[Slot]Directive
}

// New constructs an empty Image. platform decides how the tools are launched.
func New(platform Platform, opts ...Option) (*Image, error) {
	img := &Image{
		platform:    platform,
		identifyBin: "identify",
		convertBin:  "convert",
		exec:        DefaultExecutor(),
		logger:      logging.NewNop(),
		options:     DefaultOptions(),
		pending:     make(map[Slot]Directive),
	}
	for _, opt := range opts {
		opt(img)
	}
	if !validQuality(img.options.Quality) {
		return nil, argumentError("new image", "quality %d outside 1..100", img.options.Quality)
	}
	img.logger = logging.NewComponentLogger(img.logger, "magick")
	return img, nil
}

// NewFromConfig constructs an Image wired to the configured tool location,
// working-copy directory and image defaults.
func NewFromConfig(cfg *config.Config, platform Platform, opts ...Option) (*Image, error) {
	if cfg == nil {
		return nil, errors.New("image requires config")
	}
	options := DefaultOptions()
	options.Quality = cfg.Image.Quality
	options.ScaleMethod = cfg.Image.ScaleMethod
	options.CanvasColor = rgbFromConfig(cfg.Image.CanvasColor, options.CanvasColor)
	options.PencilColor = rgbFromConfig(cfg.Image.PencilColor, options.PencilColor)
	options.TextColor = rgbFromConfig(cfg.Image.TextColor, options.TextColor)

	base := []Option{
		WithToolDir(cfg.ImageMagick.Path),
		WithBinaries(cfg.ImageMagick.IdentifyBinary, cfg.ImageMagick.ConvertBinary),
		WithTempDir(cfg.Paths.TempDir),
		WithTimeout(cfg.ToolTimeout()),
		WithOptions(options),
	}
	return New(platform, append(base, opts...)...)
}

func rgbFromConfig(values []int, fallback RGB) RGB {
	if len(values) != 3 {
		return fallback
	}
	return RGB{uint8(values[0]), uint8(values[1]), uint8(values[2])}
}

// SourcePath returns the absolute path of the original file.
func (img *Image) SourcePath() string { return img.sourcePath }

// WorkingPath returns the path of the private working copy.
func (img *Image) WorkingPath() string { return img.workingPath }

// Width returns the width reported by the last successful identify.
func (img *Image) Width() int { return img.width }

// Height returns the height reported by the last successful identify.
func (img *Image) Height() int { return img.height }

// Format returns the lower-cased format token reported by identify.
func (img *Image) Format() string { return img.format }

// Size returns the current dimensions.
func (img *Image) Size() Size { return Size{Width: img.width, Height: img.height} }

// Options returns a copy of the image's default settings.
func (img *Image) Options() Options { return img.options }

// Pending returns a copy of the queued directives keyed by slot.
func (img *Image) Pending() map[Slot]Directive {
	out := make(map[Slot]Directive, len(img.pending))
	for slot, d := range img.pending {
		out[slot] = append(Directive(nil), d...)
	}
	return out
}

// SetSource snapshots path into a fresh working copy and identifies it. Any
// previous working copy is released. On failure the image holds no source.
func (img *Image) SetSource(ctx context.Context, path string) error {
	const op = "set source"

	path = strings.TrimSpace(path)
	if path == "" {
		return newError(IOError, op, errors.New("empty path"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return newError(IOError, op, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return newError(IOError, op, err)
	}
	if info.IsDir() {
		return newError(IOError, op, fmt.Errorf("%s is a directory", abs))
	}

	working, err := fileutil.CopyToTemp(abs, img.tempDir, workingCopyPrefix)
	if err != nil {
		return newError(IOError, op, fmt.Errorf("copy %s: %w", abs, err))
	}

	img.release()
	img.sourcePath = abs
	img.workingPath = working

	if err := img.Identify(ctx); err != nil {
		img.release()
		return err
	}
	img.logger.Debug("working copy ready",
		logging.Args(
			logging.String(logging.FieldSource, abs),
			logging.String(logging.FieldWorkingCopy, working),
			logging.Int("width", img.width),
			logging.Int("height", img.height),
			logging.String("format", img.format),
		)...,
	)
	return nil
}

// Close deletes the working copy. Removal failures are logged, never returned.
func (img *Image) Close() {
	img.release()
}

func (img *Image) release() {
	if img.workingPath != "" {
		if err := fileutil.RemoveIfExists(img.workingPath); err != nil {
			img.logger.Warn("working copy not removed",
				logging.Args(logging.String(logging.FieldWorkingCopy, img.workingPath), logging.Error(err))...,
			)
		}
	}
	img.sourcePath = ""
	img.workingPath = ""
	img.width, img.height, img.format = 0, 0, ""
	img.pending = make(map[Slot]Directive)
}

// Identify queries the working copy's first frame and refreshes the cached
// width, height and format.
func (img *Image) Identify(ctx context.Context) error {
	const op = "identify"
	if err := img.requireSource(op); err != nil {
		return err
	}
	inv := img.platform.Command(img.toolDir, img.identifyBin, "-format", "%w:%h:%m", firstFrame(img.workingPath))
	out, err := img.run(ctx, inv)
	if err != nil {
		return &Error{Kind: InspectionError, Op: op, Output: string(out), Err: err}
	}
	info, err := parseIdentify(out)
	if err != nil {
		return &Error{Kind: InspectionError, Op: op, Output: string(out), Err: err}
	}
	img.width, img.height, img.format = info.Width, info.Height, info.Format
	return nil
}

// Commit runs every pending directive in one convert invocation that
// overwrites the working copy, then re-identifies it. On failure the pending
// directives, the working copy and the cached dimensions are left untouched.
func (img *Image) Commit(ctx context.Context) error {
	const op = "commit"
	if len(img.pending) == 0 {
		return nil
	}
	if err := img.requireSource(op); err != nil {
		return err
	}

	args := []string{"-quality", strconv.Itoa(img.options.Quality), firstFrame(img.workingPath)}
	for _, slot := range slotOrder {
		d, ok := img.pending[slot]
		if !ok {
			continue
		}
		if slot == SlotResize {
			if filter := scaleFilter(img.options.ScaleMethod); filter != "" {
				args = append(args, "-filter", filter)
			}
		}
		args = append(args, d...)
	}
	args = append(args, formatTarget(img.format, img.workingPath))

	inv := img.platform.Command(img.toolDir, img.convertBin, args...)
	out, err := img.run(ctx, inv)
	if err != nil {
		return &Error{Kind: ProcessingError, Op: op, Output: string(out), Err: err}
	}
	img.pending = make(map[Slot]Directive)
	return img.Identify(ctx)
}

// Discard drops every pending directive without running the tool.
func (img *Image) Discard() {
	img.pending = make(map[Slot]Directive)
}

func (img *Image) queue(op string, slot Slot, d Directive) error {
	if err := img.requireSource(op); err != nil {
		return err
	}
	if _, occupied := img.pending[slot]; occupied && slot.exclusive() {
		return newError(StateError, op, fmt.Errorf("%s slot occupied: cannot transform twice before a commit", slot))
	}
	img.pending[slot] = d
	return nil
}

func (img *Image) requireSource(op string) error {
	if img.workingPath == "" {
		return newError(StateError, op, errors.New("no source image set"))
	}
	return nil
}

func (img *Image) run(ctx context.Context, inv Invocation) ([]byte, error) {
	if img.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, img.timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := img.exec.Run(ctx, inv.Name, inv.Args)
	attrs := []logging.Attr{
		logging.String(logging.FieldCommand, inv.String()),
		logging.Duration("duration", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, logging.Error(err))
	}
	img.logger.Debug("imagemagick invocation", logging.Args(attrs...)...)
	return out, err
}

func formatTarget(format, path string) string {
	if format == "" {
		return path
	}
	return format + ":" + path
}
