package testsupport

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const fakeVersion = "Version: ImageMagick 7.1.1-15 Q16 x86_64 (fake)\n"

// FakeMagick emulates the identify and convert subset the image pipeline
// uses. Image state lives on disk as "width height format" so the working copy
// and exported files can be inspected like real outputs.
type FakeMagick struct {
	// FailConvert, when set, makes every convert run fail with this output.
	FailConvert string
	// IdentifyOutput, when set, replaces every identify result.
	IdentifyOutput string

	mu    sync.Mutex
	calls [][]string
}

// Run implements magick.Executor.
func (f *FakeMagick) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{name}, args...))
	tool := filepath.Base(name)
	switch {
	case (tool == "identify" || tool == "convert") && slices.Equal(args, []string{"-version"}):
		return []byte(fakeVersion), nil
	case tool == "identify":
		return f.identify(args)
	case tool == "convert":
		return f.convert(args)
	default:
		return nil, fmt.Errorf("unexpected binary %s", name)
	}
}

// Calls returns every recorded invocation as name followed by args.
func (f *FakeMagick) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

// ConvertCalls returns the argument vectors of every convert run.
func (f *FakeMagick) ConvertCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, call := range f.calls {
		if filepath.Base(call[0]) == "convert" {
			out = append(out, call[1:])
		}
	}
	return out
}

// LastConvert returns the arguments of the most recent convert run.
func (f *FakeMagick) LastConvert(t testing.TB) []string {
	t.Helper()
	calls := f.ConvertCalls()
	if len(calls) == 0 {
		t.Fatal("expected a convert invocation")
	}
	return calls[len(calls)-1]
}

func (f *FakeMagick) identify(args []string) ([]byte, error) {
	if f.IdentifyOutput != "" {
		return []byte(f.IdentifyOutput), nil
	}
	if len(args) != 3 || args[0] != "-format" || args[1] != "%w:%h:%m" {
		return []byte("identify: bad arguments"), errors.New("exit status 1")
	}
	img, err := readFakeImage(strings.TrimSuffix(args[2], "[0]"))
	if err != nil {
		return []byte("identify: unable to open image"), errors.New("exit status 1")
	}
	return []byte(fmt.Sprintf("%d:%d:%s\n", img.w, img.h, strings.ToUpper(img.format))), nil
}

func (f *FakeMagick) convert(args []string) ([]byte, error) {
	if f.FailConvert != "" {
		return []byte(f.FailConvert), errors.New("exit status 1")
	}
	if len(args) < 4 || args[0] != "-quality" {
		return []byte("convert: bad arguments"), errors.New("exit status 1")
	}
	img, err := readFakeImage(strings.TrimSuffix(args[2], "[0]"))
	if err != nil {
		return []byte("convert: unable to open image"), errors.New("exit status 1")
	}
	ops := args[3 : len(args)-1]
	for i := 0; i < len(ops); i++ {
		switch ops[i] {
		case "-geometry", "-resize":
			i++
			img = img.resize(ops[i])
		case "-crop":
			i++
			img = img.crop(ops[i])
		case "-extent":
			i++
			w, h, _ := parseGeometry(ops[i])
			img.w, img.h = w, h
		case "-rotate":
			i++
			deg, _ := strconv.Atoi(ops[i])
			if ((deg%180)+180)%180 == 90 {
				img.w, img.h = img.h, img.w
			}
		case "-draw", "-channel", "-compose", "-background", "-gravity", "-interlace", "-colorspace", "-filter":
			i++
		}
	}
	format, target, ok := strings.Cut(args[len(args)-1], ":")
	if !ok {
		target = format
		format = img.format
	}
	format = strings.ToLower(format)
	if format == "jpg" {
		format = "jpeg"
	}
	img.format = format
	if err := writeFakeImage(target, img); err != nil {
		return []byte(err.Error()), errors.New("exit status 1")
	}
	return nil, nil
}

type fakeImage struct {
	w, h   int
	format string
}

func readFakeImage(path string) (fakeImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fakeImage{}, err
	}
	var img fakeImage
	if _, err := fmt.Sscanf(string(data), "%d %d %s", &img.w, &img.h, &img.format); err != nil {
		return fakeImage{}, err
	}
	return img, nil
}

func writeFakeImage(path string, img fakeImage) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%d %d %s", img.w, img.h, img.format)), 0o644)
}

// parseGeometry splits "WxH" with optional suffix flags.
func parseGeometry(geom string) (w, h int, flags string) {
	trimmed := strings.TrimRight(geom, "!<>%^")
	flags = geom[len(trimmed):]
	ws, hs, _ := strings.Cut(trimmed, "x")
	w, _ = strconv.Atoi(ws)
	h, _ = strconv.Atoi(hs)
	return w, h, flags
}

func (img fakeImage) resize(geom string) fakeImage {
	if strings.HasSuffix(geom, "%") {
		pct, _ := strconv.Atoi(strings.TrimSuffix(geom, "%"))
		img.w = int(math.Round(float64(img.w) * float64(pct) / 100))
		img.h = int(math.Round(float64(img.h) * float64(pct) / 100))
		return img
	}
	gw, gh, flags := parseGeometry(geom)
	switch {
	case strings.Contains(flags, "!"):
		img.w, img.h = gw, gh
		return img
	case strings.Contains(flags, "<"):
		if !((gw > 0 && img.w < gw) || (gh > 0 && img.h < gh)) {
			return img
		}
	}
	switch {
	case gw > 0 && gh > 0:
		scale := math.Min(float64(gw)/float64(img.w), float64(gh)/float64(img.h))
		img.w = int(math.Round(float64(img.w) * scale))
		img.h = int(math.Round(float64(img.h) * scale))
	case gw > 0:
		img.h = int(math.Round(float64(img.h) * float64(gw) / float64(img.w)))
		img.w = gw
	case gh > 0:
		img.w = int(math.Round(float64(img.w) * float64(gh) / float64(img.h)))
		img.h = gh
	}
	return img
}

func (img fakeImage) crop(geom string) fakeImage {
	size, offset, _ := strings.Cut(geom, "+")
	w, h, _ := parseGeometry(size)
	xs, ys, _ := strings.Cut(offset, "+")
	x, _ := strconv.Atoi(xs)
	y, _ := strconv.Atoi(ys)
	img.w = min(w, img.w-x)
	img.h = min(h, img.h-y)
	return img
}

// WriteFakeImage creates a source file understood by FakeMagick and returns
// its path.
func WriteFakeImage(t testing.TB, dir, name string, w, h int, format string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := writeFakeImage(path, fakeImage{w: w, h: h, format: format}); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
