package magick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Info is the parsed result of an identify run.
type Info struct {
	Width  int
	Height int
	Format string
}

// parseIdentify reads the first line of "%w:%h:%m" output.
func parseIdentify(output []byte) (Info, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return Info{}, errors.New("empty identify output")
	}
	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return Info{}, fmt.Errorf("unexpected identify output %q", line)
	}
	width, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || width < 0 {
		return Info{}, fmt.Errorf("invalid width in %q", line)
	}
	height, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || height < 0 {
		return Info{}, fmt.Errorf("invalid height in %q", line)
	}
	format := strings.ToLower(strings.TrimSpace(fields[2]))
	if format == "" {
		return Info{}, fmt.Errorf("missing format in %q", line)
	}
	return Info{Width: width, Height: height, Format: format}, nil
}
