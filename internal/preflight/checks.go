package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"imagestage/internal/magick"
)

const versionTimeout = 10 * time.Second

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkReadWrite(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckToolVersion runs inv (a "-version" invocation) and reports the
// ImageMagick release it prints.
func CheckToolVersion(ctx context.Context, exec magick.Executor, inv magick.Invocation, name string) Result {
	checkCtx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.Run(checkCtx, inv.Name, inv.Args)
	if err != nil {
		if errors.Is(checkCtx.Err(), context.DeadlineExceeded) {
			return Result{Name: name, Detail: "version check timed out"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s failed (%v)", inv.String(), err)}
	}
	version, ok := parseVersion(out)
	if !ok {
		return Result{Name: name, Detail: "unrecognised -version output"}
	}
	return Result{Name: name, Passed: true, Detail: version}
}

// parseVersion extracts "ImageMagick X.Y.Z-P" from the first "Version:" line.
func parseVersion(output []byte) (string, bool) {
	for _, line := range strings.Split(string(output), "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Version:")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 2 || fields[0] != "ImageMagick" {
			return "", false
		}
		return fields[0] + " " + fields[1], true
	}
	return "", false
}
