package magick

import (
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
)

// Platform captures the host traits that change how ImageMagick is launched.
// Compute it once with HostPlatform and hand it to New.
type Platform struct {
	Windows bool
}

// HostPlatform reports the platform the current process runs on.
func HostPlatform() Platform {
	return Platform{Windows: runtime.GOOS == "windows"}
}

// Invocation is a fully resolved external command.
type Invocation struct {
	Name string
	Args []string

	raw bool
}

// String renders the invocation as a command line. Arguments are shell-quoted
// individually except for launcher-prefixed Windows invocations, which are
// rendered verbatim.
func (inv Invocation) String() string {
	if inv.raw {
		parts := append([]string{inv.Name}, inv.Args...)
		return strings.Join(parts, " ")
	}
	return shellquote.Join(append([]string{inv.Name}, inv.Args...)...)
}

// Command resolves tool (identify, convert) inside toolDir and returns the
// invocation for args. An empty toolDir leaves resolution to PATH. On Windows,
// a toolDir containing whitespace is entered through the shell's start
// launcher so the tool runs with its own directory as working directory.
func (p Platform) Command(toolDir, tool string, args ...string) Invocation {
	toolDir = strings.TrimSpace(toolDir)
	argv := append([]string(nil), args...)
	if toolDir == "" {
		return Invocation{Name: tool, Args: argv}
	}
	if p.Windows && strings.IndexFunc(toolDir, unicode.IsSpace) >= 0 {
		launcher := []string{"/C", "start", "/D", toolDir, "/B", "/WAIT", tool}
		for _, arg := range argv {
			launcher = append(launcher, cmdEscape(arg))
		}
		return Invocation{Name: "cmd", Args: launcher, raw: true}
	}
	return Invocation{Name: filepath.Join(toolDir, tool), Args: argv}
}

// cmdEscape caret-escapes the characters cmd.exe would treat as redirection,
// piping or grouping (the "<" guard of a thumbnail geometry, the parentheses
// of a mask recipe). Arguments holding whitespace or quotes are left alone:
// they reach cmd.exe inside double quotes, where those characters are literal.
func cmdEscape(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\"") {
		return arg
	}
	return cmdMeta.Replace(arg)
}

var cmdMeta = strings.NewReplacer(
	"^", "^^",
	"<", "^<",
	">", "^>",
	"&", "^&",
	"|", "^|",
	"(", "^(",
	")", "^)",
)

// firstFrame selects the first layer of a possibly multi-frame file.
func firstFrame(path string) string {
	return path + "[0]"
}
