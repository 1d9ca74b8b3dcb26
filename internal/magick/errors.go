package magick

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies failures surfaced by Image operations.
type Kind int

const (
	// IOError reports an unreadable source or a failed working-copy snapshot.
	IOError Kind = iota + 1
	// InspectionError reports a failed or unparsable identify run.
	InspectionError
	// StateError reports a directive slot that is already occupied.
	StateError
	// ProcessingError reports a convert run that exited non-zero during commit.
	ProcessingError
	// ExportError reports a convert run that exited non-zero during export.
	ExportError
	// ArgumentError reports geometry or option values outside accepted bounds.
	ArgumentError
)

var (
	ErrIO              = errors.New("image io error")
	ErrInspection      = errors.New("image inspection error")
	ErrState           = errors.New("image state error")
	ErrProcessing      = errors.New("image processing error")
	ErrExport          = errors.New("image export error")
	ErrInvalidArgument = errors.New("invalid argument")
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "io"
	case InspectionError:
		return "inspection"
	case StateError:
		return "state"
	case ProcessingError:
		return "processing"
	case ExportError:
		return "export"
	case ArgumentError:
		return "argument"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case IOError:
		return ErrIO
	case InspectionError:
		return ErrInspection
	case StateError:
		return ErrState
	case ProcessingError:
		return ErrProcessing
	case ExportError:
		return ErrExport
	case ArgumentError:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// Error carries the failure kind, the operation that raised it and, for tool
// failures, the combined diagnostic output of the external process.
type Error struct {
	Kind   Kind
	Op     string
	Output string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString("image error")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString(": ")
		b.WriteString(out)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel associated with the error kind.
func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var imgErr *Error
	if errors.As(err, &imgErr) {
		return imgErr.Kind
	}
	return 0
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func argumentError(op, format string, args ...any) *Error {
	return &Error{Kind: ArgumentError, Op: op, Err: fmt.Errorf(format, args...)}
}
