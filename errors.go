package datagraph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidData reports a value that cannot be processed in the
	// requested way, typically a scalar where an object or array is needed.
	ErrInvalidData = errors.New("datagraph: invalid data")
	// ErrTypeMismatch reports a result requested as the wrong container kind.
	ErrTypeMismatch = errors.New("datagraph: type mismatch")
)

// Issue codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeDuplicateKey  = "duplicate_key"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
)

// Issue is a single diagnostic produced while parsing or validating a value.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string
	Message string
	Hint    string
	Cause   error
	Offset  int64 // Byte offset in the input (-1 when unknown).
	// Params carries structured parameters such as {"min":1} for messages.
	Params map[string]any
}

// Issues is a list of issues usable as an error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, " (%s)", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// MismatchError is returned when a built result is requested as the wrong
// container kind. It matches both ErrTypeMismatch and ErrInvalidData.
type MismatchError struct {
	Want string // "object" or "array"
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("datagraph: expected %s result, traversal built %s", e.Want, e.Got)
}

// Is makes the error match ErrTypeMismatch and ErrInvalidData.
func (e *MismatchError) Is(target error) bool {
	return target == ErrTypeMismatch || target == ErrInvalidData
}

func invalidDataf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidData}, args...)...)
}

// InvalidDataf returns an error wrapping ErrInvalidData.
func InvalidDataf(format string, args ...any) error { return invalidDataf(format, args...) }
