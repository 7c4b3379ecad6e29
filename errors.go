package goldilocks

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind tags the failure modes surfaced by the field, extension-field, and
// NTT operations. Callers should prefer IsKind over string matching.
type Kind int

const (
	// InverseOfZero: division or inversion of the zero element.
	InverseOfZero Kind = iota + 1
	// NoRootOfUnity: requested order is not a supported power of two.
	NoRootOfUnity
	// InvalidLength: NTT sequence length is not a power of two, or exceeds 2^32.
	InvalidLength
	// NotCanonical: a raw-byte or raw-u16 decoder saw a value >= p.
	NotCanonical
	// OutOfRange: a B-to-narrow-integer conversion would truncate.
	OutOfRange
	// InvalidDigit: a decimal text parse saw a non-digit.
	InvalidDigit
	// InvalidHexChar: a hex text parse saw a non-hex-digit.
	InvalidHexChar
	// ParseOverflow: a parsed magnitude exceeded the precision bound.
	ParseOverflow
	// InvalidUnlift: X.Unlift was called on an element with nonzero c1 or c2.
	InvalidUnlift
)

func (k Kind) String() string {
	switch k {
	case InverseOfZero:
		return "InverseOfZero"
	case NoRootOfUnity:
		return "NoRootOfUnity"
	case InvalidLength:
		return "InvalidLength"
	case NotCanonical:
		return "NotCanonical"
	case OutOfRange:
		return "OutOfRange"
	case InvalidDigit:
		return "InvalidDigit"
	case InvalidHexChar:
		return "InvalidHexChar"
	case ParseOverflow:
		return "ParseOverflow"
	case InvalidUnlift:
		return "InvalidUnlift"
	default:
		return "Unknown"
	}
}

// Error is the tagged failure type returned by every fallible operation in
// this package. It wraps a github.com/cockroachdb/errors error so that
// errors.Is, errors.As, and stack-trace formatting keep working for callers
// who use that library, while Kind gives cheap programmatic dispatch.
type Error struct {
	Kind Kind
	Op   string
	err  error
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, err: errors.Newf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("goldilocks: %s: %s", e.Op, e.err)
}

// Unwrap exposes the underlying cockroachdb/errors error for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Format delegates to cockroachdb/errors so %+v prints a stack trace when
// the underlying error carries one.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// IsKind reports whether err is a *Error of the given Kind.
func IsKind(err error, k Kind) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind == k
	}
	return false
}
