package shapes

import "strings"

// Kind categorizes an error raised by the wrapper itself. Errors produced by
// registered operations or injected drawers are never given a Kind; they
// propagate through Draw, Serialize, and WriteTo unchanged.
type Kind string

const (
	// KindContractViolation means a type does not satisfy the capability
	// contract: no complete Ops registration exists for it. Raised by New at
	// the construction call site.
	KindContractViolation Kind = "contract_violation"

	// KindInvalidState means a forwarding operation was invoked on an empty
	// (zero-value or moved-from) Shape. This is a programming error; it is
	// raised as a panic, not returned.
	KindInvalidState Kind = "invalid_state"
)

// Error is the structured error type for wrapper-level failures.
type Error struct {
	Kind   Kind
	GoType string // Go type involved, when known
	Detail string
}

// Kind-only sentinels for use with errors.Is.
var (
	ErrContractViolation = &Error{Kind: KindContractViolation}
	ErrInvalidState      = &Error{Kind: KindInvalidState}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("shapes: ")
	sb.WriteString(string(e.Kind))
	if e.GoType != "" {
		sb.WriteString(": type ")
		sb.WriteString(e.GoType)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Is reports whether target matches this error. A kind-only *Error (such as
// ErrContractViolation) matches any error of the same Kind, so
// errors.Is(err, ErrContractViolation) works as expected.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return (t.GoType == "" || t.GoType == e.GoType) &&
		(t.Detail == "" || t.Detail == e.Detail)
}
