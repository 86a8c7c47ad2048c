package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegistry Phase = "registry" // registry population and lookup
	PhaseBridge   Phase = "bridge"   // boundary transfer
	PhaseResolve  Phase = "resolve"  // descriptor resolution
	PhaseScan     Phase = "scan"     // binary scanning
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound     Kind = "not_found"     // namespace/name pair absent
	KindMismatch     Kind = "kind_mismatch" // entity exists but has another kind
	KindTypeMismatch Kind = "type_mismatch" // introspection on a non-function
	KindInvalidUTF8  Kind = "invalid_utf8"  // namespace/name bytes not valid text
	KindNilPointer   Kind = "nil_pointer"   // required argument absent
	KindOutOfBounds  Kind = "out_of_bounds" // interned table index out of range
	KindInvalidData  Kind = "invalid_data"  // malformed binary input
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Namespace string
	Name      string
	Found     string
	Expected  string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Namespace != "" || e.Name != "" {
		b.WriteString(" at ")
		b.WriteString(e.Namespace)
		if e.Name != "" {
			b.WriteByte('#')
			b.WriteString(e.Name)
		}
	}

	if e.Found != "" || e.Expected != "" {
		b.WriteString(": found ")
		b.WriteString(e.Found)
		b.WriteString(", expected ")
		b.WriteString(e.Expected)
	}

	if e.Detail != "" {
		if e.Found != "" || e.Expected != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// At sets the namespace/name pair the error refers to
func (b *Builder) At(namespace, name string) *Builder {
	b.err.Namespace = namespace
	b.err.Name = name
	return b
}

// Found sets the kind that was actually found
func (b *Builder) Found(kind string) *Builder {
	b.err.Found = kind
	return b
}

// Expected sets the kind that was expected
func (b *Builder) Expected(kind string) *Builder {
	b.err.Expected = kind
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error for a namespace/name pair
func NotFound(phase Phase, namespace, name string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindNotFound,
		Namespace: namespace,
		Name:      name,
		Detail:    fmt.Sprintf("import %s %s not found", namespace, name),
	}
}

// Mismatch creates a kind-mismatch error naming both kinds
func Mismatch(phase Phase, namespace, name, found, expected string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindMismatch,
		Namespace: namespace,
		Name:      name,
		Found:     found,
		Expected:  expected,
	}
}

// TypeMismatch creates a type-mismatch error for introspection on a
// non-function entity
func TypeMismatch(phase Phase, found string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Found:    found,
		Expected: "function",
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, what string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("%s is not valid UTF-8: %x", what, preview),
	}
}

// NilPointer creates a nil pointer error for a missing required argument
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: fmt.Sprintf("%s must not be nil", what),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, what string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("%s index %d out of bounds (length %d)", what, index, length),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// ScanFailed creates a scanning error
func ScanFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("scan %s", what),
		Cause:  cause,
	}
}
