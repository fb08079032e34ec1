package widerror

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/next-trace/scg-widerror/contract"
)

// Error is the canonical error record shared across SCG services.
//
// A record is built through New/NewIn/E, optionally gains a cause once
// through WithSource, and is immutable afterwards; a fully constructed
// record may be shared across goroutines freely.
//
// code is stored rather than derived: a record built from a bare code
// legitimately carries namespace 0, matching the original wire shape.
// The namespace route (NewIn, WithNamespace option) always recomputes
// code from the pair, so the two views cannot diverge through the
// public API.
type Error struct {
	message         Message
	code            uint32
	name            string
	namespace       uint32
	subCode         uint16
	kind            Kind
	scope           Scope
	level           uint8
	retryMode       RetryMode
	passThroughMode PassThroughMode
	mappingCode     *int64
	source          *Error
}

// compile-time guarantee that *Error implements contract.Record
var _ contract.Record = (*Error)(nil)

// New builds a record with the given code and message. Every other field
// takes its type default: kind OK, scope Internal, retry mode Unknown,
// pass-through Auto, level 0, no mapping code, no cause. Never fails;
// the 9-digit code convention is documented, not enforced here.
func New(code uint32, msg Message) *Error {
	return &Error{message: msg, code: code}
}

// NewIn builds a record through the namespace route: the code is computed
// as namespace*10000 + sub and the pair is kept on the record.
func NewIn(namespace uint32, sub uint16, msg Message) *Error {
	return &Error{
		message:   msg,
		code:      MakeCode(namespace, sub),
		namespace: namespace,
		subCode:   sub,
	}
}

// ------ standard error interface

// Error renders the record as a single line containing every field in a
// fixed order, with enums as their numeric discriminants and the cause
// chain rendered recursively in parentheses (empty when absent).
// Recursion terminates because the chain is acyclic and finite.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	e.render(&b)

	return b.String()
}

func (e *Error) render(b *strings.Builder) {
	fmt.Fprintf(b, "code=%d, name=%s, namespace=%d, scope=%d, kind=%d, level=%d, message=%s, retry_mode=%d, pass_through_mode=%d, mapping_code=",
		e.code, e.name, e.namespace, e.scope, e.kind, e.level, e.message, e.retryMode, e.passThroughMode)
	if e.mappingCode != nil {
		b.WriteString(strconv.FormatInt(*e.mappingCode, 10))
	}
	b.WriteString(", source_error=(")
	if e.source != nil {
		e.source.render(b)
	}
	b.WriteString(")")
}

// Unwrap returns the cause record, or nil when there is none. The
// untyped nil keeps errors.Is/errors.As chain walking well-behaved.
func (e *Error) Unwrap() error {
	if e == nil || e.source == nil {
		return nil
	}
	return e.source
}

// Format renders symbolic enum names and an indented cause chain for
// %+v; %v and %s fall back to Error().
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for err := e; err != nil; err = err.source {
				if err != e {
					_, _ = fmt.Fprint(s, "\ncaused by: ")
				}
				_, _ = fmt.Fprintf(s, "code=%d name=%s kind=%s scope=%s retry=%s pass_through=%s level=%d message=%s",
					err.code, err.name, err.kind, err.scope, err.retryMode, err.passThroughMode, err.level, err.message)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ------ getters (read-only passthroughs)

// Message returns the human-facing description carrier.
func (e *Error) Message() Message { return e.message }

// Code returns the stable numeric identifier of the error class.
func (e *Error) Code() uint32 { return e.code }

// Name returns the stable symbolic identifier.
func (e *Error) Name() string { return e.name }

// Namespace returns the owning component's 5-digit code, or 0 when the
// record was built from a bare code.
func (e *Error) Namespace() uint32 { return e.namespace }

// SubCode returns the 4-digit identifier local to the namespace.
func (e *Error) SubCode() uint16 { return e.subCode }

// Kind returns the canonical failure category.
func (e *Error) Kind() Kind { return e.kind }

// Scope returns where along the request path the error originated.
func (e *Error) Scope() Scope { return e.scope }

// Level returns the caller-defined severity ordinal. The ordering
// convention belongs to the caller; this package never interprets it.
func (e *Error) Level() uint8 { return e.level }

// RetryMode returns the advisory retry policy.
func (e *Error) RetryMode() RetryMode { return e.retryMode }

// PassThroughMode returns the advisory forwarding policy.
func (e *Error) PassThroughMode() PassThroughMode { return e.passThroughMode }

// MappingCode returns the external-system code mapping and whether one
// is set.
func (e *Error) MappingCode() (int64, bool) {
	if e.mappingCode == nil {
		return 0, false
	}
	return *e.mappingCode, true
}

// Source returns the cause record, or nil.
func (e *Error) Source() *Error { return e.source }

// ------ one-shot cause attachment

// WithSource attaches cause and returns the receiver for chaining. The
// attachment is one-shot: once a record has a cause it cannot be swapped
// or cleared, and a cause whose own chain already contains the receiver
// is refused, which keeps the chain acyclic and finite. Either way the
// refused call is a no-op.
func (e *Error) WithSource(cause *Error) *Error {
	if e == nil {
		return nil
	}
	if e.source == nil && !cause.chainContains(e) {
		e.source = cause
	}
	return e
}

// chainContains reports whether target appears anywhere in e's cause
// chain, e itself included. The walk is bounded because the chain is
// still acyclic when it runs.
func (e *Error) chainContains(target *Error) bool {
	for rec := e; rec != nil; rec = rec.source {
		if rec == target {
			return true
		}
	}
	return false
}

// Equal reports structural equality across every field, including the
// full cause chain.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.message != other.message ||
		e.code != other.code ||
		e.name != other.name ||
		e.namespace != other.namespace ||
		e.subCode != other.subCode ||
		e.kind != other.kind ||
		e.scope != other.scope ||
		e.level != other.level ||
		e.retryMode != other.retryMode ||
		e.passThroughMode != other.passThroughMode {
		return false
	}
	if (e.mappingCode == nil) != (other.mappingCode == nil) {
		return false
	}
	if e.mappingCode != nil && *e.mappingCode != *other.mappingCode {
		return false
	}
	return e.source.Equal(other.source)
}
