package widerror

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// Sentinel decode failures. DecodeError wraps one of these, so callers
// can classify with errors.Is without inspecting text.
var (
	// ErrMalformedRecord marks structurally invalid wire input.
	ErrMalformedRecord = errors.New("widerror: malformed record")

	// ErrUnknownDiscriminant marks an enum value outside its closed set.
	// A newer peer's unrecognized classification surfaces as this error
	// instead of being silently coerced to a default.
	ErrUnknownDiscriminant = errors.New("widerror: unknown enum discriminant")
)

// DecodeError describes a failure to decode a record, naming the wire
// field that could not be decoded.
type DecodeError struct {
	Field string
	err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("widerror: decode %s: %v", e.Field, e.err)
}

func (e *DecodeError) Unwrap() error { return e.err }

// wireError is the JSON shape of a record. Field names are the wire
// contract; enums travel as plain integers so out-of-range values can be
// rejected explicitly after structural decoding.
type wireError struct {
	Message         Message `json:"message"`
	Code            uint32  `json:"code"`
	Name            string  `json:"name"`
	NamespaceCode   uint32  `json:"namespace_code"`
	SubCode         uint16  `json:"sub_code"`
	Kind            int     `json:"kind"`
	Scope           int     `json:"scope"`
	Level           int     `json:"level"`
	RetryMode       int     `json:"retry_mode"`
	PassThroughMode int     `json:"pass_through_mode"`
	MappingCode     *int64  `json:"mapping_code,omitempty"`
	SourceError     *Error  `json:"source_error,omitempty"`
}

// MarshalJSON encodes the record with enums as integer discriminants and
// the cause chain nested recursively. Absent mapping_code and
// source_error are omitted, not emitted as null.
func (e *Error) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(wireError{
		Message:         e.message,
		Code:            e.code,
		Name:            e.name,
		NamespaceCode:   e.namespace,
		SubCode:         e.subCode,
		Kind:            int(e.kind),
		Scope:           int(e.scope),
		Level:           int(e.level),
		RetryMode:       int(e.retryMode),
		PassThroughMode: int(e.passThroughMode),
		MappingCode:     e.mappingCode,
		SourceError:     e.source,
	})
}

// UnmarshalJSON decodes the wire shape, rejecting unknown enum
// discriminants and out-of-range levels with a *DecodeError.
func (e *Error) UnmarshalJSON(data []byte) error {
	var w wireError
	if err := sonic.Unmarshal(data, &w); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			// nested Message or source_error already produced a precise error
			return err
		}
		return &DecodeError{Field: "record", err: fmt.Errorf("%w: %v", ErrMalformedRecord, err)}
	}

	kind, err := ParseKind(w.Kind)
	if err != nil {
		return &DecodeError{Field: "kind", err: err}
	}
	scope, err := ParseScope(w.Scope)
	if err != nil {
		return &DecodeError{Field: "scope", err: err}
	}
	retryMode, err := ParseRetryMode(w.RetryMode)
	if err != nil {
		return &DecodeError{Field: "retry_mode", err: err}
	}
	passThroughMode, err := ParsePassThroughMode(w.PassThroughMode)
	if err != nil {
		return &DecodeError{Field: "pass_through_mode", err: err}
	}
	if w.Level < 0 || w.Level > 255 {
		return &DecodeError{Field: "level", err: fmt.Errorf("%w: level %d out of [0,255]", ErrMalformedRecord, w.Level)}
	}

	*e = Error{
		message:         w.Message,
		code:            w.Code,
		name:            w.Name,
		namespace:       w.NamespaceCode,
		subCode:         w.SubCode,
		kind:            kind,
		scope:           scope,
		level:           uint8(w.Level),
		retryMode:       retryMode,
		passThroughMode: passThroughMode,
		mappingCode:     w.MappingCode,
		source:          w.SourceError,
	}

	return nil
}

// Marshal encodes a record to its JSON wire form.
func Marshal(e *Error) ([]byte, error) {
	return sonic.Marshal(e)
}

// Unmarshal decodes a record from its JSON wire form.
func Unmarshal(data []byte) (*Error, error) {
	e := new(Error)
	if err := sonic.Unmarshal(data, e); err != nil {
		return nil, err
	}

	return e, nil
}
