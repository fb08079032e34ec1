// Package contract exposes the minimal record interface used by other packages.
//
// Implementations must support errors.Unwrap via Unwrap so that generic
// error-reporting tooling can walk the cause chain without knowing the
// concrete type.
package contract

// Record is the minimal, stable surface that other packages can depend on.
//
// It deliberately exposes only the identity fields shared by every layout
// of the record (numeric code, symbolic name, namespace, sub-code, level)
// plus Unwrap. Classification getters returning concrete enum types live
// on the implementation; depending on them here would force every consumer
// onto one enum vocabulary.
type Record interface {
	error
	// Code returns the stable numeric identifier of the error class.
	Code() uint32
	// Name returns the stable symbolic identifier, usable for log search
	// independent of the numeric code.
	Name() string
	// Namespace returns the 5-digit code of the owning component, or 0
	// when the record was built from a bare code.
	Namespace() uint32
	// SubCode returns the 4-digit identifier local to the namespace.
	SubCode() uint16
	// Level returns the caller-defined severity ordinal.
	Level() uint8
	// Unwrap returns the cause record, or nil when there is none.
	Unwrap() error
}
