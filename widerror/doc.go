// Package widerror provides the shared, serializable error record used
// across SCG services.
//
// It exposes a single concrete type Error carrying a numeric code, a
// symbolic name, classification enums (Kind, Scope, RetryMode,
// PassThroughMode), a severity level, an optional external mapping code
// and an optional cause record, plus a Message that is either
// ready-to-display text or an i18n key for an external resolver.
//
// Wire contract:
//   - Every classification enum serializes as its fixed integer
//     discriminant, never as a name. The discriminants mirror the gRPC
//     status-code taxonomy and must not be renumbered.
//   - Message serializes as a single-key tagged object,
//     {"Default":"..."} or {"I18n":"..."}.
//   - Absent mapping_code and source_error are omitted from the output
//     rather than emitted as null.
//   - Decoding rejects out-of-range discriminants with a *DecodeError;
//     an unrecognized classification is never silently coerced to a
//     default.
//
// Code convention: a full code is 9 digits, composed of a 5-digit
// namespace and a 4-digit sub-code (code = namespace*10000 + sub_code).
// The ranges are a documented convention, not enforced at construction;
// MakeCode and ParseCode implement the composition.
//
// A fully constructed Error is an immutable value and may be shared
// across goroutines without synchronization.
package widerror
