package widerror

import "fmt"

// Scope marks where along the request path the error originated.
// Discriminants are fixed wire values.
type Scope uint8

const (
	// ScopeInternal means the error originated inside the reporting
	// component itself. This is the default.
	ScopeInternal Scope = 0
	// ScopeClientside means the error originated from the caller's input
	// or behavior.
	ScopeClientside Scope = 1
	// ScopeServerside means the error originated in a downstream server
	// the reporting component depends on.
	ScopeServerside Scope = 2
)

var scopeNames = map[Scope]string{
	ScopeInternal:   "Internal",
	ScopeClientside: "Clientside",
	ScopeServerside: "Serverside",
}

// Valid reports whether s is one of the fixed discriminants.
func (s Scope) Valid() bool {
	_, ok := scopeNames[s]
	return ok
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scope(%d)", uint8(s))
}

// ParseScope validates v against the closed discriminant set.
func ParseScope(v int) (Scope, error) {
	if v < 0 || v > 255 || !Scope(v).Valid() {
		return ScopeInternal, fmt.Errorf("%w: scope %d", ErrUnknownDiscriminant, v)
	}
	return Scope(v), nil
}

// RetryMode advises whether retrying the triggering operation is safe.
// It is metadata only; this package never acts on it.
type RetryMode uint8

const (
	// RetryUnknown means the reporter cannot say whether a retry is safe.
	// This is the default.
	RetryUnknown RetryMode = 0
	// RetryAllowed means retrying the triggering operation is safe.
	RetryAllowed RetryMode = 1
	// RetryDenied means the triggering operation must not be retried.
	RetryDenied RetryMode = 2
)

var retryModeNames = map[RetryMode]string{
	RetryUnknown: "Unknown",
	RetryAllowed: "Allowed",
	RetryDenied:  "Denied",
}

// Valid reports whether m is one of the fixed discriminants.
func (m RetryMode) Valid() bool {
	_, ok := retryModeNames[m]
	return ok
}

func (m RetryMode) String() string {
	if name, ok := retryModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RetryMode(%d)", uint8(m))
}

// ParseRetryMode validates v against the closed discriminant set.
func ParseRetryMode(v int) (RetryMode, error) {
	if v < 0 || v > 255 || !RetryMode(v).Valid() {
		return RetryUnknown, fmt.Errorf("%w: retry_mode %d", ErrUnknownDiscriminant, v)
	}
	return RetryMode(v), nil
}

// PassThroughMode is the policy on whether an error may be forwarded
// verbatim to an upstream caller. Like RetryMode it is advisory.
type PassThroughMode uint8

const (
	// PassThroughAuto leaves the decision to the forwarding layer.
	// This is the default.
	PassThroughAuto PassThroughMode = 0
	// PassThroughShould means the error should be forwarded verbatim.
	PassThroughShould PassThroughMode = 1
	// PassThroughNever means the error must not be exposed; forwarders
	// should synthesize a generic error instead.
	PassThroughNever PassThroughMode = 2
)

var passThroughModeNames = map[PassThroughMode]string{
	PassThroughAuto:   "Auto",
	PassThroughShould: "Should",
	PassThroughNever:  "Never",
}

// Valid reports whether m is one of the fixed discriminants.
func (m PassThroughMode) Valid() bool {
	_, ok := passThroughModeNames[m]
	return ok
}

func (m PassThroughMode) String() string {
	if name, ok := passThroughModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PassThroughMode(%d)", uint8(m))
}

// ParsePassThroughMode validates v against the closed discriminant set.
func ParsePassThroughMode(v int) (PassThroughMode, error) {
	if v < 0 || v > 255 || !PassThroughMode(v).Valid() {
		return PassThroughAuto, fmt.Errorf("%w: pass_through_mode %d", ErrUnknownDiscriminant, v)
	}
	return PassThroughMode(v), nil
}
