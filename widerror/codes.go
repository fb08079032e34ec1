package widerror

// Code composition convention.
//
// A full code is 9 digits: a 5-digit namespace identifying the owning
// component followed by a 4-digit sub-code local to that namespace.
//
//	code = namespace*10000 + sub_code
//
// The ranges below are a documented convention shared across services.
// Constructors do not reject out-of-convention values; validate with
// ValidNamespace/ValidCode where eager checking is wanted.
const (
	// NamespaceMin and NamespaceMax bound the 5-digit namespace range.
	NamespaceMin uint32 = 10000
	NamespaceMax uint32 = 99999

	// SubCodeMax bounds the 4-digit sub-code range [0, 9999].
	SubCodeMax uint16 = 9999

	// CodeMin and CodeMax bound the composed 9-digit code range.
	CodeMin uint32 = 100000000
	CodeMax uint32 = 999999999

	// subCodeBase is the positional weight of the namespace digits.
	subCodeBase uint32 = 10000
)

// MakeCode composes a full code from a namespace and a sub-code.
func MakeCode(namespace uint32, sub uint16) uint32 {
	return namespace*subCodeBase + uint32(sub)
}

// ParseCode recovers the namespace and sub-code from a composed code by
// division and remainder.
func ParseCode(code uint32) (namespace uint32, sub uint16) {
	return code / subCodeBase, uint16(code % subCodeBase)
}

// ValidNamespace reports whether namespace is within the 5-digit
// conventional range.
func ValidNamespace(namespace uint32) bool {
	return namespace >= NamespaceMin && namespace <= NamespaceMax
}

// ValidCode reports whether code is within the 9-digit conventional range.
func ValidCode(code uint32) bool {
	return code >= CodeMin && code <= CodeMax
}
