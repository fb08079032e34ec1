package widerror

import (
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind is the canonical failure category, mirroring the gRPC status-code
// taxonomy (google.rpc.Code) so that the numeric values are interoperable
// across independently built services.
//
// The discriminants are a wire contract. They are fixed explicitly below
// and must never be renumbered; note the historical gap that places
// Unauthenticated at 16, outside the otherwise contiguous run.
type Kind uint8

const (
	// KindOK is not an error; returned on success.
	KindOK Kind = 0
	// KindCancelled means the operation was cancelled, typically by the caller.
	KindCancelled Kind = 1
	// KindUnknown covers errors from an unrecognized error space or APIs
	// that do not return enough information.
	KindUnknown Kind = 2
	// KindInvalidArgument means the client specified an argument that is
	// invalid regardless of the state of the system.
	KindInvalidArgument Kind = 3
	// KindDeadlineExceeded means the deadline expired before the operation
	// could complete.
	KindDeadlineExceeded Kind = 4
	// KindNotFound means a requested entity was not found.
	KindNotFound Kind = 5
	// KindAlreadyExists means the entity a client attempted to create
	// already exists.
	KindAlreadyExists Kind = 6
	// KindPermissionDenied means the caller lacks permission for the
	// operation. Use KindResourceExhausted for quota failures and
	// KindUnauthenticated when the caller cannot be identified.
	KindPermissionDenied Kind = 7
	// KindResourceExhausted means some resource has been exhausted, such as
	// a per-user quota.
	KindResourceExhausted Kind = 8
	// KindFailedPrecondition means the system is not in a state required
	// for the operation and the client should not retry until it is fixed.
	KindFailedPrecondition Kind = 9
	// KindAborted means the operation was aborted, typically due to a
	// concurrency issue such as a transaction abort.
	KindAborted Kind = 10
	// KindOutOfRange means the operation was attempted past the valid
	// range, such as reading past end-of-file.
	KindOutOfRange Kind = 11
	// KindUnimplemented means the operation is not implemented or not
	// enabled in this service.
	KindUnimplemented Kind = 12
	// KindInternal means an invariant expected by the underlying system
	// was broken. Reserved for serious errors.
	KindInternal Kind = 13
	// KindUnavailable means the service is currently unavailable, most
	// likely a transient condition.
	KindUnavailable Kind = 14
	// KindDataLoss means unrecoverable data loss or corruption.
	KindDataLoss Kind = 15
	// KindUnauthenticated means the request lacks valid authentication
	// credentials for the operation.
	KindUnauthenticated Kind = 16
)

// kindNames binds every valid discriminant to its symbolic name. The map,
// not declaration order, defines the closed set.
var kindNames = map[Kind]string{
	KindOK:                 "OK",
	KindCancelled:          "Cancelled",
	KindUnknown:            "Unknown",
	KindInvalidArgument:    "InvalidArgument",
	KindDeadlineExceeded:   "DeadlineExceeded",
	KindNotFound:           "NotFound",
	KindAlreadyExists:      "AlreadyExists",
	KindPermissionDenied:   "PermissionDenied",
	KindResourceExhausted:  "ResourceExhausted",
	KindFailedPrecondition: "FailedPrecondition",
	KindAborted:            "Aborted",
	KindOutOfRange:         "OutOfRange",
	KindUnimplemented:      "Unimplemented",
	KindInternal:           "Internal",
	KindUnavailable:        "Unavailable",
	KindDataLoss:           "DataLoss",
	KindUnauthenticated:    "Unauthenticated",
}

// kindHTTP maps every Kind to the HTTP status documented for the
// corresponding google.rpc.Code. 499 is the de facto "client closed
// request" status with no net/http constant.
var kindHTTP = map[Kind]int{
	KindOK:                 http.StatusOK,
	KindCancelled:          499,
	KindUnknown:            http.StatusInternalServerError,
	KindInvalidArgument:    http.StatusBadRequest,
	KindDeadlineExceeded:   http.StatusGatewayTimeout,
	KindNotFound:           http.StatusNotFound,
	KindAlreadyExists:      http.StatusConflict,
	KindPermissionDenied:   http.StatusForbidden,
	KindResourceExhausted:  http.StatusTooManyRequests,
	KindFailedPrecondition: http.StatusBadRequest,
	KindAborted:            http.StatusConflict,
	KindOutOfRange:         http.StatusBadRequest,
	KindUnimplemented:      http.StatusNotImplemented,
	KindInternal:           http.StatusInternalServerError,
	KindUnavailable:        http.StatusServiceUnavailable,
	KindDataLoss:           http.StatusInternalServerError,
	KindUnauthenticated:    http.StatusUnauthorized,
}

// Valid reports whether k is one of the fixed discriminants.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the symbolic name, or a numeric placeholder for values
// outside the closed set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HTTPStatus returns the HTTP status conventionally mapped to k.
// Unknown kinds map to 500.
func (k Kind) HTTPStatus() int {
	if status, ok := kindHTTP[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC status code for k. Kind discriminants are
// numerically identical to google.golang.org/grpc/codes values.
func (k Kind) GRPCCode() codes.Code {
	if k.Valid() {
		return codes.Code(k)
	}
	return codes.Unknown
}

// KindFromGRPC converts a gRPC status code to a Kind. Codes outside the
// shared taxonomy come back as KindUnknown.
func KindFromGRPC(c codes.Code) Kind {
	k := Kind(c)
	if k.Valid() {
		return k
	}
	return KindUnknown
}

// ParseKind validates v against the closed discriminant set.
func ParseKind(v int) (Kind, error) {
	if v < 0 || v > 255 || !Kind(v).Valid() {
		return KindOK, fmt.Errorf("%w: kind %d", ErrUnknownDiscriminant, v)
	}
	return Kind(v), nil
}
