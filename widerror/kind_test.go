package widerror_test

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/next-trace/scg-widerror/widerror"
)

func TestKind_DiscriminantStability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  widerror.Kind
		value uint8
		name  string
	}{
		{widerror.KindOK, 0, "OK"},
		{widerror.KindCancelled, 1, "Cancelled"},
		{widerror.KindUnknown, 2, "Unknown"},
		{widerror.KindInvalidArgument, 3, "InvalidArgument"},
		{widerror.KindDeadlineExceeded, 4, "DeadlineExceeded"},
		{widerror.KindNotFound, 5, "NotFound"},
		{widerror.KindAlreadyExists, 6, "AlreadyExists"},
		{widerror.KindPermissionDenied, 7, "PermissionDenied"},
		{widerror.KindResourceExhausted, 8, "ResourceExhausted"},
		{widerror.KindFailedPrecondition, 9, "FailedPrecondition"},
		{widerror.KindAborted, 10, "Aborted"},
		{widerror.KindOutOfRange, 11, "OutOfRange"},
		{widerror.KindUnimplemented, 12, "Unimplemented"},
		{widerror.KindInternal, 13, "Internal"},
		{widerror.KindUnavailable, 14, "Unavailable"},
		{widerror.KindDataLoss, 15, "DataLoss"},
		// Historical gap: Unauthenticated sits at 16, not next to
		// PermissionDenied.
		{widerror.KindUnauthenticated, 16, "Unauthenticated"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if uint8(tt.kind) != tt.value {
				t.Errorf("%s = %d, want %d", tt.name, uint8(tt.kind), tt.value)
			}

			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}

			if !tt.kind.Valid() {
				t.Errorf("%s must be valid", tt.name)
			}

			parsed, err := widerror.ParseKind(int(tt.value))
			if err != nil || parsed != tt.kind {
				t.Errorf("ParseKind(%d) = %v, %v", tt.value, parsed, err)
			}
		})
	}
}

func TestParseKind_Rejections(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-1, 17, 99, 256, 1 << 20} {
		if _, err := widerror.ParseKind(v); !errors.Is(err, widerror.ErrUnknownDiscriminant) {
			t.Errorf("ParseKind(%d) err=%v, want ErrUnknownDiscriminant", v, err)
		}
	}
}

func TestKind_HTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   widerror.Kind
		status int
	}{
		{widerror.KindOK, http.StatusOK},
		{widerror.KindCancelled, 499},
		{widerror.KindInvalidArgument, http.StatusBadRequest},
		{widerror.KindDeadlineExceeded, http.StatusGatewayTimeout},
		{widerror.KindNotFound, http.StatusNotFound},
		{widerror.KindAlreadyExists, http.StatusConflict},
		{widerror.KindPermissionDenied, http.StatusForbidden},
		{widerror.KindResourceExhausted, http.StatusTooManyRequests},
		{widerror.KindUnimplemented, http.StatusNotImplemented},
		{widerror.KindUnavailable, http.StatusServiceUnavailable},
		{widerror.KindUnauthenticated, http.StatusUnauthorized},
		{widerror.Kind(200), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.kind.HTTPStatus(); got != tt.status {
			t.Errorf("%v.HTTPStatus() = %d, want %d", tt.kind, got, tt.status)
		}
	}
}

func TestKind_GRPCMapping(t *testing.T) {
	t.Parallel()

	// Kind discriminants are numerically identical to gRPC codes; spot
	// check both directions on the interesting values.
	if got := widerror.KindNotFound.GRPCCode(); got != codes.NotFound {
		t.Errorf("KindNotFound.GRPCCode() = %v, want %v", got, codes.NotFound)
	}

	if got := widerror.KindUnauthenticated.GRPCCode(); got != codes.Unauthenticated {
		t.Errorf("KindUnauthenticated.GRPCCode() = %v, want %v", got, codes.Unauthenticated)
	}

	if got := widerror.Kind(200).GRPCCode(); got != codes.Unknown {
		t.Errorf("invalid kind GRPCCode() = %v, want Unknown", got)
	}

	if got := widerror.KindFromGRPC(codes.ResourceExhausted); got != widerror.KindResourceExhausted {
		t.Errorf("KindFromGRPC(ResourceExhausted) = %v", got)
	}

	if got := widerror.KindFromGRPC(codes.Code(99)); got != widerror.KindUnknown {
		t.Errorf("KindFromGRPC(99) = %v, want KindUnknown", got)
	}
}

func TestEnum_DiscriminantsAndRejections(t *testing.T) {
	t.Parallel()

	if widerror.ScopeInternal != 0 || widerror.ScopeClientside != 1 || widerror.ScopeServerside != 2 {
		t.Fatalf("Scope discriminants renumbered")
	}

	if widerror.RetryUnknown != 0 || widerror.RetryAllowed != 1 || widerror.RetryDenied != 2 {
		t.Fatalf("RetryMode discriminants renumbered")
	}

	if widerror.PassThroughAuto != 0 || widerror.PassThroughShould != 1 || widerror.PassThroughNever != 2 {
		t.Fatalf("PassThroughMode discriminants renumbered")
	}

	if _, err := widerror.ParseScope(99); !errors.Is(err, widerror.ErrUnknownDiscriminant) {
		t.Errorf("ParseScope(99) err=%v", err)
	}

	if _, err := widerror.ParseRetryMode(3); !errors.Is(err, widerror.ErrUnknownDiscriminant) {
		t.Errorf("ParseRetryMode(3) err=%v", err)
	}

	if _, err := widerror.ParsePassThroughMode(-1); !errors.Is(err, widerror.ErrUnknownDiscriminant) {
		t.Errorf("ParsePassThroughMode(-1) err=%v", err)
	}

	if s, err := widerror.ParseScope(2); err != nil || s != widerror.ScopeServerside {
		t.Errorf("ParseScope(2) = %v, %v", s, err)
	}
}
