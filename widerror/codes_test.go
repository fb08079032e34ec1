package widerror_test

import (
	"fmt"
	"testing"

	"github.com/next-trace/scg-widerror/widerror"
)

func TestMakeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		namespace uint32
		sub       uint16
		expected  uint32
	}{
		{0, 0, 0},
		{10000, 0, 100000000},
		{10000, 1, 100000001},
		{12345, 6789, 123456789},
		{20001, 17, 200010017},
		{99999, 9999, 999999999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%d_%d", tt.namespace, tt.sub), func(t *testing.T) {
			t.Parallel()

			if got := widerror.MakeCode(tt.namespace, tt.sub); got != tt.expected {
				t.Errorf("MakeCode(%d, %d) = %d, want %d", tt.namespace, tt.sub, got, tt.expected)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code              uint32
		expectedNamespace uint32
		expectedSub       uint16
	}{
		{0, 0, 0},
		{100000000, 10000, 0},
		{123456789, 12345, 6789},
		{200010017, 20001, 17},
		{999999999, 99999, 9999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%d", tt.code), func(t *testing.T) {
			t.Parallel()

			namespace, sub := widerror.ParseCode(tt.code)
			if namespace != tt.expectedNamespace || sub != tt.expectedSub {
				t.Errorf("ParseCode(%d) = (%d, %d), want (%d, %d)",
					tt.code, namespace, sub, tt.expectedNamespace, tt.expectedSub)
			}
		})
	}
}

func TestValidRanges(t *testing.T) {
	t.Parallel()

	if widerror.ValidNamespace(9999) || !widerror.ValidNamespace(10000) ||
		!widerror.ValidNamespace(99999) || widerror.ValidNamespace(100000) {
		t.Errorf("ValidNamespace boundaries wrong")
	}

	if widerror.ValidCode(99999999) || !widerror.ValidCode(100000000) ||
		!widerror.ValidCode(999999999) || widerror.ValidCode(1000000000) {
		t.Errorf("ValidCode boundaries wrong")
	}
}
