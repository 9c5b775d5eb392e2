package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(CodeNotFound, "project missing", fmt.Errorf("row not found"))
	if !goerrors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("expected code match")
	}
	if goerrors.Is(err, New(CodeAlreadyExists, "")) {
		t.Fatal("expected code mismatch")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("broker unreachable")
	err := Wrap(CodeUnknown, "emit event", cause)
	if !goerrors.Is(err, cause) {
		t.Fatal("expected wrapped cause in chain")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeNotFound, codes.NotFound},
		{CodeAlreadyExists, codes.AlreadyExists},
		{CodeUnauthorized, codes.PermissionDenied},
		{CodeInvalidHeader, codes.InvalidArgument},
		{CodeInvalidFormat, codes.InvalidArgument},
		{CodeMissingFields, codes.InvalidArgument},
		{CodeUnknown, codes.Unknown},
		{Code("SOMETHING_ELSE"), codes.Unknown},
	}
	for _, tc := range cases {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("%s mapped to %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestToGRPCStatusCarriesErrorInfo(t *testing.T) {
	err := New(CodeAlreadyExists, "project name taken").ToGRPCStatus()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.AlreadyExists {
		t.Fatalf("status code = %v, want %v", st.Code(), codes.AlreadyExists)
	}
	if st.Message() != "project name taken" {
		t.Fatalf("status message = %q", st.Message())
	}
	if len(st.Details()) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(st.Details()))
	}
}
