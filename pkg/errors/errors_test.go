package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := map[Code]Metadata{
		CodeValidation:   {HTTPStatus: http.StatusBadRequest, PublicMessage: "validation failed", DetailsAllowed: true},
		CodeUnauthorized: {HTTPStatus: http.StatusUnauthorized, PublicMessage: "authentication required"},
		CodeForbidden:    {HTTPStatus: http.StatusForbidden, PublicMessage: "access denied"},
		CodeNotFound:     {HTTPStatus: http.StatusNotFound, PublicMessage: "resource not found"},
		CodeConflict:     {HTTPStatus: http.StatusConflict, PublicMessage: "conflict detected"},
		CodeRateLimit:    {HTTPStatus: http.StatusTooManyRequests, PublicMessage: "rate limit exceeded"},
		CodeInternal:     {HTTPStatus: http.StatusInternalServerError, PublicMessage: "internal server error", Retryable: true},
		CodeDependency:   {HTTPStatus: http.StatusServiceUnavailable, PublicMessage: "dependency unavailable", Retryable: true, DetailsAllowed: true},
	}

	for code, want := range tests {
		got := MetadataFor(code)
		if got != want {
			t.Fatalf("code %s: metadata mismatch\n got %+v\nwant %+v", code, got, want)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeValidation, "missing foo")
	if err.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", err.Code())
	}
	if err.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", err.Message())
	}
	if err.Details() != nil {
		t.Fatalf("details should be nil until set")
	}

	err.WithDetails(map[string]any{"field": "foo"})
	if err.Details() == nil {
		t.Fatalf("details should be preserved")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stderrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeForbidden, "no entry")
	if got := As(err); got == nil || got.Code() != CodeForbidden {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestChainWalksCauses(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeDependency, cause, "write row")
	chain := Chain(err)
	if len(chain) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(chain), chain)
	}
	if chain[1] != "disk full" {
		t.Fatalf("expected root cause last, got %v", chain)
	}
}
