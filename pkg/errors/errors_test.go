package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "Invalid Request"},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "Not Found"},
		{code: CodeMethodNotAllowed, status: http.StatusMethodNotAllowed, publicMsg: "Method Not Allowed"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "Conflict"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "Server Error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "Service Unavailable", retryable: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing userId")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing userId" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Unwrap() != nil {
		t.Fatalf("cause should be nil by default")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk on fire")
	wrapped := Wrap(CodeInternal, cause, "lookup failed")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
	if wrapped.Error() != fmt.Sprintf("%s: %s: %s", CodeInternal, "lookup failed", "disk on fire") {
		t.Fatalf("unexpected error string %q", wrapped.Error())
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	wrapped := Wrap(CodeNotFound, nil, "missing dish")
	if wrapped.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
	if wrapped.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	typed := New(CodeNotFound, "missing dish")
	chained := fmt.Errorf("handling request: %w", typed)
	found := As(chained)
	if found == nil || found.Code() != CodeNotFound {
		t.Fatalf("expected typed error to be found in chain")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatalf("plain errors should not match")
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeValidation, "bad quantity"))
	if !IsCode(err, CodeValidation) {
		t.Fatalf("expected IsCode to match validation")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatalf("unexpected code match")
	}
}
