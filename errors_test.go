package verigen

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := NewError(CodeDuplicateEndpointKey, "boom")
	if got, want := err.Error(), "duplicate_endpoint_key: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeMalformedSpecification, "line %d: %s", 7, "bad indent")
	if err.Code != CodeMalformedSpecification {
		t.Errorf("code = %q", err.Code)
	}
	if err.Message != "line 7: bad indent" {
		t.Errorf("message = %q", err.Message)
	}
}

func TestWithDetail(t *testing.T) {
	err := NewError(CodeInconsistentArtifacts, "mismatch").
		WithDetail("unbacked", []string{"testString"}).
		WithDetail("undeclared", []string{"testBoolean"})

	if got := err.Details["unbacked"]; fmt.Sprint(got) != "[testString]" {
		t.Errorf("unbacked detail = %v", got)
	}
	if got := err.Details["undeclared"]; fmt.Sprint(got) != "[testBoolean]" {
		t.Errorf("undeclared detail = %v", got)
	}
}

func TestCodeOf(t *testing.T) {
	direct := NewError(CodeUnsupportedTypeShape, "foreign reference")
	if got := CodeOf(direct); got != CodeUnsupportedTypeShape {
		t.Errorf("CodeOf(direct) = %q", got)
	}

	wrapped := fmt.Errorf("compile: %w", direct)
	if got := CodeOf(wrapped); got != CodeUnsupportedTypeShape {
		t.Errorf("CodeOf(wrapped) = %q", got)
	}

	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %q, want empty", got)
	}
}
