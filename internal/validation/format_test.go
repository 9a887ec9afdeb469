package validation

import (
	"errors"
	"testing"
)

func TestFormatValidValues(t *testing.T) {
	type level string

	got := FormatValidValues([]level{"high", "medium", "low"})
	want := "high, medium, low"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatInvalidValueError(t *testing.T) {
	type level string

	base := errors.New("invalid priority")
	err := FormatInvalidValueError(base, level("urgent"), []level{"high", "medium", "low"})
	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}

	want := `invalid priority: "urgent" (valid: high, medium, low)`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
