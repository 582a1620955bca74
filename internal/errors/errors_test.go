package errors

import (
	"errors"
	"testing"
)

func TestSeedErrorUnwrap(t *testing.T) {
	err := NewSeedError("course", "python", ErrDuplicateID)

	if !errors.Is(err, ErrDuplicateID) {
		t.Error("expected errors.Is to match ErrDuplicateID")
	}
	if errors.Is(err, ErrEmptyField) {
		t.Error("did not expect errors.Is to match ErrEmptyField")
	}
}

func TestSeedErrorMessage(t *testing.T) {
	err := NewSeedError("staff", "john_smith", ErrEmptyField)

	want := `invalid seed record (staff "john_smith"): empty required field`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSeedErrorAs(t *testing.T) {
	var target *SeedError
	err := NewSeedError("faq", "enrollment", ErrEmptyField)

	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to extract *SeedError")
	}
	if target.Kind != "faq" || target.ID != "enrollment" {
		t.Errorf("unexpected fields: kind=%q id=%q", target.Kind, target.ID)
	}
}
