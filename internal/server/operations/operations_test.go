package operations

import (
	"errors"
	"testing"

	"github.com/dberestov/webcalc/internal/common"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()

	if got := Add(10, 5); got != 15 {
		t.Fatalf("Add(10, 5) = %v, want 15", got)
	}
	if got := Subtract(10, 5); got != 5 {
		t.Fatalf("Subtract(10, 5) = %v, want 5", got)
	}
	if got := Multiply(10, 2); got != 20 {
		t.Fatalf("Multiply(10, 2) = %v, want 20", got)
	}
	got, err := Divide(20, 2)
	if err != nil {
		t.Fatalf("Divide(20, 2) error: %v", err)
	}
	if got != 10 {
		t.Fatalf("Divide(20, 2) = %v, want 10", got)
	}
}

func TestDivide_ByZero(t *testing.T) {
	t.Parallel()

	if _, err := Divide(1, 0); !errors.Is(err, common.ErrDivisionByZero) {
		t.Fatalf("expected common.ErrDivisionByZero, got %v", err)
	}
}
