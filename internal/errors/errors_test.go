package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrSquareOccupied", ErrSquareOccupied, ErrSquareOccupied},
		{"ErrEmptySquare", ErrEmptySquare, ErrEmptySquare},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false; want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN,
		ErrInvalidSquare,
		ErrSquareOccupied,
		ErrEmptySquare,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	t.Run("adds context and preserves the chain", func(t *testing.T) {
		wrapped := Wrap(ErrInvalidSquare, "place piece")
		if !errors.Is(wrapped, ErrInvalidSquare) {
			t.Error("wrapped error lost its sentinel")
		}
		if !strings.HasPrefix(wrapped.Error(), "place piece: ") {
			t.Errorf("wrapped message = %q; want context prefix", wrapped.Error())
		}
	})

	t.Run("nil passthrough", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v; want nil", got)
		}
	})
}

func TestWrapf(t *testing.T) {
	t.Run("formats the context", func(t *testing.T) {
		wrapped := Wrapf(ErrSquareOccupied, "place at (%d, %d)", 3, 4)
		if !errors.Is(wrapped, ErrSquareOccupied) {
			t.Error("wrapped error lost its sentinel")
		}
		want := fmt.Sprintf("place at (3, 4): %v", ErrSquareOccupied)
		if wrapped.Error() != want {
			t.Errorf("wrapped message = %q; want %q", wrapped.Error(), want)
		}
	})

	t.Run("nil passthrough", func(t *testing.T) {
		if got := Wrapf(nil, "context %d", 1); got != nil {
			t.Errorf("Wrapf(nil) = %v; want nil", got)
		}
	})
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrEmptySquare, "remove")
	if !Is(wrapped, ErrEmptySquare) {
		t.Error("Is() = false for wrapped sentinel; want true")
	}
	if Is(wrapped, ErrInvalidFEN) {
		t.Error("Is() = true for unrelated sentinel; want false")
	}
}
