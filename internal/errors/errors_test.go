package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOverflow", ErrOverflow, ErrOverflow},
		{"ErrOccupied", ErrOccupied, ErrOccupied},
		{"ErrEmptySquare", ErrEmptySquare, ErrEmptySquare},
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrInvalidPlacement", ErrInvalidPlacement, ErrInvalidPlacement},
		{"ErrMissingKing", ErrMissingKing, ErrMissingKing},
		{"ErrInconsistent", ErrInconsistent, ErrInconsistent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrOverflow, ErrOccupied, ErrEmptySquare, ErrOutOfBounds,
		ErrInvalidPiece, ErrInvalidPlacement, ErrMissingKing, ErrInconsistent,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestBoardError_Error verifies the error message format
func TestBoardError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BoardError
		contains []string
	}{
		{
			name: "full context",
			err: &BoardError{
				Err:    ErrOverflow,
				Op:     "place",
				Square: "e4",
				Piece:  "white rook",
			},
			contains: []string{"place", "e4", "white rook", "overflow"},
		},
		{
			name:     "minimal context",
			err:      &BoardError{Err: ErrEmptySquare},
			contains: []string{"empty square"},
		},
		{
			name:     "no underlying error",
			err:      &BoardError{Op: "remove", Square: "a1"},
			contains: []string{"remove a1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("BoardError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestBoardError_Empty(t *testing.T) {
	if got := (&BoardError{}).Error(); got != "board error" {
		t.Errorf("Error() = %q, want %q", got, "board error")
	}
}

// TestBoardError_Unwrap verifies that BoardError properly implements Unwrap
func TestBoardError_Unwrap(t *testing.T) {
	boardErr := &BoardError{
		Err:    ErrOccupied,
		Op:     "place",
		Square: "d4",
	}

	unwrapped := errors.Unwrap(boardErr)
	if !errors.Is(unwrapped, ErrOccupied) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrOccupied)
	}

	if !errors.Is(boardErr, ErrOccupied) {
		t.Error("errors.Is(boardErr, ErrOccupied) = false, want true")
	}
}

// TestBoardError_As verifies that errors.As works with BoardError
func TestBoardError_As(t *testing.T) {
	boardErr := &BoardError{
		Err:    ErrEmptySquare,
		Op:     "move",
		Square: "e2",
	}

	wrapped := fmt.Errorf("replaying line: %w", boardErr)

	var extracted *BoardError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract BoardError")
	}
	if extracted.Op != "move" {
		t.Errorf("extracted.Op = %q, want %q", extracted.Op, "move")
	}
	if extracted.Square != "e2" {
		t.Errorf("extracted.Square = %q, want %q", extracted.Square, "e2")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidPlacement, "parsing rank 3")

	if !errors.Is(wrapped, ErrInvalidPlacement) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing rank 3") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrOutOfBounds, "square %q", "i9")

	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), `square "i9"`) {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrapf(nil, "ignored %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
