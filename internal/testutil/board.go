package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/mailbox-go/internal/chess"
)

// sortSquares compares square slices as sets.
var sortSquares = cmpopts.SortSlices(func(a, b chess.Square) bool { return a < b })

// MustPlacement parses a FEN placement and fails the test on error.
func MustPlacement(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := chess.ParsePlacement(fen)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", fen, err)
	}
	return b
}

// PlaceAll puts every piece of pieces on an empty board, without requiring kings.
func PlaceAll(t *testing.T, pieces map[chess.Square]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	squares := make([]chess.Square, 0, len(pieces))
	for sq := range pieces {
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool { return squares[i] < squares[j] })
	for _, sq := range squares {
		if err := b.Place(sq, pieces[sq]); err != nil {
			t.Fatalf("Place(%s, %s): %v", sq, pieces[sq], err)
		}
	}
	return b
}

// AssertSameSquares compares two square slices ignoring order.
func AssertSameSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqualOpts(t, got, want, cmp.Options{sortSquares, cmpopts.EquateEmpty()}, msgAndArgs...)
}
