package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

// writePaddedTable prints the 10x12 grid top row first, one cell per column:
// the compact index of interior cells and -1 for sentinels.
func writePaddedTable(w io.Writer) {
	table := chess.PaddedTable()
	for row := chess.PaddedHeight - 1; row >= 0; row-- {
		for col := 0; col < chess.PaddedWidth; col++ {
			fmt.Fprintf(w, "%4d", int(table[row*chess.PaddedWidth+col]))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// writeDeltaTable prints each kind's motion and padded-grid offsets.
func writeDeltaTable(w io.Writer) {
	for k := chess.Pawn; k < chess.NumKinds; k++ {
		fmt.Fprintf(w, "%-7s %-7s %v\n", k, chess.MotionOf(k), chess.Deltas(k).Steps())
	}
	fmt.Fprintln(w)
}

type checkResult struct {
	name string
	err  error
}

// selfCheck verifies the mapping tables and b's invariants.
func selfCheck(b *chess.Board) []checkResult {
	return []checkResult{
		{"bijection", checkBijection()},
		{"sentinel", checkSentinels()},
		{"board", b.Validate()},
		{"hash", checkHash(b)},
	}
}

func checkBijection() error {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if got := chess.ToCompact(chess.ToPadded(sq)); got != sq {
			return errors.Wrapf(errors.ErrInconsistent, "%s maps back to %s", sq, got)
		}
	}
	return nil
}

func checkSentinels() error {
	interior := 0
	for p := chess.Padded(0); p < chess.PaddedSize; p++ {
		row, col := int(p)/chess.PaddedWidth, int(p)%chess.PaddedWidth
		border := row < chess.Hedge || row >= chess.PaddedHeight-chess.Hedge || col < chess.SideBorder || col >= chess.PaddedWidth-chess.SideBorder
		sq := chess.ToCompact(p)
		if border && sq != chess.OutOfBounds {
			return errors.Wrapf(errors.ErrOutOfBounds, "border cell %d maps to %s", int(p), sq)
		}
		if !border {
			interior++
		}
	}
	if interior != chess.NumSquares {
		return errors.Wrapf(errors.ErrInconsistent, "%d interior cells", interior)
	}
	return nil
}

func checkHash(b *chess.Board) error {
	if b.Hash() != b.ComputeHash() {
		return errors.Wrapf(errors.ErrInconsistent, "hash %x, recomputed %x", b.Hash(), b.ComputeHash())
	}
	return nil
}
