package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/mailbox-go/internal/errors"
)

// InitialPlacement is the FEN piece placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from a FEN piece placement field. A full FEN
// string is accepted; only its first field is read. Every placement goes
// through Place, so population limits apply, and each colour must end up
// with exactly one king.
func ParsePlacement(fen string) (*Board, error) {
	b := NewBoard()
	if err := b.SetupPlacement(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// SetupPlacement replaces the contents of b with the given FEN placement.
// On error b is left unchanged.
func (b *Board) SetupPlacement(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 1 {
		return fmt.Errorf("empty placement: %w", errors.ErrInvalidPlacement)
	}

	next := NewBoard()
	if err := parsePiecePositions(next, fields[0]); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPlacement, err)
	}
	*b = *next
	return nil
}

// parsePiecePositions parses the piece placement part of FEN.
func parsePiecePositions(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return fmt.Errorf("%d ranks, want %d: %w", len(ranks), BoardSize, errors.ErrInvalidPlacement)
	}

	for i, row := range ranks {
		rank := BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := PieceFromLetter(c)
			if !ok {
				return fmt.Errorf("rank %d: unexpected %q: %w", rank+1, c, errors.ErrInvalidPlacement)
			}
			if file >= BoardSize {
				return fmt.Errorf("rank %d: too many files: %w", rank+1, errors.ErrInvalidPlacement)
			}
			if err := b.Place(NewSquare(file, rank), p); err != nil {
				return fmt.Errorf("rank %d: %w: %w", rank+1, errors.ErrInvalidPlacement, err)
			}
			file++
		}
		if file != BoardSize {
			return fmt.Errorf("rank %d: %d files, want %d: %w", rank+1, file, BoardSize, errors.ErrInvalidPlacement)
		}
	}
	return nil
}

// Placement returns the FEN piece placement field for b.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < BoardSize; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
