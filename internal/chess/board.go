package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/mailbox-go/internal/errors"
)

// Board holds the piece placement in three views that are kept in step by
// the mutating methods: the combined occupancy, one occupancy array per
// colour, and one piece list per (colour, kind).
type Board struct {
	// Combined view: exactly one entry per square, NoPiece where empty.
	squares [NumSquares]Piece

	// Per-colour views: only that colour's pieces are populated.
	colours [NumColours][NumSquares]Piece

	// Piece lists, indexed by colour then kind. The Empty slot is unused.
	lists [NumColours][NumKinds]PieceList

	// Zobrist key of the placement.
	hash uint64
}

// backRank is the first-rank layout from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear removes every piece.
func (b *Board) Clear() {
	*b = Board{}
	for c := Black; c < NumColours; c++ {
		for k := Empty; k < NumKinds; k++ {
			b.lists[c][k] = NewPieceList(k)
		}
	}
}

// SetupInitialPosition resets the board to the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for file := 0; file < BoardSize; file++ {
		b.mustPut(NewSquare(file, 0), W(backRank[file]))
		b.mustPut(NewSquare(file, 1), W(Pawn))
		b.mustPut(NewSquare(file, 6), B(Pawn))
		b.mustPut(NewSquare(file, 7), B(backRank[file]))
	}
}

// PieceAt returns the piece on sq, or NoPiece if sq is empty. sq must be a
// valid compact square; it yields NoPiece for anything else.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// ColourPieceAt returns the piece on sq in colour c's view. It is NoPiece
// unless a piece of colour c stands on sq.
func (b *Board) ColourPieceAt(c Colour, sq Square) Piece {
	if !sq.Valid() || !c.Valid() {
		return NoPiece
	}
	return b.colours[c][sq]
}

// Occupied reports whether any piece stands on sq.
func (b *Board) Occupied(sq Square) bool {
	return !b.PieceAt(sq).IsEmpty()
}

// Place puts p on the empty square sq. It fails with ErrOccupied if sq holds a
// piece and with ErrOverflow if colour and kind are already at their maximum
// population. On failure the board is unchanged.
func (b *Board) Place(sq Square, p Piece) error {
	if !sq.Valid() {
		return boardError("place", sq, p, errors.ErrOutOfBounds)
	}
	if !p.Valid() {
		return boardError("place", sq, p, errors.ErrInvalidPiece)
	}
	if !b.squares[sq].IsEmpty() {
		return boardError("place", sq, p, errors.ErrOccupied)
	}
	if err := b.put(sq, p); err != nil {
		return boardError("place", sq, p, err)
	}
	return nil
}

// Remove takes the piece off sq and returns it. It fails with ErrEmptySquare
// if sq holds no piece and with ErrMissingKing if sq holds a king, since a
// colour keeps exactly one king. Kings change square through MovePiece. On
// failure the board is unchanged.
func (b *Board) Remove(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, boardError("remove", sq, NoPiece, errors.ErrOutOfBounds)
	}
	p := b.squares[sq]
	if p.IsEmpty() {
		return NoPiece, boardError("remove", sq, NoPiece, errors.ErrEmptySquare)
	}
	if p.Kind == King {
		return NoPiece, boardError("remove", sq, p, errors.ErrMissingKing)
	}
	if err := b.lists[p.Colour][p.Kind].Remove(sq); err != nil {
		return NoPiece, boardError("remove", sq, p, errors.ErrInconsistent)
	}
	b.squares[sq] = NoPiece
	b.colours[p.Colour][sq] = NoPiece
	b.hash ^= zobristKey(p, sq)
	return p, nil
}

// MovePiece moves the piece on from to the empty square to. A capture is
// made by calling Remove(to) first; MovePiece fails with ErrOccupied if to
// is not empty and with ErrEmptySquare if from is. On failure the board is
// unchanged.
func (b *Board) MovePiece(from, to Square) error {
	if !from.Valid() {
		return boardError("move", from, NoPiece, errors.ErrOutOfBounds)
	}
	if !to.Valid() {
		return boardError("move", to, NoPiece, errors.ErrOutOfBounds)
	}
	p := b.squares[from]
	if p.IsEmpty() {
		return boardError("move", from, NoPiece, errors.ErrEmptySquare)
	}
	if !b.squares[to].IsEmpty() {
		return boardError("move", to, p, errors.ErrOccupied)
	}
	if err := b.lists[p.Colour][p.Kind].Replace(from, to); err != nil {
		return boardError("move", from, p, errors.ErrInconsistent)
	}
	b.squares[from] = NoPiece
	b.colours[p.Colour][from] = NoPiece
	b.squares[to] = p
	b.colours[p.Colour][to] = p
	b.hash ^= zobristKey(p, from) ^ zobristKey(p, to)
	return nil
}

// put writes p on the empty square sq in every view. It fails with
// ErrOverflow, writing nothing, when the piece list is full.
func (b *Board) put(sq Square, p Piece) error {
	if err := b.lists[p.Colour][p.Kind].Add(sq); err != nil {
		return err
	}
	b.squares[sq] = p
	b.colours[p.Colour][sq] = p
	b.hash ^= zobristKey(p, sq)
	return nil
}

// mustPut is put for layouts that fit the population limits by construction.
func (b *Board) mustPut(sq Square, p Piece) {
	if err := b.put(sq, p); err != nil {
		panic(fmt.Sprintf("chess: put %s on %s: %v", p, sq, err))
	}
}

// Pieces returns a copy of the piece list for colour c and kind k.
func (b *Board) Pieces(c Colour, k Kind) PieceList {
	if !c.Valid() || k <= Empty || k >= NumKinds {
		return PieceList{}
	}
	return b.lists[c][k]
}

// Count returns the number of pieces of colour c and kind k.
func (b *Board) Count(c Colour, k Kind) int {
	l := b.Pieces(c, k)
	return l.Len()
}

// King returns the square of colour c's king, or OutOfBounds if it has none.
func (b *Board) King(c Colour) Square {
	l := b.Pieces(c, King)
	if l.Len() == 0 {
		return OutOfBounds
	}
	return l.At(0)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether b and other have the same piece on every square.
// Piece-list order is not compared.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}

// Validate checks that the three views agree, that every list respects its
// capacity, and that each colour has exactly one king.
func (b *Board) Validate() error {
	if err := b.checkConsistency(); err != nil {
		return err
	}
	for c := Black; c < NumColours; c++ {
		if n := b.Count(c, King); n != 1 {
			return errors.Wrapf(errors.ErrMissingKing, "%s has %d kings", c, n)
		}
	}
	return nil
}

// checkConsistency verifies invariants between the occupancy views and the
// piece lists. It does not require kings.
func (b *Board) checkConsistency() error {
	var listed [NumColours][NumSquares]int

	for c := Black; c < NumColours; c++ {
		for k := Pawn; k < NumKinds; k++ {
			l := &b.lists[c][k]
			if l.Cap() != MaxCount(k) || l.Len() > l.Cap() {
				return errors.Wrapf(errors.ErrInconsistent, "%s %s list holds %d of %d", c, k, l.Len(), l.Cap())
			}
			for i := 0; i < l.Len(); i++ {
				sq := l.At(i)
				if !sq.Valid() {
					return errors.Wrapf(errors.ErrInconsistent, "%s %s list holds invalid square %d", c, k, int(sq))
				}
				if b.colours[c][sq] != MakePiece(c, k) {
					return errors.Wrapf(errors.ErrInconsistent, "%s %s listed on %s", c, k, sq)
				}
				listed[c][sq]++
			}
		}
	}

	for sq := A1; sq <= H8; sq++ {
		p := b.squares[sq]
		for c := Black; c < NumColours; c++ {
			view := b.colours[c][sq]
			switch {
			case !p.IsEmpty() && p.Colour == c:
				if view != p || listed[c][sq] != 1 {
					return errors.Wrapf(errors.ErrInconsistent, "%s: %s view disagrees with board", sq, c)
				}
			default:
				if !view.IsEmpty() || listed[c][sq] != 0 {
					return errors.Wrapf(errors.ErrInconsistent, "%s: %s view should be empty", sq, c)
				}
			}
		}
	}
	return nil
}

// String renders the board as an 8x8 diagram with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.squares[NewSquare(file, rank)].Letter())
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func boardError(op string, sq Square, p Piece, err error) error {
	e := &errors.BoardError{Op: op, Square: sq.String(), Err: err}
	if !p.IsEmpty() {
		e.Piece = p.String()
	}
	return e
}
