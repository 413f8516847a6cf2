package chess

import "github.com/lgbarn/mailbox-go/internal/errors"

// PieceList is a capacity-bounded set of the squares occupied by one
// (colour, kind) pair. Order is not meaningful: removal swaps the last
// entry into the vacated slot.
type PieceList struct {
	squares [MaxListCapacity]Square
	n       int
	max     int
}

// NewPieceList returns an empty list sized for kind.
func NewPieceList(kind Kind) PieceList {
	return PieceList{max: MaxCount(kind)}
}

// Len returns the number of squares in the list.
func (l PieceList) Len() int {
	return l.n
}

// Cap returns the maximum number of squares the list accepts.
func (l PieceList) Cap() int {
	return l.max
}

// Full reports whether another Add would overflow.
func (l PieceList) Full() bool {
	return l.n >= l.max
}

// At returns the i'th square. i must be in [0, Len()).
func (l PieceList) At(i int) Square {
	return l.squares[i]
}

// Squares returns a copy of the occupied squares.
func (l PieceList) Squares() []Square {
	out := make([]Square, l.n)
	copy(out, l.squares[:l.n])
	return out
}

// Contains reports whether sq is in the list.
func (l PieceList) Contains(sq Square) bool {
	return l.index(sq) >= 0
}

// Add appends sq. It fails with ErrOverflow when the list is full.
func (l *PieceList) Add(sq Square) error {
	if l.Full() {
		return errors.ErrOverflow
	}
	l.squares[l.n] = sq
	l.n++
	return nil
}

// Remove deletes sq. It fails with ErrEmptySquare when sq is not present.
func (l *PieceList) Remove(sq Square) error {
	i := l.index(sq)
	if i < 0 {
		return errors.ErrEmptySquare
	}
	l.n--
	l.squares[i] = l.squares[l.n]
	l.squares[l.n] = 0
	return nil
}

// Replace swaps from for to in place.
func (l *PieceList) Replace(from, to Square) error {
	i := l.index(from)
	if i < 0 {
		return errors.ErrEmptySquare
	}
	l.squares[i] = to
	return nil
}

func (l PieceList) index(sq Square) int {
	for i := 0; i < l.n; i++ {
		if l.squares[i] == sq {
			return i
		}
	}
	return -1
}
