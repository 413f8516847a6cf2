package chess

import (
	"fmt"

	"github.com/lgbarn/mailbox-go/internal/errors"
)

// Square is a compact board index in Little-Endian Rank-File order:
// a1 = 0, b1 = 1, ..., h8 = 63.
type Square int

// Padded is an index into the 10x12 mailbox grid. The first and last two
// rows and the outer column on each side are sentinel cells.
type Padded int

// OutOfBounds marks a padded cell that is not one of the 64 playable squares.
const OutOfBounds Square = -1

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	PaddedWidth  = 10
	PaddedHeight = 12
	PaddedSize   = PaddedWidth * PaddedHeight

	Hedge      = 2 // Sentinel rows above and below the board
	SideBorder = 1 // Sentinel columns left and right of the board
)

// Squares, rank-major.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// The mapping tables are derived from the layout rule once, at package
// initialisation, and are read-only afterwards.
var mailbox120, mailbox64 = buildMailbox()

// buildMailbox lays rank 1 out on padded row 2 and file a on padded column 1.
func buildMailbox() (toCompact [PaddedSize]Square, toPadded [NumSquares]Padded) {
	for p := range toCompact {
		toCompact[p] = OutOfBounds
	}
	for sq := A1; sq <= H8; sq++ {
		p := Padded((sq.Rank()+Hedge)*PaddedWidth + sq.File() + SideBorder)
		toPadded[sq] = p
		toCompact[p] = sq
	}
	return toCompact, toPadded
}

// ToPadded converts a compact square to its cell in the padded grid.
// sq must be a valid square.
func ToPadded(sq Square) Padded {
	return mailbox64[sq]
}

// ToCompact converts a padded index to a compact square. It returns
// OutOfBounds for sentinel cells and for indices outside the grid.
func ToCompact(p Padded) Square {
	if p < 0 || p >= PaddedSize {
		return OutOfBounds
	}
	return mailbox120[p]
}

// PaddedTable returns a copy of the padded-to-compact table.
func PaddedTable() [PaddedSize]Square {
	return mailbox120
}

// NewSquare returns the square on file (0 = a) and rank (0 = first rank),
// or OutOfBounds if either coordinate is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return OutOfBounds
	}
	return Square(rank*BoardSize + file)
}

// File returns the file of sq, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank of sq, 0 for the first rank.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// Valid reports whether sq is one of the 64 playable squares.
func (sq Square) Valid() bool {
	return sq >= A1 && sq <= H8
}

// String returns the algebraic name of sq, or "-" if it is not a valid square.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return OutOfBounds, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	sq := NewSquare(int(s[0])-'a', int(s[1])-'1')
	if sq == OutOfBounds {
		return OutOfBounds, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	return sq, nil
}
