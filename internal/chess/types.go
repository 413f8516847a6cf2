// Package chess provides the board representation core: square mapping
// between the compact 64-square index and the padded 10x12 grid, the piece
// vocabulary, the board state with its piece lists, and movement deltas.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Unknown"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Maximum population of each kind per colour.
const (
	MaxPawns   = 8
	MaxKnights = 10
	MaxBishops = 10
	MaxRooks   = 10
	MaxQueens  = 9
	MaxKings   = 1
)

// MaxListCapacity is the largest per-kind population of any kind.
const MaxListCapacity = 10

// MaxCount returns the maximum number of pieces of kind k one colour may hold.
func MaxCount(k Kind) int {
	switch k {
	case Pawn:
		return MaxPawns
	case Knight:
		return MaxKnights
	case Bishop:
		return MaxBishops
	case Rook:
		return MaxRooks
	case Queen:
		return MaxQueens
	case King:
		return MaxKings
	}
	return 0
}

// Piece is a (kind, colour) pair. The two fields are independent; the
// colour of an empty piece carries no meaning.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the value stored on unoccupied squares.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Valid reports whether p is a real piece: a non-empty known kind and a known colour.
func (p Piece) Valid() bool {
	return p.Kind > Empty && p.Kind < NumKinds && p.Colour.Valid()
}

// String returns e.g. "White Rook", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter of p: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// PieceFromLetter converts a FEN letter to a piece. ok is false for any
// byte that is not one of "PNBRQKpnbrqk".
func PieceFromLetter(c byte) (p Piece, ok bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return MakePiece(colour, Pawn), true
	case 'N':
		return MakePiece(colour, Knight), true
	case 'B':
		return MakePiece(colour, Bishop), true
	case 'R':
		return MakePiece(colour, Rook), true
	case 'Q':
		return MakePiece(colour, Queen), true
	case 'K':
		return MakePiece(colour, King), true
	}
	return NoPiece, false
}
