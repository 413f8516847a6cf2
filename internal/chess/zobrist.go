package chess

import "math/rand"

// zobristSeed is fixed so keys are reproducible across runs.
const zobristSeed = 0x10C0DE

// zobristPiece holds one key per (colour, kind, square). Entries for the
// Empty kind stay zero.
var zobristPiece = buildZobrist()

func buildZobrist() (keys [NumColours][NumKinds][NumSquares]uint64) {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for c := Black; c < NumColours; c++ {
		for k := Pawn; k < NumKinds; k++ {
			for sq := A1; sq <= H8; sq++ {
				keys[c][k][sq] = rnd.Uint64()
			}
		}
	}
	return keys
}

func zobristKey(p Piece, sq Square) uint64 {
	return zobristPiece[p.Colour][p.Kind][sq]
}

// Hash returns the zobrist key of the piece placement, kept up to date by
// every mutation.
func (b *Board) Hash() uint64 {
	return b.hash
}

// ComputeHash recomputes the zobrist key from the occupancy view.
func (b *Board) ComputeHash() uint64 {
	var key uint64
	for sq := A1; sq <= H8; sq++ {
		if p := b.squares[sq]; !p.IsEmpty() {
			key ^= zobristKey(p, sq)
		}
	}
	return key
}
