package chess

// Step applies one delta to from and returns the destination, or
// OutOfBounds if the step leaves the board.
func Step(from Square, delta int) Square {
	if !from.Valid() {
		return OutOfBounds
	}
	return ToCompact(ToPadded(from) + Padded(delta))
}

// Ray walks from along delta and returns every square visited. The walk
// ends at the border or at the first occupied square, which is included
// whatever its colour.
func (b *Board) Ray(from Square, delta int) []Square {
	var out []Square
	if !from.Valid() || delta == 0 {
		return out
	}
	for p := ToPadded(from) + Padded(delta); ; p += Padded(delta) {
		sq := ToCompact(p)
		if sq == OutOfBounds {
			return out
		}
		out = append(out, sq)
		if b.Occupied(sq) {
			return out
		}
	}
}

// Targets returns the pseudo destinations of the piece on from. Squares
// holding a piece of either colour are included for leapers and as the last
// square of each slider ray; deciding captures is left to the caller. Pawns
// yield only their pushes: the double push from the starting rank, and
// neither push through an occupied square.
func (b *Board) Targets(from Square) []Square {
	p := b.PieceAt(from)
	var out []Square

	switch MotionOf(p.Kind) {
	case Leaper:
		d := Deltas(p.Kind)
		for i := 0; i < d.Len(); i++ {
			if to := Step(from, d.At(i)); to != OutOfBounds {
				out = append(out, to)
			}
		}
	case Slider:
		d := Deltas(p.Kind)
		for i := 0; i < d.Len(); i++ {
			out = append(out, b.Ray(from, d.At(i))...)
		}
	case Pawnlike:
		out = b.pawnPushes(from, p.Colour)
	}
	return out
}

func (b *Board) pawnPushes(from Square, c Colour) []Square {
	var out []Square
	pushes := PawnPushes(c)

	one := Step(from, pushes.At(0))
	if one == OutOfBounds || b.Occupied(one) {
		return out
	}
	out = append(out, one)

	startRank := 1
	if c == Black {
		startRank = BoardSize - 2
	}
	if from.Rank() != startRank {
		return out
	}
	if two := Step(from, pushes.At(1)); two != OutOfBounds && !b.Occupied(two) {
		out = append(out, two)
	}
	return out
}
