package chess

// Single-step directions in padded-grid units. One rank is one padded row.
const (
	North     = PaddedWidth
	South     = -PaddedWidth
	East      = 1
	West      = -1
	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

// Motion describes how a kind uses its deltas.
type Motion int

const (
	Stationary Motion = iota // Empty: no deltas
	Pawnlike                 // Forward pushes only; captures are layered on by move generation
	Leaper                   // Each delta applied once
	Slider                   // Each delta repeated along a ray
)

// String returns the name of the motion.
func (m Motion) String() string {
	switch m {
	case Pawnlike:
		return "Pawn"
	case Leaper:
		return "Leaper"
	case Slider:
		return "Slider"
	}
	return "Stationary"
}

// DeltaSet is an ordered set of up to eight padded-grid offsets.
type DeltaSet struct {
	steps [8]int
	n     int
}

func newDeltaSet(steps ...int) DeltaSet {
	var d DeltaSet
	d.n = copy(d.steps[:], steps)
	return d
}

// Len returns the number of deltas.
func (d DeltaSet) Len() int {
	return d.n
}

// At returns the i'th delta. i must be in [0, Len()).
func (d DeltaSet) At(i int) int {
	return d.steps[i]
}

// Steps returns the deltas as a slice.
func (d DeltaSet) Steps() []int {
	out := make([]int, d.n)
	copy(out, d.steps[:d.n])
	return out
}

// negate mirrors d across the board's horizontal axis.
func (d DeltaSet) negate() DeltaSet {
	for i := 0; i < d.n; i++ {
		d.steps[i] = -d.steps[i]
	}
	return d
}

var (
	motions = [NumKinds]Motion{
		Empty:  Stationary,
		Pawn:   Pawnlike,
		Knight: Leaper,
		Bishop: Slider,
		Rook:   Slider,
		Queen:  Slider,
		King:   Leaper,
	}

	// Pawn pushes are stored from White's side: single then double step.
	deltas = [NumKinds]DeltaSet{
		Empty: newDeltaSet(),
		Pawn:  newDeltaSet(North, 2*North),
		Knight: newDeltaSet(
			2*North+East, 2*North+West, 2*South+East, 2*South+West,
			North+2*East, North+2*West, South+2*East, South+2*West,
		),
		Bishop: newDeltaSet(NorthEast, NorthWest, SouthEast, SouthWest),
		Rook:   newDeltaSet(North, South, East, West),
		Queen:  newDeltaSet(NorthEast, NorthWest, SouthEast, SouthWest, North, South, East, West),
		King:   newDeltaSet(NorthEast, NorthWest, SouthEast, SouthWest, North, South, East, West),
	}
)

// MotionOf returns how pieces of kind k move.
func MotionOf(k Kind) Motion {
	if k < Empty || k >= NumKinds {
		return Stationary
	}
	return motions[k]
}

// Deltas returns the step offsets for kind k. The pawn entry is White's
// forward single and double push.
func Deltas(k Kind) DeltaSet {
	if k < Empty || k >= NumKinds {
		return DeltaSet{}
	}
	return deltas[k]
}

// PawnPushes returns the forward single and double push for colour c.
func PawnPushes(c Colour) DeltaSet {
	if c == Black {
		return deltas[Pawn].negate()
	}
	return deltas[Pawn]
}
