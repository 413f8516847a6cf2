package chess

// CheckConsistency exposes checkConsistency to the external test package.
func (b *Board) CheckConsistency() error {
	return b.checkConsistency()
}

// Put exposes put, which skips Place's argument checks.
func (b *Board) Put(sq Square, p Piece) error {
	return b.put(sq, p)
}
