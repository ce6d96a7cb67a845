package t2048

// Tile is a single board cell.
type Tile struct {
	Value  int  // 0 for an empty cell, otherwise a power of two
	Merged bool // Produced by a merge during the most recent move
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t.Value == 0
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// validTileValue reports whether v can be stored in a cell.
func validTileValue(v int) bool {
	return v == 0 || (v >= 2 && IsPowerOfTwo(v))
}
