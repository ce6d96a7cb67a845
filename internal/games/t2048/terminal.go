package t2048

// IsGameOver returns true when the board is full and no two horizontally or
// vertically adjacent tiles share a value. It does not modify the board.
func IsGameOver(b *Board) bool {
	return !CanMove(b)
}

// CanMove returns true if any move is possible.
func CanMove(b *Board) bool {
	return b.HasEmptyCell() || HasPossibleMerge(b)
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(b *Board) bool {
	for y := range Size {
		for x := range Size {
			val := b.tiles[y][x].Value
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < Size-1 && b.tiles[y][x+1].Value == val {
				return true
			}
			// Check bottom neighbor
			if y < Size-1 && b.tiles[y+1][x].Value == val {
				return true
			}
		}
	}
	return false
}

// AvailableMoves returns the directions that would change the board,
// in Directions order. The board itself is not modified.
func AvailableMoves(b *Board) []Direction {
	var dirs []Direction
	for _, dir := range Directions {
		if Move(b.Clone(), dir).Moved {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
