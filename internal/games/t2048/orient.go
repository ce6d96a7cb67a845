package t2048

// Every move is computed as a slide to the left. canonicalize rotates or
// mirrors the grid so that the requested direction points left, and
// restore undoes it afterwards.
//
//	Left:  identity
//	Right: mirror
//	Up:    transpose
//	Down:  transpose, then mirror (restored as mirror, then transpose)

func canonicalize(g *grid, dir Direction) {
	switch dir {
	case DirRight:
		mirror(g)
	case DirUp:
		transpose(g)
	case DirDown:
		transpose(g)
		mirror(g)
	}
}

func restore(g *grid, dir Direction) {
	switch dir {
	case DirRight:
		mirror(g)
	case DirUp:
		transpose(g)
	case DirDown:
		mirror(g)
		transpose(g)
	}
}

// toBoardPos maps a coordinate of the canonicalized grid back to the
// board's own orientation.
func toBoardPos(dir Direction, p Pos) Pos {
	switch dir {
	case DirRight:
		return Pos{X: Size - 1 - p.X, Y: p.Y}
	case DirUp:
		return Pos{X: p.Y, Y: p.X}
	case DirDown:
		return Pos{X: p.Y, Y: Size - 1 - p.X}
	default:
		return p
	}
}

// mirror reverses every row in place.
func mirror(g *grid) {
	for y := range Size {
		for x := range Size / 2 {
			g[y][x], g[y][Size-1-x] = g[y][Size-1-x], g[y][x]
		}
	}
}

// transpose swaps rows and columns in place.
func transpose(g *grid) {
	for y := range Size {
		for x := y + 1; x < Size; x++ {
			g[y][x], g[x][y] = g[x][y], g[y][x]
		}
	}
}
