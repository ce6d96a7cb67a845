package t2048

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// DefaultSpawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Probability = 0.10

// ErrInvalidTileValue is returned when loading a value that is neither 0 nor a power of two.
var ErrInvalidTileValue = errors.New("t2048: invalid tile value")

// Pos is a board coordinate: X is the column, Y is the row, (0, 0) is top-left.
type Pos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Grid holds plain tile values indexed as [y][x].
type Grid [Size][Size]int

// grid is the tile storage indexed as [y][x].
type grid [Size][Size]Tile

// Board is the 4x4 tile grid together with the random source used for spawning.
// A Board is not safe for concurrent use.
type Board struct {
	tiles      grid
	seed       int64
	rng        *rand.Rand
	spawn4Prob float64
}

// NewBoard creates an empty board whose spawns are driven by the given seed.
func NewBoard(seed int64) *Board {
	return &Board{
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		spawn4Prob: DefaultSpawn4Probability,
	}
}

// NewRandomBoard creates an empty board with a seed drawn from the
// runtime-seeded global source. Safe to call from several goroutines.
func NewRandomBoard() *Board {
	return NewBoard(rand.Int63())
}

// Seed returns the seed the board's spawner was created with. Passing it to
// NewBoard reproduces the same spawns.
func (b *Board) Seed() int64 {
	return b.seed
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.tiles = grid{}
}

// Tile returns the tile at (x, y). Panics if the coordinate is off the board.
func (b *Board) Tile(x, y int) Tile {
	mustInBounds(x, y)
	return b.tiles[y][x]
}

// SetTile replaces the tile at (x, y). Panics if the coordinate is off the board.
func (b *Board) SetTile(x, y int, t Tile) {
	mustInBounds(x, y)
	b.tiles[y][x] = t
}

// Value returns the tile value at (x, y).
func (b *Board) Value(x, y int) int {
	return b.Tile(x, y).Value
}

// SetValue places a plain (not merged) tile with value v at (x, y).
func (b *Board) SetValue(x, y, v int) {
	b.SetTile(x, y, Tile{Value: v})
}

func mustInBounds(x, y int) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		panic(fmt.Sprintf("t2048: coordinate (%d, %d) outside %dx%d board", x, y, Size, Size))
	}
}

// Spawn4Probability returns the chance of spawning a 4.
func (b *Board) Spawn4Probability() float64 {
	return b.spawn4Prob
}

// SetSpawn4Probability sets the chance of spawning a 4, clamped to [0, 1].
func (b *Board) SetSpawn4Probability(p float64) {
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	b.spawn4Prob = p
}

// SpawnRandomTile places a 2 or a 4 in an empty cell chosen uniformly at random.
// Returns false and leaves the board untouched when there is no empty cell.
func (b *Board) SpawnRandomTile() (Pos, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Pos{}, false
	}

	cell := empty[b.rng.Intn(len(empty))]

	value := 2
	if b.rng.Float64() < b.spawn4Prob {
		value = 4
	}

	b.tiles[cell.Y][cell.X] = Tile{Value: value}
	return cell, true
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() []Pos {
	cells := make([]Pos, 0, Size*Size)
	for y := range Size {
		for x := range Size {
			if b.tiles[y][x].IsEmpty() {
				cells = append(cells, Pos{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b *Board) HasEmptyCell() bool {
	for y := range Size {
		for x := range Size {
			if b.tiles[y][x].IsEmpty() {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			if b.tiles[y][x].Value > maxVal {
				maxVal = b.tiles[y][x].Value
			}
		}
	}
	return maxVal
}

// Values returns a copy of the tile values.
func (b *Board) Values() Grid {
	var g Grid
	for y := range Size {
		for x := range Size {
			g[y][x] = b.tiles[y][x].Value
		}
	}
	return g
}

// Load replaces every tile with the given values. Merge flags are cleared.
// The board is left unchanged if any value is invalid.
func (b *Board) Load(g Grid) error {
	for y := range Size {
		for x := range Size {
			if !validTileValue(g[y][x]) {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTileValue, g[y][x], x, y)
			}
		}
	}

	for y := range Size {
		for x := range Size {
			b.tiles[y][x] = Tile{Value: g[y][x]}
		}
	}
	return nil
}

// Clone returns a copy of the board's tiles. The clone shares the random
// source with b, so it must stay on the same goroutine as b.
func (b *Board) Clone() *Board {
	return &Board{
		tiles:      b.tiles,
		seed:       b.seed,
		rng:        b.rng,
		spawn4Prob: b.spawn4Prob,
	}
}

// clearMerged resets every tile's merge flag.
func (b *Board) clearMerged() {
	for y := range Size {
		for x := range Size {
			b.tiles[y][x].Merged = false
		}
	}
}

// String returns the values row by row, empty cells shown as ".".
func (b *Board) String() string {
	var sb strings.Builder
	for y := range Size {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v := b.tiles[y][x].Value; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}
	return sb.String()
}
