package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// ErrUnknownDirection is returned when a direction token cannot be parsed.
var ErrUnknownDirection = errors.New("t2048: unknown direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection parses "up", "down", "left", "right" or their first letter,
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// ParseMoves parses a compact move string such as "LLUR" or "l, l, u, r".
// Whitespace and commas are ignored.
func ParseMoves(s string) ([]Direction, error) {
	var dirs []Direction
	for i, r := range s {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		dir, err := ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// EventType distinguishes a plain slide from a merge.
type EventType int

const (
	EventSlide EventType = iota
	EventMerge
)

// String returns the event type name.
func (t EventType) String() string {
	if t == EventMerge {
		return "merge"
	}
	return "slide"
}

// MoveEvent describes one tile that moved or merged during a move.
// Coordinates are in board orientation. For merges, both source tiles
// report the merge with the combined value; the tile that stays in place
// has From == To.
//
// Since every merge yields two events, summing merge event values counts
// each gain twice. Use MoveResult.ScoreGained for the score and
// MoveResult.Merges for the number of merges.
type MoveEvent struct {
	Type  EventType
	From  Pos
	To    Pos
	Value int
}

// MoveResult is the outcome of a single move.
type MoveResult struct {
	Moved       bool        // Whether the board changed
	ScoreGained int         // Sum of the values created by merges
	Events      []MoveEvent // Ordered by canonical row, then by source column
}

// Merges returns the number of merges performed.
func (r MoveResult) Merges() int {
	n := 0
	for _, e := range r.Events {
		if e.Type == EventMerge {
			n++
		}
	}
	return n / 2
}

// rowMove is a MoveEvent expressed in row indexes of the canonical grid.
type rowMove struct {
	kind     EventType
	from, to int
	value    int
}

// Move slides every tile of b in the given direction, merging equal
// neighbours once per move. The board is modified in place. A move that
// changes nothing reports Moved == false and leaves all values untouched.
func Move(b *Board, dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{}
	}

	b.clearMerged()
	canonicalize(&b.tiles, dir)

	var result MoveResult
	for y := range Size {
		row, score, changed, moves := slideRow(b.tiles[y])
		if !changed {
			continue
		}

		b.tiles[y] = row
		result.Moved = true
		result.ScoreGained += score

		for _, m := range moves {
			result.Events = append(result.Events, MoveEvent{
				Type:  m.kind,
				From:  toBoardPos(dir, Pos{X: m.from, Y: y}),
				To:    toBoardPos(dir, Pos{X: m.to, Y: y}),
				Value: m.value,
			})
		}
	}

	restore(&b.tiles, dir)
	return result
}

// slideRow slides and merges a single row to the left.
// A tile produced by a merge is never merged again in the same move, so
// [2 2 2 2] becomes [4 4 0 0] and [2 2 2 0] becomes [4 2 0 0].
func slideRow(row [Size]Tile) (result [Size]Tile, score int, changed bool, moves []rowMove) {
	// Compress: non-empty values with their source index
	var values, sources [Size]int
	n := 0
	for i, t := range row {
		if t.IsEmpty() {
			continue
		}
		values[n] = t.Value
		sources[n] = i
		n++
	}

	writePos := 0
	for i := 0; i < n; i++ {
		if i+1 < n && values[i] == values[i+1] {
			// Merge with the next tile and consume it
			merged := values[i] * 2
			result[writePos] = Tile{Value: merged, Merged: true}
			score += merged
			moves = append(moves,
				rowMove{kind: EventMerge, from: sources[i], to: writePos, value: merged},
				rowMove{kind: EventMerge, from: sources[i+1], to: writePos, value: merged},
			)
			i++
		} else {
			result[writePos] = Tile{Value: values[i]}
			if sources[i] != writePos {
				moves = append(moves, rowMove{kind: EventSlide, from: sources[i], to: writePos, value: values[i]})
			}
		}
		writePos++
	}

	for i := range Size {
		if result[i].Value != row[i].Value {
			changed = true
			break
		}
	}

	return result, score, changed, moves
}

// Slide applies a move to a copy of the values and returns the new values,
// the score gained and whether anything changed. The input is not modified.
func Slide(values Grid, dir Direction) (Grid, int, bool) {
	var b Board
	for y := range Size {
		for x := range Size {
			b.tiles[y][x] = Tile{Value: values[y][x]}
		}
	}
	result := Move(&b, dir)
	return b.Values(), result.ScoreGained, result.Moved
}
