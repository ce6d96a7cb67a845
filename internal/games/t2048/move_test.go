package t2048

import (
	"errors"
	"reflect"
	"testing"
)

// boardOf returns a board loaded with the given values.
func boardOf(t *testing.T, g Grid) *Board {
	t.Helper()
	b := NewBoard(1)
	if err := b.Load(g); err != nil {
		t.Fatalf("Load(%v) failed: %v", g, err)
	}
	return b
}

func rowValues(row [Size]Tile) [Size]int {
	var out [Size]int
	for i, tile := range row {
		out[i] = tile.Value
	}
	return out
}

func rowTiles(values [Size]int) [Size]Tile {
	var out [Size]Tile
	for i, v := range values {
		out[i] = Tile{Value: v}
	}
	return out
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
		changed  bool
	}{
		{
			name:     "slide without merge",
			input:    [4]int{0, 2, 0, 4},
			expected: [4]int{2, 4, 0, 0},
			score:    0,
			changed:  true,
		},
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "leftmost pair merges first",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
			changed:  true,
		},
		{
			name:     "compress then merge",
			input:    [4]int{2, 0, 2, 2},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
			changed:  false,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{4, 2, 2, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
			changed:  false,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
			changed:  false,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, changed, _ := slideRow(rowTiles(tt.input))
			if got := rowValues(result); got != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("slideRow(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	b := boardOf(t, Grid{{4, 4, 4, 4}})

	result := Move(b, DirLeft)

	want := Grid{{8, 8, 0, 0}}
	if got := b.Values(); got != want {
		t.Errorf("Move left = %v, want %v (one merge per tile per move)", got, want)
	}
	// Score should be 8+8 = 16, not 8+16 = 24
	if result.ScoreGained != 16 {
		t.Errorf("ScoreGained = %d, want 16", result.ScoreGained)
	}
	if result.Merges() != 2 {
		t.Errorf("Merges() = %d, want 2", result.Merges())
	}
}

func TestMoveLeftRow(t *testing.T) {
	b := boardOf(t, Grid{{2, 2, 0, 0}})

	result := Move(b, DirLeft)

	if !result.Moved {
		t.Fatal("Move should report the board changed")
	}
	if result.ScoreGained != 4 {
		t.Errorf("ScoreGained = %d, want 4", result.ScoreGained)
	}
	if got := b.Tile(0, 0); got.Value != 4 || !got.Merged {
		t.Errorf("Tile(0, 0) = %+v, want merged 4", got)
	}
	if got := b.Tile(1, 0); got.Value != 0 {
		t.Errorf("Tile(1, 0) = %+v, want empty", got)
	}
}

func TestMergedFlagClearedNextMove(t *testing.T) {
	b := boardOf(t, Grid{{2, 2, 0, 0}})

	Move(b, DirLeft)
	if !b.Tile(0, 0).Merged {
		t.Fatal("merged flag should be set after the merge")
	}

	// A move that changes nothing still clears the flags
	result := Move(b, DirLeft)
	if result.Moved {
		t.Fatal("second move left should not change the board")
	}
	if b.Tile(0, 0).Merged {
		t.Error("merged flag should be cleared at the start of every move")
	}
}

func TestSlideLeft(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, changed := Slide(board, DirLeft)

	if result != expected {
		t.Errorf("Slide left: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide left should indicate board changed")
	}

	expectedScore := 4 + 8 + 4 + 4
	if score != expectedScore {
		t.Errorf("Slide left score = %d, want %d", score, expectedScore)
	}
}

func TestSlideRight(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := Slide(board, DirRight)

	if result != expected {
		t.Errorf("Slide right: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide right should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	board := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, changed := Slide(board, DirUp)

	if result != expected {
		t.Errorf("Slide up: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide up should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	board := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := Slide(board, DirDown)

	if result != expected {
		t.Errorf("Slide down: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide down should indicate board changed")
	}
}

func TestColumnUpAndDown(t *testing.T) {
	column := Grid{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	up := boardOf(t, column)
	if res := Move(up, DirUp); !res.Moved || res.ScoreGained != 4 {
		t.Errorf("Move up = %+v, want moved with score 4", res)
	}
	if got, want := up.Values(), (Grid{{4, 0, 0, 0}}); got != want {
		t.Errorf("Move up: got %v, want %v", got, want)
	}

	down := boardOf(t, column)
	if res := Move(down, DirDown); !res.Moved || res.ScoreGained != 4 {
		t.Errorf("Move down = %+v, want moved with score 4", res)
	}
	want := Grid{3: {4, 0, 0, 0}}
	if got := down.Values(); got != want {
		t.Errorf("Move down: got %v, want %v", got, want)
	}
	if !down.Tile(0, 3).Merged {
		t.Error("bottom tile should be flagged as merged")
	}
}

func TestMoveEmptyBoard(t *testing.T) {
	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			b := NewBoard(1)
			result := Move(b, dir)
			if result.Moved || result.ScoreGained != 0 || len(result.Events) != 0 {
				t.Errorf("Move(%s) on empty board = %+v, want no change", dir, result)
			}
		})
	}
}

func TestNoChangeNoMove(t *testing.T) {
	row := [Size]int{2, 4, 8, 16}
	board := Grid{row, row, row, row}
	b := boardOf(t, board)

	result := Move(b, DirLeft)

	if result.Moved {
		t.Error("Move left should not change already packed rows")
	}
	if result.ScoreGained != 0 || len(result.Events) != 0 {
		t.Errorf("unchanged move = %+v, want zero score and no events", result)
	}
	if got := b.Values(); got != board {
		t.Errorf("board changed: got %v, want %v", got, board)
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	b := boardOf(t, Grid{{0, 2, 0, 0}})

	result := Move(b, Direction(42))

	if result.Moved {
		t.Error("invalid direction should not move")
	}
	if got, want := b.Values(), (Grid{{0, 2, 0, 0}}); got != want {
		t.Errorf("board changed: got %v, want %v", got, want)
	}
}

func TestSlideOnlyEvents(t *testing.T) {
	b := boardOf(t, Grid{{0, 2, 0, 4}})

	result := Move(b, DirLeft)

	want := []MoveEvent{
		{Type: EventSlide, From: Pos{1, 0}, To: Pos{0, 0}, Value: 2},
		{Type: EventSlide, From: Pos{3, 0}, To: Pos{1, 0}, Value: 4},
	}
	if !reflect.DeepEqual(result.Events, want) {
		t.Errorf("Events = %+v, want %+v", result.Events, want)
	}
	if result.Merges() != 0 {
		t.Errorf("Merges() = %d, want 0", result.Merges())
	}
}

func TestMergeEvents(t *testing.T) {
	b := boardOf(t, Grid{{2, 2, 0, 4}})

	result := Move(b, DirLeft)

	want := []MoveEvent{
		{Type: EventMerge, From: Pos{0, 0}, To: Pos{0, 0}, Value: 4},
		{Type: EventMerge, From: Pos{1, 0}, To: Pos{0, 0}, Value: 4},
		{Type: EventSlide, From: Pos{3, 0}, To: Pos{1, 0}, Value: 4},
	}
	if !reflect.DeepEqual(result.Events, want) {
		t.Errorf("Events = %+v, want %+v", result.Events, want)
	}
}

func TestMergeGainCountedOnce(t *testing.T) {
	b := boardOf(t, Grid{{2, 2, 4, 4}, {8, 8, 0, 0}})

	result := Move(b, DirLeft)

	if result.Merges() != 3 {
		t.Errorf("Merges() = %d, want 3", result.Merges())
	}
	if result.ScoreGained != 4+8+16 {
		t.Errorf("ScoreGained = %d, want 28", result.ScoreGained)
	}

	eventSum := 0
	for _, e := range result.Events {
		if e.Type == EventMerge {
			eventSum += e.Value
		}
	}
	if eventSum != 2*result.ScoreGained {
		t.Errorf("merge event values sum to %d, want twice ScoreGained (%d)", eventSum, 2*result.ScoreGained)
	}
}

func TestEventsInBoardCoordinates(t *testing.T) {
	// A single pair in column 1, rows 1 and 2, or row 1, columns 1 and 2.
	tests := []struct {
		name  string
		board Grid
		dir   Direction
		want  []MoveEvent
	}{
		{
			name:  "right",
			board: Grid{1: {0, 2, 2, 0}},
			dir:   DirRight,
			want: []MoveEvent{
				{Type: EventMerge, From: Pos{2, 1}, To: Pos{3, 1}, Value: 4},
				{Type: EventMerge, From: Pos{1, 1}, To: Pos{3, 1}, Value: 4},
			},
		},
		{
			name:  "up",
			board: Grid{1: {0, 2, 0, 0}, 2: {0, 2, 0, 0}},
			dir:   DirUp,
			want: []MoveEvent{
				{Type: EventMerge, From: Pos{1, 1}, To: Pos{1, 0}, Value: 4},
				{Type: EventMerge, From: Pos{1, 2}, To: Pos{1, 0}, Value: 4},
			},
		},
		{
			name:  "down",
			board: Grid{1: {0, 2, 0, 0}, 2: {0, 2, 0, 0}},
			dir:   DirDown,
			want: []MoveEvent{
				{Type: EventMerge, From: Pos{1, 2}, To: Pos{1, 3}, Value: 4},
				{Type: EventMerge, From: Pos{1, 1}, To: Pos{1, 3}, Value: 4},
			},
		},
		{
			name:  "down slide",
			board: Grid{0: {8, 0, 0, 0}},
			dir:   DirDown,
			want: []MoveEvent{
				{Type: EventSlide, From: Pos{0, 0}, To: Pos{0, 3}, Value: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.board)
			result := Move(b, tt.dir)
			if !reflect.DeepEqual(result.Events, tt.want) {
				t.Errorf("Events = %+v, want %+v", result.Events, tt.want)
			}
			// Every event destination holds the event value after the move
			for _, e := range result.Events {
				if got := b.Value(e.To.X, e.To.Y); got != e.Value {
					t.Errorf("board at %+v = %d, event value %d", e.To, got, e.Value)
				}
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"U", DirUp},
		{"Down", DirDown},
		{"d", DirDown},
		{" left ", DirLeft},
		{"L", DirLeft},
		{"RIGHT", DirRight},
		{"r", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("x"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(x) error = %v, want ErrUnknownDirection", err)
	}
}

func TestParseMoves(t *testing.T) {
	got, err := ParseMoves("LLu, r D")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	want := []Direction{DirLeft, DirLeft, DirUp, DirRight, DirDown}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMoves = %v, want %v", got, want)
	}

	if _, err := ParseMoves("LLX"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseMoves(LLX) error = %v, want ErrUnknownDirection", err)
	}
}
