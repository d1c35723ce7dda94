package aoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("aoc: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("aoc: all grid rows must have the same length")
	// ErrUnknownCell indicates a rune the cell legend does not recognize.
	ErrUnknownCell = errors.New("aoc: unknown grid cell")
	// ErrMarker indicates a marker cell that is missing or repeated.
	ErrMarker = errors.New("aoc: want exactly one marker")
)

// Lines splits input into lines, dropping surrounding blank space and
// carriage returns.
func Lines(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// ParseGrid parses a rectangular block of text. cell maps each rune to a
// grid value and may record markers by position; it returns an error for
// runes it does not accept.
func ParseGrid[T any](input string, cell func(p Pt, r rune) (T, error)) (Grid[T], error) {
	lines := Lines(input)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := make(Grid[T], len(lines))
	w := -1
	for y, line := range lines {
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			v, err := cell(Pt{x, y}, r)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d: %w", y+1, x+1, err)
			}
			row = append(row, v)
			x++
		}
		if w == -1 {
			w = len(row)
		} else if len(row) != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		g[y] = row
	}
	return g, nil
}

// Legend returns a cell function that accepts only the runes in m.
func Legend[T any](m map[rune]T) func(Pt, rune) (T, error) {
	return func(_ Pt, r rune) (T, error) {
		v, ok := m[r]
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w %q", ErrUnknownCell, r)
		}
		return v, nil
	}
}

// RuneCell keeps every rune as is.
func RuneCell(_ Pt, r rune) (rune, error) {
	return r, nil
}

// DigitCell accepts the digits 0-9.
func DigitCell(_ Pt, r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w %q: not a digit", ErrUnknownCell, r)
	}
	return int(r - '0'), nil
}

// FindOne returns the only point holding v.
func FindOne[T comparable](g Grid[T], v T) (Pt, error) {
	pts := g.Find(func(c T) bool { return c == v })
	if len(pts) != 1 {
		return Pt{}, fmt.Errorf("%w %v, found %d", ErrMarker, v, len(pts))
	}
	return pts[0], nil
}
