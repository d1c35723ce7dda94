package aoc

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular 2D array indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is like At but reports false instead of panicking when p is
// outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Size returns the width and height of the grid as a Pt.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// All calls f for every cell in row-major order until f returns false.
func (g Grid[T]) All(f func(p Pt, v T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

// Find returns the points of all cells for which match returns true, in
// row-major order.
func (g Grid[T]) Find(match func(T) bool) []Pt {
	var out []Pt
	g.All(func(p Pt, v T) bool {
		if match(v) {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Neighbors calls f with each in-bounds orthogonal neighbor of p and the
// direction leading to it.
func (g Grid[T]) Neighbors(p Pt, f func(d Direction, n Pt) (keepGoing bool)) {
	for _, d := range Directions {
		n := p.Step(d)
		if !g.InBounds(n) {
			continue
		}
		if !f(d, n) {
			return
		}
	}
}

// Format renders the grid one row per line using cell to draw each value.
func (g Grid[T]) Format(cell func(T) rune) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteRune(cell(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a digest of the full grid contents. Two grids with equal
// cells have equal hashes.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// RotateClockwiseInto writes g rotated a quarter turn clockwise into out,
// which must be sized height×width.
func (g Grid[T]) RotateClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateClockwiseInto(out)
	return out
}

// EdgePaths returns every path entering the grid from its border, facing
// inward.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Forward returns p advanced one step in its direction.
func (p Path) Forward() Path {
	p.Pt = p.Pt.Step(p.Dir)
	return p
}

// Turn returns p turned a quarter to the right or left without moving.
func (p Path) Turn(right bool) Path {
	p.Dir = p.Dir.Turn(right)
	return p
}

// Move advances p one step, reporting false if it leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p = p.Forward()
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions in clockwise order from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Offset returns the unit step for d; Up decreases Y.
func (d Direction) Offset() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the neighbor of p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	o := d.Offset()
	return Pt2[T]{p.X + T(o.X), p.Y + T(o.Y)}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
