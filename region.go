package aoc

// FloodFill returns every cell 4-connected to start through cells for
// which keep returns true. start itself is included if keep accepts it.
func FloodFill[T any](g Grid[T], start Pt, keep func(p Pt, v T) bool) map[Pt]bool {
	filled := make(map[Pt]bool)
	if v, ok := g.AtOk(start); !ok || !keep(start, v) {
		return filled
	}
	filled[start] = true
	s := NewStack(start)
	s.While(func(p Pt) bool {
		g.Neighbors(p, func(_ Direction, n Pt) bool {
			if !filled[n] && keep(n, g.At(n)) {
				filled[n] = true
				s.Push(n)
			}
			return true
		})
		return true
	})
	return filled
}

// Region is a maximal 4-connected set of cells holding the same value.
type Region[T comparable] struct {
	Value T
	Cells map[Pt]bool
}

// Regions partitions g into regions, seeded in row-major order.
func Regions[T comparable](g Grid[T]) []Region[T] {
	assigned := make(map[Pt]bool)
	var out []Region[T]
	g.All(func(p Pt, v T) bool {
		if assigned[p] {
			return true
		}
		cells := FloodFill(g, p, func(_ Pt, c T) bool { return c == v })
		for c := range cells {
			assigned[c] = true
		}
		out = append(out, Region[T]{Value: v, Cells: cells})
		return true
	})
	return out
}

func (r Region[T]) Area() int {
	return len(r.Cells)
}

// Perimeter counts the cell edges between the region and anything else,
// including the grid border.
func (r Region[T]) Perimeter() int {
	n := 0
	for p := range r.Cells {
		for _, d := range Directions {
			if !r.Cells[p.Step(d)] {
				n++
			}
		}
	}
	return n
}

// Sides counts the straight fence runs around the region. A polygon has
// as many sides as corners, so this counts convex and concave corners.
func (r Region[T]) Sides() int {
	n := 0
	for p := range r.Cells {
		for _, d := range Directions {
			d2 := d.Turn(true)
			a, b := r.Cells[p.Step(d)], r.Cells[p.Step(d2)]
			diag := r.Cells[p.Step(d).Step(d2)]
			if !a && !b {
				n++
			} else if a && b && !diag {
				n++
			}
		}
	}
	return n
}
