package main

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/gridwalk/aoc"
)

// openings lists the sides each pipe connects. The start tile's shape is
// worked out from its neighbors.
var openings = map[rune][]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
	'.': nil,
	'S': nil,
}

type pipeMaze struct {
	tiles aoc.Grid[rune]
	start aoc.Pt
}

func parsePipes(input string) (pipeMaze, error) {
	g, err := aoc.ParseGrid(input, func(_ aoc.Pt, r rune) (rune, error) {
		_, ok := openings[r]
		if !ok {
			return 0, fmt.Errorf("%w %q", aoc.ErrUnknownCell, r)
		}
		return r, nil
	})
	if err != nil {
		return pipeMaze{}, err
	}
	start, err := aoc.FindOne(g, 'S')
	if err != nil {
		return pipeMaze{}, err
	}
	m := pipeMaze{tiles: g, start: start}
	if n := len(m.opens(start)); n != 2 {
		return pipeMaze{}, fmt.Errorf("%w: start at %v connects to %d pipes, want 2", errStartShape, start, n)
	}
	return m, nil
}

var errStartShape = errors.New("ambiguous start tile")

func mustParsePipes(input string) pipeMaze {
	m, err := parsePipes(input)
	if err != nil {
		log.Fatalf("parsing pipes: %v", err)
	}
	return m
}

func (m pipeMaze) opens(p aoc.Pt) []aoc.Direction {
	if p != m.start {
		return openings[m.tiles.At(p)]
	}
	var out []aoc.Direction
	m.tiles.Neighbors(p, func(d aoc.Direction, n aoc.Pt) bool {
		if slices.Contains(openings[m.tiles.At(n)], d.Reverse()) {
			out = append(out, d)
		}
		return true
	})
	return out
}

// graph connects every pair of adjacent pipes that open into each other.
func (m pipeMaze) graph() *aoc.Graph[aoc.Pt] {
	var g aoc.Graph[aoc.Pt]
	m.tiles.All(func(p aoc.Pt, _ rune) bool {
		for _, d := range m.opens(p) {
			n := p.Step(d)
			if m.tiles.InBounds(n) && slices.Contains(m.opens(n), d.Reverse()) {
				g.AddEdge(p, n, 1)
			}
		}
		return true
	})
	return &g
}

// farthest returns the number of steps along the loop to the tile
// farthest from the start.
func (m pipeMaze) farthest(g *aoc.Graph[aoc.Pt]) int {
	paths := aoc.Dijkstra(aoc.Search[aoc.Pt]{
		Start: []aoc.Pt{m.start},
		Next:  g.Next,
		Goal:  func(aoc.Pt) bool { return false },
	})
	best := 0
	for _, d := range paths.Dist {
		best = max(best, d)
	}
	return best
}

// enclosed counts the tiles inside the loop. Scanning each row, the
// inside flips whenever a loop tile opening north is crossed.
func (m pipeMaze) enclosed(loop map[aoc.Pt]bool) int {
	n := 0
	for y, row := range m.tiles {
		inside := false
		for x := range row {
			p := aoc.Pt{X: x, Y: y}
			if !loop[p] {
				if inside {
					n++
				}
				continue
			}
			if slices.Contains(m.opens(p), aoc.Up) {
				inside = !inside
			}
		}
	}
	return n
}

// loopPath returns the loop tiles in walking order, closed by repeating
// the start.
func (m pipeMaze) loopPath(g *aoc.Graph[aoc.Pt]) []aoc.Pt {
	path := []aoc.Pt{m.start}
	prev, cur := m.start, m.start
	for {
		var next aoc.Pt
		found := false
		for n := range g.Edges[cur] {
			if n != prev {
				next, found = n, true
				break
			}
		}
		if !found {
			return path
		}
		path = append(path, next)
		if next == m.start {
			return path
		}
		prev, cur = cur, next
	}
}

/*
want=4

.....
.S-7.
.|.|.
.L-J.
.....
*/
func (s solver) D10p1() any {
	m := mustParsePipes(s.Text())
	return m.farthest(m.graph())
}

/*
want=4

..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
*/
func (s solver) D10p2() any {
	m := mustParsePipes(s.Text())
	g := m.graph()
	s.Debugf("enclosed by Pick's theorem: %d", aoc.PolygonInteriorPoints(m.loopPath(g)))
	return m.enclosed(g.ReachableNodes(m.start))
}
