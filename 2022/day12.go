package main

import (
	"fmt"
	"log"

	"github.com/gridwalk/aoc"
)

type heightmap struct {
	height     aoc.Grid[int]
	start, end aoc.Pt
}

// parseHeightmap reads elevations a-z as 0-25. S is the start at
// elevation a and E the best signal at elevation z.
func parseHeightmap(input string) (heightmap, error) {
	var h heightmap
	var starts, ends int
	g, err := aoc.ParseGrid(input, func(p aoc.Pt, r rune) (int, error) {
		switch {
		case r == 'S':
			h.start = p
			starts++
			return 0, nil
		case r == 'E':
			h.end = p
			ends++
			return 'z' - 'a', nil
		case r >= 'a' && r <= 'z':
			return int(r - 'a'), nil
		}
		return 0, fmt.Errorf("%w %q", aoc.ErrUnknownCell, r)
	})
	if err != nil {
		return heightmap{}, err
	}
	if starts != 1 || ends != 1 {
		return heightmap{}, fmt.Errorf("%w S and E, found %d and %d", aoc.ErrMarker, starts, ends)
	}
	h.height = g
	return h, nil
}

// descend searches backward from the best signal. Walking the climb rule
// in reverse, a step from p to n is allowed when climbing from n to p
// rises at most one.
func (h heightmap) descend(goal func(aoc.Pt) bool) *aoc.Paths[aoc.Pt] {
	return aoc.Dijkstra(aoc.Search[aoc.Pt]{
		Start: []aoc.Pt{h.end},
		Next: func(p aoc.Pt, yield func(aoc.Pt, int)) {
			h.height.Neighbors(p, func(_ aoc.Direction, n aoc.Pt) bool {
				if h.height.At(p) <= h.height.At(n)+1 {
					yield(n, 1)
				}
				return true
			})
		},
		Goal: goal,
	})
}

// fewestSteps returns the shortest climb from the start to the best
// signal.
func (h heightmap) fewestSteps() int {
	return h.descend(func(p aoc.Pt) bool { return p == h.start }).MustCost()
}

// bestTrail returns the shortest climb from any lowest square.
func (h heightmap) bestTrail() int {
	return h.descend(func(p aoc.Pt) bool { return h.height.At(p) == 0 }).MustCost()
}

func mustParseHeightmap(input string) heightmap {
	h, err := parseHeightmap(input)
	if err != nil {
		log.Fatalf("parsing heightmap: %v", err)
	}
	return h
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	return mustParseHeightmap(s.Text()).fewestSteps()
}

/*
want=29
*/
func (s solver) D12p2() any {
	return mustParseHeightmap(s.Text()).bestTrail()
}
