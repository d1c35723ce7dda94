package main

import (
	"log"

	"github.com/gridwalk/aoc"
)

// impassable marks tiles that are not part of any trail.
const impassable = -1

func parseTopo(input string) aoc.Grid[int] {
	g, err := aoc.ParseGrid(input, func(p aoc.Pt, r rune) (int, error) {
		if r == '.' {
			return impassable, nil
		}
		return aoc.DigitCell(p, r)
	})
	if err != nil {
		log.Fatalf("parsing topographic map: %v", err)
	}
	return g
}

type topo struct {
	heights aoc.Grid[int]
}

// uphill yields the neighbors of p exactly one higher than p.
func (t topo) uphill(p aoc.Pt, yield func(aoc.Pt)) {
	h := t.heights.At(p)
	if h == impassable {
		return
	}
	t.heights.Neighbors(p, func(_ aoc.Direction, n aoc.Pt) bool {
		if t.heights.At(n) == h+1 {
			yield(n)
		}
		return true
	})
}

func (t topo) trailheads() []aoc.Pt {
	return t.heights.Find(func(h int) bool { return h == 0 })
}

func (t topo) isPeak(p aoc.Pt) bool {
	return t.heights.At(p) == 9
}

// scores sums, over every trailhead, how many distinct peaks it reaches.
func (t topo) scores() int {
	total := 0
	for _, th := range t.trailheads() {
		for p := range aoc.BFS([]aoc.Pt{th}, t.uphill) {
			if t.isPeak(p) {
				total++
			}
		}
	}
	return total
}

// ratings counts the distinct hiking trails from any trailhead to any
// peak.
func (t topo) ratings() int {
	return aoc.CountPaths(t.trailheads(), t.uphill, t.isPeak)
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	return topo{parseTopo(s.Text())}.scores()
}

/*
want=81
*/
func (s solver) D10p2() any {
	return topo{parseTopo(s.Text())}.ratings()
}
