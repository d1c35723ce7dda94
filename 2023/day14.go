package main

import (
	"log"

	"github.com/gridwalk/aoc"
)

const (
	roundRock = 'O'
	cubeRock  = '#'
	emptyTile = '.'
)

func parsePlatform(input string) aoc.Grid[rune] {
	g, err := aoc.ParseGrid(input, aoc.Legend(map[rune]rune{
		roundRock: roundRock,
		cubeRock:  cubeRock,
		emptyTile: emptyTile,
	}))
	if err != nil {
		log.Fatalf("parsing platform: %v", err)
	}
	return g
}

// tiltNorth rolls every round rock as far north as it goes, in place.
func tiltNorth(g aoc.Grid[rune]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case cubeRock:
				free = y + 1
			case roundRock:
				g[y][x] = emptyTile
				g[free][x] = roundRock
				free++
			}
		}
	}
}

// spin tilts the platform north, west, south and east in turn. Each tilt
// is a north tilt followed by a clockwise turn, which brings the next
// edge to the top. g is left untouched.
func spin(g aoc.Grid[rune]) aoc.Grid[rune] {
	g = g.Clone()
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

// northLoad sums, for every round rock, its distance from the south edge
// counting its own row.
func northLoad(g aoc.Grid[rune]) int {
	h := g.Size().Y
	var loads []int
	for _, p := range g.Find(func(r rune) bool { return r == roundRock }) {
		loads = append(loads, h-p.Y)
	}
	return aoc.Sum(loads...)
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := parsePlatform(s.Text())
	tiltNorth(g)
	s.Debugf("%s", g.Format(func(r rune) rune { return r }))
	return northLoad(g)
}

/*
want=64
*/
func (s solver) D14p2() any {
	g := aoc.Simulate(parsePlatform(s.Text()), 1_000_000_000, spin)
	return northLoad(g)
}
