package main

import (
	"fmt"
	"log"

	"github.com/gridwalk/aoc"
)

const (
	stepCost = 1
	turnCost = 1000
)

type maze struct {
	walls      aoc.Grid[bool]
	start, end aoc.Pt
}

func parseMaze(input string) (maze, error) {
	var m maze
	var starts, ends int
	walls, err := aoc.ParseGrid(input, func(p aoc.Pt, r rune) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.':
		case 'S':
			m.start = p
			starts++
		case 'E':
			m.end = p
			ends++
		default:
			return false, fmt.Errorf("%w %q", aoc.ErrUnknownCell, r)
		}
		return false, nil
	})
	if err != nil {
		return maze{}, err
	}
	if starts != 1 || ends != 1 {
		return maze{}, fmt.Errorf("%w S and E, found %d and %d", aoc.ErrMarker, starts, ends)
	}
	m.walls = walls
	return m, nil
}

func mustParseMaze(input string) maze {
	m, err := parseMaze(input)
	if err != nil {
		log.Fatalf("parsing maze: %v", err)
	}
	return m
}

// race searches for the cheapest routes from the start, facing east, to
// the end tile in any facing. Moving forward costs one point and turning
// in place costs a thousand.
func (m maze) race() *aoc.Paths[aoc.Path] {
	return aoc.Dijkstra(aoc.Search[aoc.Path]{
		Start: []aoc.Path{{Pt: m.start, Dir: aoc.Right}},
		Next: func(p aoc.Path, yield func(aoc.Path, int)) {
			f := p.Forward()
			if wall, ok := m.walls.AtOk(f.Pt); ok && !wall {
				yield(f, stepCost)
			}
			yield(p.Turn(true), turnCost)
			yield(p.Turn(false), turnCost)
		},
		Goal: func(p aoc.Path) bool { return p.Pt == m.end },
	})
}

// bestSeats returns the tiles on any of the cheapest routes.
func bestSeats(p *aoc.Paths[aoc.Path]) map[aoc.Pt]bool {
	return aoc.Members(p, func(s aoc.Path) aoc.Pt { return s.Pt })
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	return mustParseMaze(s.Text()).race().MustCost()
}

/*
want=45
*/
func (s solver) D16p2() any {
	m := mustParseMaze(s.Text())
	paths := m.race()
	seats := bestSeats(paths)
	size := m.walls.Size()
	view := aoc.MakeGrid[rune](size.X, size.Y)
	m.walls.All(func(p aoc.Pt, wall bool) bool {
		switch {
		case wall:
			view.Set(p, '#')
		case seats[p]:
			view.Set(p, 'O')
		default:
			view.Set(p, '.')
		}
		return true
	})
	s.Debugf("%s", view.Format(func(r rune) rune { return r }))
	return len(seats)
}
