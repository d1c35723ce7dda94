package main

import (
	"fmt"
	"log"

	"github.com/gridwalk/aoc"
	"golang.org/x/exp/maps"
)

var guardFacings = map[rune]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

type lab struct {
	walls aoc.Grid[bool]
	guard aoc.Path
}

func parseLab(input string) lab {
	var l lab
	guards := 0
	walls, err := aoc.ParseGrid(input, func(p aoc.Pt, r rune) (bool, error) {
		if d, ok := guardFacings[r]; ok {
			l.guard = aoc.Path{Pt: p, Dir: d}
			guards++
			return false, nil
		}
		switch r {
		case '#':
			return true, nil
		case '.':
			return false, nil
		}
		return false, fmt.Errorf("%w %q", aoc.ErrUnknownCell, r)
	})
	if err == nil && guards != 1 {
		err = fmt.Errorf("%w guard, found %d", aoc.ErrMarker, guards)
	}
	if err != nil {
		log.Fatalf("parsing lab: %v", err)
	}
	l.walls = walls
	return l
}

// patrol walks the guard forward, turning right at obstructions, until
// it leaves the lab or repeats a position and facing. extra is treated
// as one more obstruction. It returns the tiles visited and whether the
// guard got stuck in a loop.
func (l lab) patrol(extra aoc.Pt) (visited map[aoc.Pt]bool, loops bool) {
	visited = make(map[aoc.Pt]bool)
	seen := make(map[aoc.Path]bool)
	g := l.guard
	for !seen[g] {
		seen[g] = true
		visited[g.Pt] = true
		n, ok := l.walls.Move(g)
		if !ok {
			return visited, false
		}
		if l.walls.At(n.Pt) || n.Pt == extra {
			g = g.Turn(true)
			continue
		}
		g = n
	}
	return visited, true
}

// noObstacle is never in bounds.
var noObstacle = aoc.Pt{X: -1, Y: -1}

// loopingObstructions counts the tiles where one new obstruction traps
// the guard in a loop. Only tiles on the unobstructed route can matter, and
// the guard's own tile is excluded.
func (l lab) loopingObstructions() int {
	route, _ := l.patrol(noObstacle)
	delete(route, l.guard.Pt)
	return aoc.ParallelMapFold(maps.Keys(route), func(p aoc.Pt) bool {
		_, loops := l.patrol(p)
		return loops
	}, func(n int, loops bool) int {
		if loops {
			n++
		}
		return n
	}, 0)
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (s solver) D6p1() any {
	route, _ := parseLab(s.Text()).patrol(noObstacle)
	return len(route)
}

/*
want=6
*/
func (s solver) D6p2() any {
	return parseLab(s.Text()).loopingObstructions()
}
