package main

import (
	"log"

	"github.com/gridwalk/aoc"
)

// crucible is a search state: where the crucible is, which way it is
// heading and how many blocks it has gone straight.
type crucible struct {
	aoc.Path
	streak int
}

func parseCity(input string) aoc.Grid[int] {
	g, err := aoc.ParseGrid(input, aoc.DigitCell)
	if err != nil {
		log.Fatalf("parsing city: %v", err)
	}
	return g
}

// minHeatLoss returns the least heat lost moving a crucible from the
// top-left block to the bottom-right one. It must move at least minRun
// blocks before turning or stopping, and may not move more than maxRun
// blocks in a straight line. It never reverses.
func minHeatLoss(city aoc.Grid[int], minRun, maxRun int) int {
	size := city.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	paths := aoc.Dijkstra(aoc.Search[crucible]{
		Start: []crucible{
			{Path: aoc.Path{Dir: aoc.Right}},
			{Path: aoc.Path{Dir: aoc.Down}},
		},
		Next: func(c crucible, yield func(crucible, int)) {
			for _, d := range []aoc.Direction{c.Dir, c.Dir.Turn(true), c.Dir.Turn(false)} {
				n := crucible{Path: aoc.Path{Pt: c.Pt.Step(d), Dir: d}, streak: 1}
				if d == c.Dir {
					if c.streak >= maxRun {
						continue
					}
					n.streak = c.streak + 1
				} else if c.streak < minRun {
					continue
				}
				heat, ok := city.AtOk(n.Pt)
				if !ok {
					continue
				}
				yield(n, heat)
			}
		},
		Goal: func(c crucible) bool {
			return c.Pt == end && c.streak >= minRun
		},
	})
	return paths.MustCost()
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return minHeatLoss(parseCity(s.Text()), 0, 3)
}

/*
want=94
*/
func (s solver) D17p2() any {
	return minHeatLoss(parseCity(s.Text()), 4, 10)
}
