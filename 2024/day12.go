package main

import (
	"log"

	"github.com/gridwalk/aoc"
)

func parseGarden(input string) []aoc.Region[rune] {
	g, err := aoc.ParseGrid(input, aoc.RuneCell)
	if err != nil {
		log.Fatalf("parsing garden: %v", err)
	}
	return aoc.Regions(g)
}

// fencePrice sums area times perimeter over every region, or area times
// the number of sides when bulk is set.
func fencePrice(regions []aoc.Region[rune], bulk bool) int {
	total := 0
	for _, r := range regions {
		if bulk {
			total += r.Area() * r.Sides()
		} else {
			total += r.Area() * r.Perimeter()
		}
	}
	return total
}

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (s solver) D12p1() any {
	return fencePrice(parseGarden(s.Text()), false)
}

/*
want=1206
*/
func (s solver) D12p2() any {
	return fencePrice(parseGarden(s.Text()), true)
}
