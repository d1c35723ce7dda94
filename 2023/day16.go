package main

import (
	"log"

	"github.com/gridwalk/aoc"
)

var contraptionTiles = map[rune]rune{
	'.':  '.',
	'/':  '/',
	'\\': '\\',
	'-':  '-',
	'|':  '|',
}

func parseContraption(input string) aoc.Grid[rune] {
	g, err := aoc.ParseGrid(input, aoc.Legend(contraptionTiles))
	if err != nil {
		log.Fatalf("parsing contraption: %v", err)
	}
	return g
}

// scatter returns the directions a beam heading d leaves tile in.
func scatter(tile rune, d aoc.Direction) []aoc.Direction {
	horizontal := d == aoc.Left || d == aoc.Right
	switch tile {
	case '/':
		return []aoc.Direction{d.Turn(!horizontal)}
	case '\\':
		return []aoc.Direction{d.Turn(horizontal)}
	case '-':
		if !horizontal {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	case '|':
		if horizontal {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	}
	return []aoc.Direction{d}
}

// energized counts the tiles a beam entering at start passes through.
// Beams are tracked by tile and heading, so loops terminate.
func energized(g aoc.Grid[rune], start aoc.Path) int {
	beams := aoc.BFS([]aoc.Path{start}, func(b aoc.Path, yield func(aoc.Path)) {
		for _, d := range scatter(g.At(b.Pt), b.Dir) {
			if n, ok := g.Move(aoc.Path{Pt: b.Pt, Dir: d}); ok {
				yield(n)
			}
		}
	})
	tiles := make(map[aoc.Pt]bool)
	for b := range beams {
		tiles[b.Pt] = true
	}
	return len(tiles)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return energized(parseContraption(s.Text()), aoc.Path{Dir: aoc.Right})
}

/*
want=51
*/
func (s solver) D16p2() any {
	g := parseContraption(s.Text())
	return aoc.ParallelMapFold(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	}, func(best, n int) int {
		return max(best, n)
	}, 0)
}
