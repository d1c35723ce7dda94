package main

import (
	"testing"

	"github.com/gridwalk/aoc"
	"github.com/stretchr/testify/require"
)

const (
	smallMaze = `###############
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
###############`

	largeMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`
)

func TestReindeerMaze(t *testing.T) {
	tests := []struct {
		name  string
		maze  string
		cost  int
		seats int
	}{
		{"small", smallMaze, 7036, 45},
		{"large", largeMaze, 11048, 64},
		{"straight", "#####\n#S.E#\n#####", 2, 3},
		{"turn", "####\n#.E#\n#S.#\n####", 1002, 3},
		{"about-face", "#####\n#E.S#\n#####", 2002, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := parseMaze(tt.maze)
			require.NoError(t, err)
			paths := m.race()
			require.Equal(t, tt.cost, paths.MustCost())

			seats := bestSeats(paths)
			require.Len(t, seats, tt.seats)
			require.Equal(t, seats, bestSeats(paths), "extracting seats twice")
			require.True(t, seats[m.start])
			require.True(t, seats[m.end])
			for p := range seats {
				require.False(t, m.walls.At(p), "seat %v is a wall", p)
			}
		})
	}
}

func TestReindeerMazeSingleTile(t *testing.T) {
	m := maze{walls: aoc.Grid[bool]{{false}}}
	paths := m.race()
	require.Equal(t, 0, paths.MustCost())
	require.Equal(t, map[aoc.Pt]bool{{}: true}, bestSeats(paths))
}

func TestParseMazeErrors(t *testing.T) {
	_, err := parseMaze("#S#\n#.#")
	require.ErrorIs(t, err, aoc.ErrMarker)

	_, err = parseMaze("#S#\n#E#\n#S#")
	require.ErrorIs(t, err, aoc.ErrMarker)

	_, err = parseMaze("#S?E#")
	require.ErrorIs(t, err, aoc.ErrUnknownCell)

	_, err = parseMaze("#S.E#\n##")
	require.ErrorIs(t, err, aoc.ErrNonRectangular)
}

const topoMap = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

func TestTrails(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		score   int
		ratings int
	}{
		{"sample", topoMap, 36, 81},
		{"fork", "...0...\n...1...\n...2...\n6543456\n7.....7\n8.....8\n9.....9", 2, 2},
		{"two-peaks-many-trails", "..90..9\n...1.98\n...2..7\n6543456\n765.987\n876....\n987....", 4, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := topo{parseTopo(tt.input)}
			require.Equal(t, tt.score, m.scores())
			require.Equal(t, tt.ratings, m.ratings())
		})
	}
}

func TestFencePrice(t *testing.T) {
	tests := []struct {
		name        string
		garden      string
		price, bulk int
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC", 140, 80},
		{"holes", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO", 772, 436},
		{"large", "RRRRIICCFF\nRRRRIICCCF\nVVRRRCCFFF\nVVRCCCJFFF\nVVVVCJJCFE\nVVIVCCJJEE\nVVIIICJJEE\nMIIIIIJJEE\nMIIISIJEEE\nMMMISSJEEE", 1930, 1206},
		{"e-shape", "EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE", 0, 236},
		{"mobius", "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA", 0, 368},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := parseGarden(tt.garden)
			if tt.price != 0 {
				require.Equal(t, tt.price, fencePrice(regions, false))
			}
			require.Equal(t, tt.bulk, fencePrice(regions, true))
		})
	}
}

const labMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

func TestGuardPatrol(t *testing.T) {
	l := parseLab(labMap)
	require.Equal(t, aoc.Path{Pt: aoc.Pt{X: 4, Y: 6}, Dir: aoc.Up}, l.guard)

	route, loops := l.patrol(noObstacle)
	require.False(t, loops)
	require.Len(t, route, 41)

	_, loops = l.patrol(aoc.Pt{X: 3, Y: 6})
	require.True(t, loops)

	require.Equal(t, 6, l.loopingObstructions())
}
