package aoc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

const heatSample = `2413432311323
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
4322674655533`

type crucible struct {
	Path
	streak int
}

// heatSearch routes a crucible from the top-left to the bottom-right
// corner, going straight between minRun and maxRun blocks at a time.
func heatSearch(g Grid[int], minRun, maxRun int) Search[crucible] {
	size := g.Size()
	end := Pt{size.X - 1, size.Y - 1}
	return Search[crucible]{
		Start: []crucible{
			{Path: Path{Dir: Right}},
			{Path: Path{Dir: Down}},
		},
		Next: func(c crucible, yield func(crucible, int)) {
			for _, d := range []Direction{c.Dir, c.Dir.Turn(true), c.Dir.Turn(false)} {
				n := crucible{Path: Path{Pt: c.Pt.Step(d), Dir: d}, streak: 1}
				if d == c.Dir {
					if c.streak >= maxRun {
						continue
					}
					n.streak = c.streak + 1
				} else if c.streak < minRun {
					continue
				}
				if heat, ok := g.AtOk(n.Pt); ok {
					yield(n, heat)
				}
			}
		},
		Goal: func(c crucible) bool {
			return c.Pt == end && c.streak >= minRun
		},
	}
}

func mustDigits(t *testing.T, s string) Grid[int] {
	t.Helper()
	g, err := ParseGrid(s, DigitCell)
	require.NoError(t, err)
	return g
}

// transitionCost returns the cost of moving from a to b, or -1.
func transitionCost[S comparable](s Search[S], a, b S) int {
	cost := -1
	s.Next(a, func(n S, w int) {
		if n == b && (cost == -1 || w < cost) {
			cost = w
		}
	})
	return cost
}

func TestDijkstraHeatLoss(t *testing.T) {
	tests := []struct {
		name           string
		grid           string
		minRun, maxRun int
		want           int
	}{
		{"crucible", heatSample, 0, 3, 102},
		{"ultra", heatSample, 4, 10, 94},
		{"ultra-long-row", "111111111111\n999999999991\n999999999991\n999999999991\n999999999991", 4, 10, 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Dijkstra(heatSearch(mustDigits(t, tt.grid), tt.minRun, tt.maxRun))
			require.True(t, p.Found)
			require.Equal(t, tt.want, p.Cost)
			require.Equal(t, tt.want, p.MustCost())
		})
	}
}

func TestDijkstraMonotonicRelax(t *testing.T) {
	s := heatSearch(mustDigits(t, heatSample), 0, 3)
	last := map[crucible]int{}
	s.OnRelax = func(c crucible, old, new int) {
		prev, seen := last[c]
		if !seen {
			require.Equal(t, -1, old, "first relax of %v", c)
		} else {
			require.Equal(t, prev, old)
			require.Less(t, new, old, "distance of %v went up", c)
		}
		last[c] = new
	}
	p := Dijkstra(s)
	for c, d := range p.Dist {
		require.Equal(t, last[c], d)
	}
}

func TestDijkstraPredecessorConsistency(t *testing.T) {
	s := heatSearch(mustDigits(t, heatSample), 0, 3)
	p := Dijkstra(s)
	for c, d := range p.Dist {
		if d == 0 {
			continue
		}
		require.NotEmpty(t, p.Prev[c], "state %v at %d has no predecessor", c, d)
		for _, prev := range p.Prev[c] {
			w := transitionCost(s, prev, c)
			require.GreaterOrEqual(t, w, 0)
			require.Equal(t, d, p.Dist[prev]+w, "%v -> %v", prev, c)
		}
	}
}

func TestPathsReplay(t *testing.T) {
	for _, run := range [][2]int{{0, 3}, {4, 10}} {
		s := heatSearch(mustDigits(t, heatSample), run[0], run[1])
		p := Dijkstra(s)
		require.NotEmpty(t, p.Goals)
		for _, g := range p.Goals {
			path := p.Path(g)
			require.NotEmpty(t, path)
			require.Equal(t, 0, p.Dist[path[0]], "path must begin at a start")
			total := 0
			for i := 1; i < len(path); i++ {
				w := transitionCost(s, path[i-1], path[i])
				require.GreaterOrEqual(t, w, 0, "illegal step %v -> %v", path[i-1], path[i])
				total += w
			}
			require.Equal(t, p.Cost, total)
		}
	}
}

func TestMembersSound(t *testing.T) {
	s := heatSearch(mustDigits(t, heatSample), 0, 3)
	p := Dijkstra(s)
	members := p.States()
	goals := map[crucible]bool{}
	for _, g := range p.Goals {
		goals[g] = true
		require.Equal(t, p.Cost, p.Dist[g])
	}
	for m := range members {
		require.LessOrEqual(t, p.Dist[m], p.Cost)
		if goals[m] {
			continue
		}
		// Every non-goal member must feed an optimal step into another
		// member.
		feeds := false
		for n := range members {
			for _, prev := range p.Prev[n] {
				if prev == m {
					feeds = true
				}
			}
		}
		require.True(t, feeds, "%v is not on an optimal path", m)
	}
	cells := Members(p, func(c crucible) Pt { return c.Pt })
	require.True(t, cells[Pt{0, 0}])
	require.True(t, cells[Pt{12, 12}])
}

func TestMembersRepeatable(t *testing.T) {
	p := Dijkstra(heatSearch(mustDigits(t, heatSample), 0, 3))
	goals := slices.Clone(p.Goals)
	cell := func(c crucible) Pt { return c.Pt }

	first := Members(p, cell)
	require.Equal(t, goals, p.Goals)
	second := Members(p, cell)
	require.Equal(t, goals, p.Goals)
	require.Equal(t, first, second)
	require.Equal(t, p.States(), p.States())
	for _, g := range p.Goals {
		require.Equal(t, p.Cost, p.Dist[g])
	}
}

func unitSearch(g Grid[rune], start, end Pt) Search[Pt] {
	return Search[Pt]{
		Start: []Pt{start},
		Next: func(p Pt, yield func(Pt, int)) {
			g.Neighbors(p, func(_ Direction, n Pt) bool {
				if g.At(n) != '#' {
					yield(n, 1)
				}
				return true
			})
		},
		Goal: func(p Pt) bool { return p == end },
	}
}

func TestDijkstraSingleCell(t *testing.T) {
	g := Grid[rune]{{'.'}}
	p := Dijkstra(unitSearch(g, Pt{}, Pt{}))
	require.True(t, p.Found)
	require.Equal(t, 0, p.Cost)
	require.Equal(t, map[Pt]bool{{}: true}, Members(p, func(p Pt) Pt { return p }))
	require.Equal(t, []Pt{{}}, p.Path(Pt{}))
}

func TestDijkstraTiedPaths(t *testing.T) {
	g := Grid[rune]{
		{'.', '.'},
		{'.', '.'},
	}
	p := Dijkstra(unitSearch(g, Pt{0, 0}, Pt{1, 1}))
	require.Equal(t, 2, p.Cost)
	require.ElementsMatch(t, []Pt{{1, 0}, {0, 1}}, p.Prev[Pt{1, 1}])
	require.Len(t, Members(p, func(p Pt) Pt { return p }), 4)
}

func TestDijkstraNoPath(t *testing.T) {
	g := Grid[rune]{
		{'.', '#', '.'},
	}
	p := Dijkstra(unitSearch(g, Pt{0, 0}, Pt{2, 0}))
	require.False(t, p.Found)
	require.Empty(t, p.States())
	require.Nil(t, p.Path(Pt{2, 0}))
	require.Panics(t, func() { p.MustCost() })
}

func TestDijkstraNegativeCost(t *testing.T) {
	s := Search[int]{
		Start: []int{0},
		Next:  func(n int, yield func(int, int)) { yield(n+1, -1) },
		Goal:  func(n int) bool { return n == 3 },
	}
	require.Panics(t, func() { Dijkstra(s) })
}

func TestBFS(t *testing.T) {
	g := Grid[rune]{
		[]rune("..#"),
		[]rune(".##"),
		[]rune("..."),
	}
	dist := BFS([]Pt{{0, 0}}, func(p Pt, yield func(Pt)) {
		g.Neighbors(p, func(_ Direction, n Pt) bool {
			if g.At(n) != '#' {
				yield(n)
			}
			return true
		})
	})
	require.Equal(t, map[Pt]int{
		{0, 0}: 0, {1, 0}: 1, {0, 1}: 1,
		{0, 2}: 2, {1, 2}: 3, {2, 2}: 4,
	}, dist)
}

func TestCountPaths(t *testing.T) {
	g := MakeGrid[int](3, 3)
	end := Pt{2, 2}
	next := func(p Pt, yield func(Pt)) {
		for _, d := range []Direction{Right, Down} {
			if n := p.Step(d); g.InBounds(n) {
				yield(n)
			}
		}
	}
	isEnd := func(p Pt) bool { return p == end }
	require.Equal(t, 6, CountPaths([]Pt{{0, 0}}, next, isEnd))
	require.Equal(t, 6+3, CountPaths([]Pt{{0, 0}, {1, 0}}, next, isEnd))
	require.Equal(t, 1, CountPaths([]Pt{end}, next, isEnd))
}
