package aoc

import "slices"

// Search describes a best-first search over states of type S. A state
// must carry every field that changes which moves are legal (facing,
// streak length, ...); states that compare equal are merged.
type Search[S comparable] struct {
	// Start lists the initial states, each at cost 0.
	Start []S
	// Next calls yield for each legal transition out of s along with its
	// non-negative cost. Illegal moves are simply not yielded.
	Next func(s S, yield func(next S, cost int))
	// Goal reports whether s ends a path. Goal states are not expanded.
	Goal func(s S) bool
	// OnRelax, if non-nil, is called whenever the best known cost of s is
	// lowered. old is -1 the first time s is reached.
	OnRelax func(s S, old, new int)
}

// Paths holds the result of Dijkstra: the best cost to every settled
// state and, for each, all predecessors that reach it at that cost.
type Paths[S comparable] struct {
	Dist map[S]int
	Prev map[S][]S

	// Goals are the goal states reached at Cost, in the order they were
	// settled.
	Goals []S
	Cost  int
	Found bool

	start map[S]bool
}

// Dijkstra runs a lazy-deletion Dijkstra over s. Unlike a single-path
// search it keeps every equal-cost predecessor and keeps popping after
// the first goal until the frontier is costlier than it, so that Goals
// holds every goal state tied for the minimum.
func Dijkstra[S comparable](s Search[S]) *Paths[S] {
	p := &Paths[S]{
		Dist:  make(map[S]int),
		Prev:  make(map[S][]S),
		start: make(map[S]bool),
	}
	q := MinQueue[S]()
	for _, st := range s.Start {
		if _, ok := p.Dist[st]; ok {
			continue
		}
		p.Dist[st] = 0
		p.start[st] = true
		if s.OnRelax != nil {
			s.OnRelax(st, -1, 0)
		}
		q.PushValue(st, 0)
	}

	for q.Len() > 0 {
		it := q.Pop()
		cur, cost := it.V, it.P
		if p.Found && cost > p.Cost {
			break
		}
		if cost > p.Dist[cur] {
			continue // stale
		}
		if s.Goal(cur) {
			if !p.Found {
				p.Found = true
				p.Cost = cost
			}
			p.Goals = append(p.Goals, cur)
			continue
		}
		s.Next(cur, func(n S, w int) {
			if w < 0 {
				panic("aoc: negative transition cost")
			}
			nc := cost + w
			old, seen := p.Dist[n]
			switch {
			case !seen || nc < old:
				if !seen {
					old = -1
				}
				p.Dist[n] = nc
				p.Prev[n] = []S{cur}
				if s.OnRelax != nil {
					s.OnRelax(n, old, nc)
				}
				q.PushValue(n, nc)
			case nc == old:
				if !slices.Contains(p.Prev[n], cur) {
					p.Prev[n] = append(p.Prev[n], cur)
				}
			}
		})
	}
	return p
}

// MustCost returns the minimum goal cost. It panics if no goal was
// reached, which for a well-formed puzzle means a modelling bug.
func (p *Paths[S]) MustCost() int {
	if !p.Found {
		panic("aoc: no path to any goal")
	}
	return p.Cost
}

// BFS returns the number of steps from the nearest start to every state
// reachable through next.
func BFS[S comparable](starts []S, next func(s S, yield func(S))) map[S]int {
	dist := make(map[S]int, len(starts))
	q := NewQueue[S]()
	for _, s := range starts {
		if _, ok := dist[s]; !ok {
			dist[s] = 0
			q.Push(s)
		}
	}
	q.While(func(s S) bool {
		d := dist[s]
		next(s, func(n S) {
			if _, ok := dist[n]; ok {
				return
			}
			dist[n] = d + 1
			q.Push(n)
		})
		return true
	})
	return dist
}

// CountPaths returns the number of distinct paths from any of starts to
// a state for which isEnd is true. The transitions must form a DAG; an
// end state terminates its path.
func CountPaths[S comparable](starts []S, next func(s S, yield func(S)), isEnd func(S) bool) int {
	memo := make(map[S]int)
	var count func(S) int
	count = func(s S) int {
		if isEnd(s) {
			return 1
		}
		if v, ok := memo[s]; ok {
			return v
		}
		n := 0
		next(s, func(t S) {
			n += count(t)
		})
		memo[s] = n
		return n
	}
	total := 0
	for _, s := range starts {
		total += count(s)
	}
	return total
}
