package aoc

// States returns every state lying on at least one optimal path to a
// goal, walking the predecessor sets backward from all tied goals.
func (p *Paths[S]) States() map[S]bool {
	seen := make(map[S]bool)
	work := NewStack(p.Goals...)
	work.While(func(s S) bool {
		if seen[s] {
			return true
		}
		seen[s] = true
		for _, prev := range p.Prev[s] {
			if !seen[prev] {
				work.Push(prev)
			}
		}
		return true
	})
	return seen
}

// Members projects the states on optimal paths through key, for example
// to collect the grid cells they touch. The backward walk is keyed on the
// full state; only the result is collapsed.
func Members[S, K comparable](p *Paths[S], key func(S) K) map[K]bool {
	out := make(map[K]bool)
	for s := range p.States() {
		out[key(s)] = true
	}
	return out
}

// Path returns one optimal path ending at goal, start state first. It
// returns nil if goal was never reached.
func (p *Paths[S]) Path(goal S) []S {
	if _, ok := p.Dist[goal]; !ok {
		return nil
	}
	var rev []S
	for s := goal; ; {
		rev = append(rev, s)
		prev := p.Prev[s]
		if p.start[s] || len(prev) == 0 {
			break
		}
		// The first predecessor was settled before s, so following it
		// always makes progress toward a start.
		s = prev[0]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
