package aoc

import "tailscale.com/util/deephash"

// Simulate applies step to g n times and returns the final grid. It
// remembers the full-content hash of every grid it has seen; once one
// repeats, the remaining iterations are reduced modulo the period.
func Simulate[T any](g Grid[T], n int, step func(Grid[T]) Grid[T]) Grid[T] {
	seen := make(map[deephash.Sum]int)
	for i := 0; i < n; i++ {
		h := g.Hash()
		if prev, ok := seen[h]; ok {
			rest := (n - i) % (i - prev)
			for j := 0; j < rest; j++ {
				g = step(g)
			}
			return g
		}
		seen[h] = i
		g = step(g)
	}
	return g
}
