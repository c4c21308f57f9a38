package cca

import "fmt"

// Verify checks the structural invariants: cluster ids are dense, every
// cluster list visits exactly mass particles whose cells map back to it,
// every particle belongs to one cluster, masses sum to the particle count
// and exactly that many cells are occupied.
func (e *Engine) Verify() error {
	if e.clusters < 1 || e.clusters > e.n {
		return fmt.Errorf("%w: %d live clusters for %d particles", ErrInvariant, e.clusters, e.n)
	}
	if occ := e.site.Occupied(); occ != e.n {
		return fmt.Errorf("%w: %d occupied cells for %d particles", ErrInvariant, occ, e.n)
	}

	owner := make([]int, e.n)
	for i := range owner {
		owner[i] = none
	}
	total := 0
	for c := 0; c < e.clusters; c++ {
		if e.mass[c] < 1 {
			return fmt.Errorf("%w: cluster %d has mass %d", ErrInvariant, c, e.mass[c])
		}
		total += e.mass[c]
		count := 0
		tail := none
		for p := e.first[c]; p != none; p = e.next[p] {
			if owner[p] != none {
				return fmt.Errorf("%w: particle %d listed by clusters %d and %d", ErrInvariant, p, owner[p], c)
			}
			owner[p] = c
			if got := e.Occupant(e.x[p], e.y[p]); got != c {
				return fmt.Errorf("%w: particle %d of cluster %d sits on cell labelled %d", ErrInvariant, p, c, got)
			}
			count++
			tail = p
		}
		if count != e.mass[c] {
			return fmt.Errorf("%w: cluster %d lists %d particles, mass %d", ErrInvariant, c, count, e.mass[c])
		}
		if tail != e.last[c] {
			return fmt.Errorf("%w: cluster %d tail %d, recorded last %d", ErrInvariant, c, tail, e.last[c])
		}
	}
	if total != e.n {
		return fmt.Errorf("%w: masses sum to %d, want %d", ErrInvariant, total, e.n)
	}
	for i, c := range owner {
		if c == none {
			return fmt.Errorf("%w: particle %d belongs to no cluster", ErrInvariant, i)
		}
	}
	return nil
}
