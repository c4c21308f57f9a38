package cca

import (
	"fmt"

	icore "mad-cca/internal/core"
)

// checkNeighbors merges the cluster at (x, y) with every differently labelled
// von Neumann neighbour. The own label is re-read per direction because a
// merge may relabel it.
func (e *Engine) checkNeighbors(x, y int) {
	for j := 0; j < 4; j++ {
		nb := e.site.At(x+nnx[j], y+nny[j])
		self := e.site.At(x, y)
		if nb != icore.Empty && nb != self {
			e.merge(int(nb), int(self))
		}
	}
}

// merge fuses clusters c1 and c2. The heavier one survives, c2 on ties. The
// victim's list is spliced onto the survivor's tail and its cells relabelled;
// then the highest live id moves into the freed slot so ids stay dense.
func (e *Engine) merge(c1, c2 int) {
	if c1 == c2 {
		return
	}
	e.mustCluster(c1)
	e.mustCluster(c2)

	survivor, victim := c2, c1
	if e.mass[c1] > e.mass[c2] {
		survivor, victim = c1, c2
	}

	e.next[e.last[survivor]] = e.first[victim]
	e.last[survivor] = e.last[victim]
	e.mass[survivor] += e.mass[victim]
	e.relabel(e.first[victim], survivor)
	if e.moving == victim {
		e.moving = survivor
	}

	e.clusters--
	e.merges++
	top := e.clusters
	if victim != top {
		e.relabel(e.first[top], victim)
		e.first[victim] = e.first[top]
		e.last[victim] = e.last[top]
		e.mass[victim] = e.mass[top]
		if e.moving == top {
			e.moving = victim
		}
	}
	e.first[top] = none
	e.last[top] = none
	e.mass[top] = 0
}

// relabel writes id c into the cell of every particle from p to the end of
// its list.
func (e *Engine) relabel(p, c int) {
	for ; p != none; p = e.next[p] {
		e.place(p, c)
	}
}

func (e *Engine) String() string {
	return fmt.Sprintf("cca.Engine{L:%d N:%d clusters:%d largest:%d steps:%d}", e.l, e.n, e.clusters, e.Largest(), e.steps)
}
