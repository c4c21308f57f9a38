package cca

// Step picks a uniformly random live cluster and one of the four directions,
// then translates the cluster one cell as a rigid body.
//
// All member cells are cleared and advanced before any is written back, so a
// cluster never collides with itself. Members are then written and checked
// against their neighbours in list order; merges fire immediately. The walk
// follows live next-links from the captured head, so lists appended by a
// merge in which the mover survives are visited too.
//
// Step panics if the engine has not been initialized.
func (e *Engine) Step() {
	if !e.ready {
		panic("cca: Step called before a successful Initialize")
	}
	c := e.rng.IntN(e.clusters)
	dir := e.rng.Direction()
	dx, dy := nnx[dir], nny[dir]

	head := e.first[c]
	for p := head; p != none; p = e.next[p] {
		e.clear(p)
		e.x[p] = e.wrap(e.x[p] + dx)
		e.y[p] = e.wrap(e.y[p] + dy)
	}

	e.moving = c
	for p := head; p != none; p = e.next[p] {
		e.place(p, e.moving)
		e.checkNeighbors(e.x[p], e.y[p])
	}
	e.moving = none
	e.steps++
}
