package internal

// The sweep-and-stack triangulation of a strictly x-monotone polygon. A
// vertical sweep line visits the vertices in the ChainSplit order, left to
// right. The stack holds the run of vertices whose diagonals are not yet
// resolved; read bottom to top it always bulges toward the polygon interior,
// which is exactly what makes the same-chain orientation test a sound
// visibility check.
//
// Note that the ring must be counterclockwise.

// Triangulate runs the full pipeline over a validated CCW, simple, strictly
// x-monotone ring: chain split, diagonal sweep, result assembly. It panics
// with one of the error kinds in throw.go on bad input; the public API
// recovers that into an error.
func Triangulate(points []Point) *Triangulation {
	ring := &Ring{Pts: points}
	split := SplitChains(ring)
	return Assemble(ring, sweepDiagonals(ring, split))
}

func sweepDiagonals(ring *Ring, split *ChainSplit) []Diagonal {
	n := ring.Len()
	order := split.Order

	diagonals := make([]Diagonal, 0, n-3)

	// A diagonal is never a boundary edge. Guarding emission on ring
	// adjacency is also what lets the rightmost vertex run through the
	// ordinary cases below: its two neighbors sit at the top and bottom of
	// the stack when the sweep reaches it, and both get skipped.
	emit := func(v, u int) {
		if ring.Adjacent(v, u) {
			return
		}
		diagonals = append(diagonals, NewDiagonal(v, u))
	}

	var stack eventStack
	stack.Push(event{order[0], split.Chains[order[0]]})
	stack.Push(event{order[1], split.Chains[order[1]]})

	for i := 2; i < n; i++ {
		v := order[i]
		c := split.Chains[v]

		if c != stack.Peek().Chain {
			// The sweep jumped to the other chain. Monotonicity makes every
			// stacked vertex visible from v, so drain the stack, drawing a
			// diagonal to each vertex except the bottom one (that one is v's
			// neighbor along the boundary, or the base of an already-resolved
			// run). The previous sweep vertex and v seed the new stack.
			prev := stack.Peek()
			for !stack.Empty() {
				u := stack.Pop()
				if !stack.Empty() {
					emit(v, u.V)
				}
			}
			stack.Push(prev)
			stack.Push(event{v, c})
			continue
		}

		// Same chain. Pop the top off; it is v's chain predecessor and never
		// gets a diagonal. Then keep popping while the exposed triple turns
		// toward the chain's convex side, i.e. while the popped vertex no
		// longer blocks v's view of the one beneath it. Collinear triples
		// stop the run: a segment grazing a third vertex is not a diagonal.
		top := stack.Pop()
		for !stack.Empty() {
			second := stack.Peek()
			turn := Orient(ring.At(second.V), ring.At(top.V), ring.At(v))
			if c == ChainUpper && turn != RightTurn {
				break
			}
			if c == ChainLower && turn != LeftTurn {
				break
			}
			emit(v, second.V)
			top = stack.Pop()
		}
		stack.Push(top)
		stack.Push(event{v, c})
	}

	return diagonals
}
