package internal

import "sort"

// Splitting the ring into its two monotone chains. The leftmost and rightmost
// vertices (ties broken by smaller y) are the chain endpoints. Walking the CCW
// ring forward from the left extreme reaches the right extreme along the lower
// chain; the remaining vertices, whose successors head back toward decreasing
// x, form the upper chain.

// ChainSplit is the derived view of a ring that the sweep consumes: the two
// extreme vertices, a chain tag per vertex, and the total sweep order.
type ChainSplit struct {
	Left, Right int
	Chains      []Chain
	// Order lists all vertex ids sorted by ascending x, then chain (LOWER
	// before UPPER), then y. The key is total because duplicate coordinates
	// are rejected, so the processing order is deterministic even when many
	// vertices share an x value.
	Order []int
}

// SplitChains validates the ring's cheap structural invariants and computes
// its chain split. It does not verify simplicity or monotonicity; those are
// the loader's responsibility.
func SplitChains(ring *Ring) *ChainSplit {
	n := ring.Len()
	if n < 3 {
		fatalf(ErrInvalidSize, "got %d vertices", n)
	}
	seen := make(map[Point]int, n)
	for i, p := range ring.Pts {
		if j, ok := seen[p]; ok {
			fatalf(ErrDuplicateVertex, "vertices %d and %d are both (%v, %v)", j, i, p.X, p.Y)
		}
		seen[p] = i
	}

	// Both extremes break x ties toward the smaller y.
	left, right := 0, 0
	for i := 1; i < n; i++ {
		p := ring.At(i)
		if p.X < ring.At(left).X || (p.X == ring.At(left).X && p.Y < ring.At(left).Y) {
			left = i
		}
		if p.X > ring.At(right).X || (p.X == ring.At(right).X && p.Y < ring.At(right).Y) {
			right = i
		}
	}

	// The extremes terminate both chains; they are tagged ChainLower so that
	// they sort ahead of an upper-chain vertex sharing their x value.
	chains := make([]Chain, n)
	for i := right; i != left; i = CircularIndex(i+1, n) {
		chains[i] = ChainUpper
	}
	chains[left] = ChainLower
	chains[right] = ChainLower

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		va, vb := order[a], order[b]
		pa, pb := ring.At(va), ring.At(vb)
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		if chains[va] != chains[vb] {
			return chains[va] == ChainLower
		}
		return pa.Y < pb.Y
	})

	return &ChainSplit{Left: left, Right: right, Chains: chains, Order: order}
}
