package sim

import "slices"

// SSTF repeatedly services the pending request closest to the head.
// Equidistant candidates resolve to the lower cylinder, so the schedule is
// fully determined by the multiset of requests and the head position.
// Duplicates are serviced one per step.
//
// Warning: SSTF can starve requests far from a dense cluster.
func SSTF(requests []int, head int) Result {
	c := newHeadCursor(NameSSTF, head, len(requests))
	pending := slices.Clone(requests)
	for len(pending) > 0 {
		best := 0
		for i := 1; i < len(pending); i++ {
			if closer(pending[i], pending[best], c.pos) {
				best = i
			}
		}
		c.service(pending[best])
		pending = slices.Delete(pending, best, best+1)
	}
	return c.result()
}

// closer reports whether cylinder a should be serviced before b from pos.
func closer(a, b, pos int) bool {
	da, db := abs(a-pos), abs(b-pos)
	if da != db {
		return da < db
	}
	return a < b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
