package sim

import "slices"

// partition splits requests into cylinders below head and cylinders at or
// above head, both sorted ascending.
func partition(requests []int, head int) (left, right []int) {
	for _, r := range requests {
		if r < head {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	slices.Sort(left)
	slices.Sort(right)
	return left, right
}

// SCAN sweeps toward dir servicing requests on the way, travels to the disk
// edge, then reverses and services the other side.
//
// The edge hop is charged even when no request lies beyond the last one
// serviced: the head physically reaches the edge before reversing. Any
// direction other than DirectionLeft sweeps right first.
func SCAN(requests []int, head int, dir Direction, diskSize int) Result {
	c := newHeadCursor(NameSCAN, head, len(requests))
	if len(requests) == 0 {
		return c.result()
	}
	left, right := partition(requests, head)
	if dir == DirectionLeft {
		c.serviceDescending(left)
		c.sweepTo(0)
		c.serviceInOrder(right)
	} else {
		c.serviceInOrder(right)
		c.sweepTo(diskSize - 1)
		c.serviceDescending(left)
	}
	return c.result()
}

// CSCAN sweeps toward dir to the disk edge, jumps to the opposite edge and
// keeps moving in the same direction over the remaining requests.
//
// Both the edge hop and the edge-to-edge jump (diskSize-1 cylinders) are
// charged. After a left sweep the remaining requests are serviced from the
// top edge downward; after a right sweep, from cylinder 0 upward.
func CSCAN(requests []int, head int, dir Direction, diskSize int) Result {
	c := newHeadCursor(NameCSCAN, head, len(requests))
	if len(requests) == 0 {
		return c.result()
	}
	left, right := partition(requests, head)
	last := diskSize - 1
	if dir == DirectionLeft {
		c.serviceDescending(left)
		c.sweepTo(0)
		c.wrapTo(last)
		c.serviceDescending(right)
	} else {
		c.serviceInOrder(right)
		c.sweepTo(last)
		c.wrapTo(0)
		c.serviceInOrder(left)
	}
	return c.result()
}
