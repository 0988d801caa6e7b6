package sim

// FCFS services requests in arrival order.
// The total is the distance from head to the first request plus every
// consecutive hop after it.
func FCFS(requests []int, head int) Result {
	c := newHeadCursor(NameFCFS, head, len(requests))
	c.serviceInOrder(requests)
	return c.result()
}
