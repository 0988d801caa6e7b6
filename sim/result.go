package sim

import (
	"github.com/inference-sim/seek-sim/sim/trace"
)

// Result is the output of one scheduling run.
type Result struct {
	Algorithm string           // registry name of the policy that produced it
	Head      int              // starting cylinder
	Order     []int            // requests in service order; never includes boundary cylinders
	Total     int              // total seek distance in cylinders
	Trace     *trace.SeekTrace // every head move, including boundary and wrap moves
}

// Path returns the full head path starting at Head, boundary cylinders included.
// Total always equals the summed absolute differences along Path.
func (r Result) Path() []int {
	if r.Trace == nil {
		return []int{r.Head}
	}
	return r.Trace.Path()
}

// headCursor tracks the head while a policy walks its service order.
// All seek accounting goes through move so Total and Trace never disagree.
type headCursor struct {
	pos int
	res Result
}

func newHeadCursor(algorithm string, head int, n int) *headCursor {
	return &headCursor{
		pos: head,
		res: Result{
			Algorithm: algorithm,
			Head:      head,
			Order:     make([]int, 0, n),
			Trace:     trace.NewSeekTrace(head, n+2),
		},
	}
}

func (c *headCursor) move(to int, kind trace.MoveKind) {
	m := c.res.Trace.Record(c.pos, to, kind)
	c.res.Total += m.Distance
	c.pos = to
}

// service moves to cylinder and records it as serviced.
func (c *headCursor) service(cylinder int) {
	c.move(cylinder, trace.KindService)
	c.res.Order = append(c.res.Order, cylinder)
}

// serviceInOrder services cylinders in slice order.
func (c *headCursor) serviceInOrder(cylinders []int) {
	for _, r := range cylinders {
		c.service(r)
	}
}

// serviceDescending services sorted in reverse slice order.
func (c *headCursor) serviceDescending(sorted []int) {
	for i := len(sorted) - 1; i >= 0; i-- {
		c.service(sorted[i])
	}
}

// sweepTo charges the travel to a disk edge.
func (c *headCursor) sweepTo(boundary int) {
	c.move(boundary, trace.KindBoundary)
}

// wrapTo charges the edge-to-edge return of a circular sweep.
func (c *headCursor) wrapTo(boundary int) {
	c.move(boundary, trace.KindWrap)
}

func (c *headCursor) result() Result {
	return c.res
}
