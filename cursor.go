package main

// ─── Cursor ──────────────────────────────────────────────────────────────────

// growDirection remembers which end of a multi-selection grew last, so a
// step in the opposite direction shrinks the range back toward length 1
// before it can start growing the other way.
type growDirection int

const (
	dirNone growDirection = iota
	dirUp
	dirDown
)

// cursor is a contiguous half-open index range [start, stop) over the list,
// always of length >= 1. Every operation clamps; none can panic.
type cursor struct {
	start     int
	stop      int
	direction growDirection
}

func newCursor(position int) *cursor {
	return &cursor{start: position, stop: position + 1}
}

func (c *cursor) len() int {
	return c.stop - c.start
}

// first returns the top-most selected position.
func (c *cursor) first() int {
	return c.start
}

// last returns the bottom-most selected position.
func (c *cursor) last() int {
	return c.stop - 1
}

func (c *cursor) contains(position int) bool {
	return c.start <= position && position < c.stop
}

// positions returns every selected index in order.
func (c *cursor) positions() []int {
	out := make([]int, 0, c.len())
	for i := c.start; i < c.stop; i++ {
		out = append(out, i)
	}
	return out
}

// setTo collapses the selection to the single given position.
func (c *cursor) setTo(position int) {
	c.start = position
	c.stop = position + 1
	c.direction = dirNone
}

// setToClamp collapses to position, clamped to [0, maxLen).
func (c *cursor) setToClamp(position, maxLen int) {
	c.setTo(clamp(position, 0, maxLen))
}

// singleUp moves a selection up by one. Wraps to the opposite end only when
// the entire list is selected; otherwise clamps at 0.
func (c *cursor) singleUp(maxLen int) {
	if c.len() == maxLen {
		c.setTo(0)
		return
	}
	if c.first() == 0 {
		return
	}
	c.setTo(c.first() - 1)
}

// singleDown moves a selection down by one, clamping at the end of the list.
// A whole-list selection first collapses to its top before stepping.
func (c *cursor) singleDown(maxLen int) {
	if c.len() == maxLen {
		c.setTo(c.first())
	}
	if c.last() >= maxLen-1 {
		return
	}
	c.setTo(c.last() + 1)
}

// slideUp shifts the whole range up by one without changing its length,
// used when a moved item drags its selection along.
func (c *cursor) slideUp() {
	if c.start == 0 {
		return
	}
	c.start--
	c.stop--
}

// slideDown shifts the whole range down by one without changing its length.
func (c *cursor) slideDown(maxLen int) {
	if c.last() >= maxLen-1 {
		return
	}
	c.start++
	c.stop++
}

func (c *cursor) toTop() {
	c.setTo(0)
}

func (c *cursor) toBottom(maxLen int) {
	c.setTo(maxLen - 1)
}

// multiselectUp grows the selection one step upward, or shrinks it from the
// bottom end when it last grew downward. No-op at the top boundary once
// growing up is the only move left.
func (c *cursor) multiselectUp() {
	if c.start == 0 && (c.direction == dirUp || c.len() == 1) {
		return
	}
	if c.len() == 1 || c.direction == dirUp {
		c.start--
		c.direction = dirUp
		return
	}
	c.stop--
}

// multiselectDown grows the selection one step downward, or shrinks it from
// the top end when it last grew upward. No-op at the bottom boundary once
// growing down is the only move left.
func (c *cursor) multiselectDown(maxLen int) {
	if c.stop >= maxLen && (c.direction == dirDown || c.len() == 1) {
		return
	}
	if c.len() == 1 || c.direction == dirDown {
		c.stop++
		c.direction = dirDown
		return
	}
	c.start++
}

// multiselectTop extends the selection step by step to the start of the
// list, keeping the direction bookkeeping consistent.
func (c *cursor) multiselectTop() {
	for c.start > 0 {
		c.multiselectUp()
	}
}

// multiselectBottom extends the selection step by step to the end of the list.
func (c *cursor) multiselectBottom(maxLen int) {
	for c.stop < maxLen {
		c.multiselectDown(maxLen)
	}
}

// multiselectTo steps toward target one position at a time, direction chosen
// by comparing target against the current top of the selection.
func (c *cursor) multiselectTo(target, maxLen int) {
	first := c.first()
	if target < first {
		for i := first; i > target; i-- {
			c.multiselectUp()
		}
		return
	}
	for i := first; i < target; i++ {
		c.multiselectDown(maxLen)
	}
}

// deletable returns one index per selected position, every element equal to
// the top of the selection: deleting repeatedly at that single index removes
// the whole range from a list that shifts under each removal.
func (c *cursor) deletable() []int {
	out := make([]int, c.len())
	for i := range out {
		out[i] = c.start
	}
	return out
}

// selectAll expands the selection to the entire list.
func (c *cursor) selectAll(maxLen int) {
	c.start = 0
	c.stop = maxLen
}

// clamp keeps n in [minimum, maximum).
func clamp(n, minimum, maximum int) int {
	if n < minimum {
		return minimum
	}
	if n > maximum-1 {
		return maximum - 1
	}
	return n
}
