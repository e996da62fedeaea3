package core

import (
	"iter"

	"github.com/lixenwraith/orrery/vmath"
)

// Trail is a fixed-capacity FIFO of world positions, oldest first
// Backed by a ring buffer; Record never allocates after construction
type Trail struct {
	points []vmath.Vec2
	head   int // index of oldest entry
	size   int
}

// NewTrail creates a trail holding at most capacity points, capacity < 1 is coerced to 1
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]vmath.Vec2, capacity)}
}

// Record appends p, evicting the oldest entry when full
func (t *Trail) Record(p vmath.Vec2) {
	capacity := len(t.points)
	if t.size < capacity {
		t.points[(t.head+t.size)%capacity] = p
		t.size++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % capacity
}

// Len returns number of points held
func (t *Trail) Len() int {
	return t.size
}

// Cap returns fixed capacity
func (t *Trail) Cap() int {
	return len(t.points)
}

// Reset drops all points, capacity unchanged
func (t *Trail) Reset() {
	t.head = 0
	t.size = 0
}

// Newest returns most recently recorded point
func (t *Trail) Newest() (vmath.Vec2, bool) {
	if t.size == 0 {
		return vmath.Vec2{}, false
	}
	return t.points[(t.head+t.size-1)%len(t.points)], true
}

// Snapshot yields (age index, position) oldest to newest
// The sequence is lazy and may be ranged over repeatedly; it reads live state
func (t *Trail) Snapshot() iter.Seq2[int, vmath.Vec2] {
	return func(yield func(int, vmath.Vec2) bool) {
		capacity := len(t.points)
		for i := 0; i < t.size; i++ {
			if !yield(i, t.points[(t.head+i)%capacity]) {
				return
			}
		}
	}
}
