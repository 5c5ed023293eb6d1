package cloud

// UsedSet is a dense bitmap over VertexIds: used[i] becomes true once
// sample i has been incorporated into any emitted triangle. Monotonic —
// bits only ever flip false to true (spec §3).
type UsedSet struct {
	bits []bool
}

// NewUsedSet returns a UsedSet of size n, all bits initially false.
func NewUsedSet(n int) *UsedSet {
	return &UsedSet{bits: make([]bool, n)}
}

// IsUsed reports whether id has been marked used.
func (u *UsedSet) IsUsed(id VertexId) bool { return u.bits[id] }

// MarkUsed sets the bit for id. Idempotent.
func (u *UsedSet) MarkUsed(id VertexId) { u.bits[id] = true }

// MarkAllUsed marks every id in ids used; a convenience for triangle
// emission, where all three vertices become used together.
func (u *UsedSet) MarkAllUsed(ids ...VertexId) {
	for _, id := range ids {
		u.bits[id] = true
	}
}

// Count returns the number of currently-used vertices. O(n).
func (u *UsedSet) Count() int {
	n := 0
	for _, b := range u.bits {
		if b {
			n++
		}
	}
	return n
}

// Len returns the bitmap's size (equal to the owning Cloud's sample count).
func (u *UsedSet) Len() int { return len(u.bits) }
