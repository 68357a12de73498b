package vertex

import "github.com/Faultbox/g3dexport/pkg/math"

// Buffer collects vertices for an indexed vertex buffer, storing each
// distinct vertex once. Stored vertices are private copies, so callers
// cannot change them after the fact.
type Buffer struct {
	vertices []*Vertex
	indices  []int
	byPos    map[math.Vec3][]int
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{byPos: make(map[math.Vec3][]int)}
}

// Add records a use of v. If an equal vertex is already stored its index
// is returned and added is false; otherwise a copy of v is appended.
// The returned index is also appended to Indices.
//
// A nil v is ignored and returns (-1, false).
func (b *Buffer) Add(v *Vertex) (index int, added bool) {
	if v == nil {
		return -1, false
	}

	for _, i := range b.byPos[v.position] {
		if b.vertices[i].Compare(v) {
			b.indices = append(b.indices, i)
			return i, false
		}
	}

	index = len(b.vertices)
	b.vertices = append(b.vertices, v.Clone())
	b.byPos[v.position] = append(b.byPos[v.position], index)
	b.indices = append(b.indices, index)
	return index, true
}

// Len returns the number of distinct vertices.
func (b *Buffer) Len() int {
	return len(b.vertices)
}

// Vertices returns copies of the distinct vertices in insertion order.
func (b *Buffer) Vertices() []*Vertex {
	out := make([]*Vertex, len(b.vertices))
	for i, v := range b.vertices {
		out[i] = v.Clone()
	}
	return out
}

// Indices returns a copy of the index of every vertex passed to Add, in
// call order.
func (b *Buffer) Indices() []int {
	return clone(b.indices)
}
