// Package vertex provides the exportable mesh vertex record.
//
// A Vertex carries position and normal plus optional tangent, binormal,
// color, texture coordinate channels and bone blend weights. Every
// assignment is validated when it happens, so a Vertex that exists is
// always well formed.
package vertex

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/g3dexport/pkg/math"
)

// Vertex errors.
var (
	// ErrInvalidType is returned when a value assigned to a vertex
	// attribute does not have the shape that attribute requires.
	ErrInvalidType = errors.New("invalid vertex attribute")
)

// BlendWeight is one bone influence on a vertex.
type BlendWeight struct {
	Bone   int     // Bone index in the armature
	Weight float32 // Influence, not necessarily normalized
}

// Vertex is a single exportable mesh vertex.
//
// Optional attributes have an explicit presence state: tangent,
// binormal and color use a flag, texcoords and blend weights are absent
// when nil. A non-nil empty slice is present.
type Vertex struct {
	position math.Vec3
	normal   math.Vec3

	tangent     math.Vec3
	hasTangent  bool
	binormal    math.Vec3
	hasBinormal bool
	color       math.Color
	hasColor    bool

	texcoords    []math.Vec2
	blendweights []BlendWeight
}

// Option sets an optional attribute during construction.
type Option func(*Vertex) error

// WithTangent sets the tangent.
func WithTangent(t math.Vec3) Option {
	return func(v *Vertex) error { return v.SetTangent(t) }
}

// WithBinormal sets the binormal.
func WithBinormal(b math.Vec3) Option {
	return func(v *Vertex) error { return v.SetBinormal(b) }
}

// WithColor sets the color.
func WithColor(c math.Color) Option {
	return func(v *Vertex) error { return v.SetColor(c) }
}

// WithTexCoords sets the texture coordinate channels.
func WithTexCoords(uv []math.Vec2) Option {
	return func(v *Vertex) error { return v.SetTexCoords(uv) }
}

// WithBlendWeights sets the bone blend weights.
func WithBlendWeights(w []BlendWeight) Option {
	return func(v *Vertex) error { return v.SetBlendWeights(w) }
}

// NewVertex creates a vertex from its required attributes. Color stays
// unset unless WithColor is passed.
func NewVertex(position, normal math.Vec3, opts ...Option) (*Vertex, error) {
	v := &Vertex{}
	if err := v.SetPosition(position); err != nil {
		return nil, err
	}
	if err := v.SetNormal(normal); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Position returns the vertex position.
func (v *Vertex) Position() math.Vec3 { return v.position }

// Normal returns the vertex normal.
func (v *Vertex) Normal() math.Vec3 { return v.normal }

// Tangent returns the tangent and whether it is set.
func (v *Vertex) Tangent() (math.Vec3, bool) { return v.tangent, v.hasTangent }

// Binormal returns the binormal and whether it is set.
func (v *Vertex) Binormal() (math.Vec3, bool) { return v.binormal, v.hasBinormal }

// Color returns the color and whether it has been assigned.
func (v *Vertex) Color() (math.Color, bool) { return v.color, v.hasColor }

// TexCoords returns a copy of the texture coordinate channels, nil if absent.
func (v *Vertex) TexCoords() []math.Vec2 { return clone(v.texcoords) }

// BlendWeights returns a copy of the blend weights, nil if absent.
func (v *Vertex) BlendWeights() []BlendWeight { return clone(v.blendweights) }

// SetPosition replaces the position.
func (v *Vertex) SetPosition(p math.Vec3) error {
	if !p.IsFinite() {
		return fieldError("position", p)
	}
	v.position = p
	return nil
}

// SetNormal replaces the normal.
func (v *Vertex) SetNormal(n math.Vec3) error {
	if !n.IsFinite() {
		return fieldError("normal", n)
	}
	v.normal = n
	return nil
}

// SetTangent sets the tangent.
func (v *Vertex) SetTangent(t math.Vec3) error {
	if !t.IsFinite() {
		return fieldError("tangent", t)
	}
	v.tangent, v.hasTangent = t, true
	return nil
}

// ClearTangent removes the tangent.
func (v *Vertex) ClearTangent() { v.tangent, v.hasTangent = math.Vec3{}, false }

// SetBinormal sets the binormal.
func (v *Vertex) SetBinormal(b math.Vec3) error {
	if !b.IsFinite() {
		return fieldError("binormal", b)
	}
	v.binormal, v.hasBinormal = b, true
	return nil
}

// ClearBinormal removes the binormal.
func (v *Vertex) ClearBinormal() { v.binormal, v.hasBinormal = math.Vec3{}, false }

// SetColor assigns the color.
func (v *Vertex) SetColor(c math.Color) error {
	if !c.IsFinite() {
		return fieldError("color", c)
	}
	v.color, v.hasColor = c, true
	return nil
}

// ClearColor returns the color to the unset state.
func (v *Vertex) ClearColor() { v.color, v.hasColor = math.Color{}, false }

// SetTexCoords replaces the texture coordinate channels. A nil slice
// makes them absent; the slice is copied.
func (v *Vertex) SetTexCoords(uv []math.Vec2) error {
	for i, c := range uv {
		if !c.IsFinite() {
			return fieldError(fmt.Sprintf("texcoord[%d]", i), c)
		}
	}
	v.texcoords = clone(uv)
	return nil
}

// ClearTexCoords removes all texture coordinate channels.
func (v *Vertex) ClearTexCoords() { v.texcoords = nil }

// SetBlendWeights replaces the blend weights. A nil slice makes them
// absent; the slice is copied. Bone indices and weights must be
// non-negative.
func (v *Vertex) SetBlendWeights(w []BlendWeight) error {
	for i, bw := range w {
		if bw.Bone < 0 {
			return fmt.Errorf("%w: blendweight[%d]: negative bone index %d", ErrInvalidType, i, bw.Bone)
		}
		if !finite(bw.Weight) || bw.Weight < 0 {
			return fmt.Errorf("%w: blendweight[%d]: weight %v is not a non-negative number", ErrInvalidType, i, bw.Weight)
		}
	}
	v.blendweights = clone(w)
	return nil
}

// ClearBlendWeights removes the blend weights.
func (v *Vertex) ClearBlendWeights() { v.blendweights = nil }

// Clone returns a deep copy of the vertex.
func (v *Vertex) Clone() *Vertex {
	c := *v
	c.texcoords = clone(v.texcoords)
	c.blendweights = clone(v.blendweights)
	return &c
}

func fieldError(field string, value any) error {
	return fmt.Errorf("%w: %s has non-finite component in %v", ErrInvalidType, field, value)
}

func finite(f float32) bool {
	return !gomath.IsNaN(float64(f)) && !gomath.IsInf(float64(f), 0)
}

// clone copies s, keeping nil and empty distinct.
func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
