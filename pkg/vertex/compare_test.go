package vertex

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/g3dexport/pkg/math"
)

func fullVertex(t *testing.T) *Vertex {
	t.Helper()
	return mustVertex(t, math.Vec3{X: 1, Y: 2, Z: 3}, up,
		WithTangent(math.Vec3{X: 1}),
		WithBinormal(math.Vec3{Y: 1}),
		WithColor(math.RGB(0.2, 0.4, 0.6)),
		WithTexCoords([]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 0}}),
		WithBlendWeights([]BlendWeight{{Bone: 0, Weight: 0.25}, {Bone: 3, Weight: 0.75}}),
	)
}

func TestCompare_Reflexive(t *testing.T) {
	v := fullVertex(t)
	if !v.Compare(v) {
		t.Error("v.Compare(v) = false, want true")
	}
	if !v.Compare(fullVertex(t)) {
		t.Error("identical vertices compare unequal")
	}
}

func TestCompare_Nil(t *testing.T) {
	v := fullVertex(t)
	if v.Compare(nil) {
		t.Error("Compare(nil) = true, want false")
	}
}

func TestCompare_FieldDifferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *Vertex)
	}{
		{"position", func(v *Vertex) { v.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3.0001}) }},
		{"normal", func(v *Vertex) { v.SetNormal(math.Vec3{Y: 1}) }},
		{"color value", func(v *Vertex) { v.SetColor(math.RGB(0.2, 0.4, 0.7)) }},
		{"color unset", func(v *Vertex) { v.ClearColor() }},
		{"tangent absent", func(v *Vertex) { v.ClearTangent() }},
		{"tangent value", func(v *Vertex) { v.SetTangent(math.Vec3{X: -1}) }},
		{"binormal absent", func(v *Vertex) { v.ClearBinormal() }},
		{"texcoord absent", func(v *Vertex) { v.ClearTexCoords() }},
		{"texcoord empty", func(v *Vertex) { v.SetTexCoords([]math.Vec2{}) }},
		{"texcoord order", func(v *Vertex) { v.SetTexCoords([]math.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}}) }},
		{"texcoord length", func(v *Vertex) { v.SetTexCoords([]math.Vec2{{X: 0, Y: 1}}) }},
		{"blendweight absent", func(v *Vertex) { v.ClearBlendWeights() }},
		{"blendweight bone", func(v *Vertex) {
			v.SetBlendWeights([]BlendWeight{{Bone: 0, Weight: 0.25}, {Bone: 4, Weight: 0.75}})
		}},
		{"blendweight weight", func(v *Vertex) {
			v.SetBlendWeights([]BlendWeight{{Bone: 0, Weight: 0.5}, {Bone: 3, Weight: 0.5}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fullVertex(t)
			b := fullVertex(t)
			tt.mutate(b)

			if a.Compare(b) {
				t.Error("a.Compare(b) = true, want false")
			}
			if b.Compare(a) {
				t.Error("b.Compare(a) = true, want false (not symmetric)")
			}
		})
	}
}

func TestCompare_OptionalTexcoord(t *testing.T) {
	a := mustVertex(t, origin, up, WithTexCoords([]math.Vec2{{X: 0.5, Y: 0.5}}))
	b := mustVertex(t, origin, up)
	if a.Compare(b) || b.Compare(a) {
		t.Error("vertex with texcoord compares equal to one without")
	}
}

func TestCompare_UnsetColorBothSides(t *testing.T) {
	a := mustVertex(t, origin, up)
	b := mustVertex(t, origin, up)
	if !a.Compare(b) {
		t.Error("two vertices with unset color and equal fields compare unequal")
	}

	// A color equal to the zero value is still distinct from unset.
	b.SetColor(math.Color{})
	if a.Compare(b) {
		t.Error("unset color compares equal to a set zero color")
	}
}

func TestCompare_SignedZero(t *testing.T) {
	a := mustVertex(t, math.Vec3{X: 0}, up)
	b := mustVertex(t, math.Vec3{X: float32(gomath.Copysign(0, -1))}, up)
	if !a.Compare(b) {
		t.Error("0 and -0 positions should compare equal")
	}
}
