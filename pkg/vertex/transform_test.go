package vertex

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/g3dexport/pkg/math"
)

func near(a, b math.Vec3) bool {
	return a.Sub(b).Length() < 0.0001
}

func TestTransform_Identity(t *testing.T) {
	v := fullVertex(t)
	before := v.Clone()

	if err := v.Transform(math.Identity()); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if !v.Compare(before) {
		t.Error("identity transform changed the vertex")
	}
}

func TestTransform_TranslateRotate(t *testing.T) {
	v := mustVertex(t, math.Vec3{X: 1}, math.Vec3{X: 1},
		WithTangent(math.Vec3{Y: 1}),
		WithColor(math.RGB(1, 1, 1)),
		WithTexCoords([]math.Vec2{{X: 0.5, Y: 0.5}}),
	)

	m := math.Translate(0, 0, 10).Mul(math.RotateAxis(math.Vec3{Z: 1}, float32(gomath.Pi/2)))
	if err := v.Transform(m); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if got := v.Position(); !near(got, math.Vec3{Y: 1, Z: 10}) {
		t.Errorf("Position() = %v, want (0, 1, 10)", got)
	}
	if got := v.Normal(); !near(got, math.Vec3{Y: 1}) {
		t.Errorf("Normal() = %v, want (0, 1, 0)", got)
	}
	if got, _ := v.Tangent(); !near(got, math.Vec3{X: -1}) {
		t.Errorf("Tangent() = %v, want (-1, 0, 0)", got)
	}
	if _, ok := v.Binormal(); ok {
		t.Error("Transform() set an absent binormal")
	}
	if got := v.TexCoords(); got[0] != (math.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("TexCoords() = %v, want unchanged", got)
	}
}

func TestTransform_NonUniformScaleKeepsUnitNormal(t *testing.T) {
	v := mustVertex(t, origin, math.Vec3{X: 1, Y: 1}.Normalize())
	if err := v.Transform(math.Scale(4, 1, 1)); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if l := v.Normal().Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Normal().Length() = %v, want ~1", l)
	}
}

func TestTransform_RejectsNonFinite(t *testing.T) {
	v := fullVertex(t)
	before := v.Clone()

	m := math.Identity()
	m[12] = float32(gomath.Inf(1))
	if err := v.Transform(m); err == nil {
		t.Fatal("Transform() with infinite translation should fail")
	}
	if !v.Compare(before) {
		t.Error("failed Transform() modified the vertex")
	}
}

func TestTransform_TangentBasis(t *testing.T) {
	tests := []struct {
		name         string
		m            math.Mat4
		tangent      math.Vec3
		wantTangent  math.Vec3
		wantBinormal math.Vec3
	}{
		{"identity", math.Identity(), math.Vec3{X: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{"mirror x keeps handedness", math.Scale(-1, 1, 1), math.Vec3{X: 1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
		{"skewed tangent made perpendicular", math.Scale(2, 1, 1), math.Vec3{X: 1, Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustVertex(t, origin, up, WithTangent(tt.tangent), WithBinormal(math.Vec3{Y: 1}))
			if err := v.Transform(tt.m); err != nil {
				t.Fatalf("Transform() error = %v", err)
			}

			n := v.Normal()
			tan, _ := v.Tangent()
			bin, _ := v.Binormal()
			if !near(tan, tt.wantTangent) {
				t.Errorf("Tangent() = %v, want %v", tan, tt.wantTangent)
			}
			if !near(bin, tt.wantBinormal) {
				t.Errorf("Binormal() = %v, want %v", bin, tt.wantBinormal)
			}
			if d := n.Dot(tan); d > 0.0001 || d < -0.0001 {
				t.Errorf("tangent not perpendicular to normal, dot = %v", d)
			}
		})
	}
}

func TestTransform_BinormalOnly(t *testing.T) {
	v := mustVertex(t, origin, up, WithBinormal(math.Vec3{Y: 1, Z: 1}))
	if err := v.Transform(math.Identity()); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if _, ok := v.Tangent(); ok {
		t.Error("Transform() set an absent tangent")
	}
	if got, _ := v.Binormal(); !near(got, math.Vec3{Y: 1}) {
		t.Errorf("Binormal() = %v, want (0, 1, 0)", got)
	}
}
