package vertex

import "github.com/Faultbox/g3dexport/pkg/math"

// Transform applies m to the vertex. The position is transformed as a
// point and the normal by the inverse-transpose of m. Tangent and
// binormal are transformed as directions, then made perpendicular to the
// new normal. When both are set the binormal is rebuilt from
// normal x tangent, keeping the handedness it had after transforming, so
// mirroring matrices flip it. Direction attributes are renormalized.
//
// On error the vertex is left unchanged.
func (v *Vertex) Transform(m math.Mat4) error {
	out := v.Clone()

	if err := out.SetPosition(m.TransformPoint(v.position)); err != nil {
		return err
	}
	n := m.NormalMatrix().TransformDirection(v.normal).Normalize()
	if err := out.SetNormal(n); err != nil {
		return err
	}

	var t math.Vec3
	if v.hasTangent {
		t = orthogonalize(m.TransformDirection(v.tangent), n)
		if err := out.SetTangent(t); err != nil {
			return err
		}
	}
	if v.hasBinormal {
		b := m.TransformDirection(v.binormal)
		if v.hasTangent {
			rebuilt := n.Cross(t)
			if b.Dot(rebuilt) < 0 {
				rebuilt = rebuilt.Scale(-1)
			}
			b = rebuilt.Normalize()
		} else {
			b = orthogonalize(b, n)
		}
		if err := out.SetBinormal(b); err != nil {
			return err
		}
	}

	*v = *out
	return nil
}

// orthogonalize removes the component of d along the unit vector n
// (one Gram-Schmidt step) and normalizes the rest.
func orthogonalize(d, n math.Vec3) math.Vec3 {
	return d.Sub(n.Scale(n.Dot(d))).Normalize()
}
