package vertex

// Compare reports whether other holds the same value in every attribute.
// Floats are compared exactly. An unset optional attribute only equals
// another unset one; this includes color. A nil other is never equal.
func (v *Vertex) Compare(other *Vertex) bool {
	if other == nil {
		return false
	}
	if v == other {
		return true
	}

	return v.position == other.position &&
		v.normal == other.normal &&
		v.hasColor == other.hasColor && v.color == other.color &&
		v.hasTangent == other.hasTangent && v.tangent == other.tangent &&
		v.hasBinormal == other.hasBinormal && v.binormal == other.binormal &&
		equalSlices(v.texcoords, other.texcoords) &&
		equalSlices(v.blendweights, other.blendweights)
}

// equalSlices treats nil as absent: nil only equals nil.
func equalSlices[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
