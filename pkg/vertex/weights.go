package vertex

import "go.uber.org/zap"

var log = zap.NewNop()

// SetLogger sets the logger used to report degenerate vertex data.
// A nil logger disables reporting.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// NormalizeWeights scales the blend weights in place so they sum to 1,
// keeping bone indices, order and length.
//
// It returns false without touching anything when the blend weights are
// absent or empty, or when they sum to exactly zero. The zero-sum case is
// not an error; callers that need to find degenerate skinning check the
// result. The sum is taken in float64 so large weights cannot overflow it.
func (v *Vertex) NormalizeWeights() bool {
	if len(v.blendweights) == 0 {
		return false
	}

	total := v.WeightSum()
	if total == 0.0 {
		log.Debug("blend weights sum to zero, left unnormalized",
			zap.Int("weights", len(v.blendweights)),
			zap.Any("position", v.position))
		return false
	}

	for i := range v.blendweights {
		v.blendweights[i].Weight = float32(float64(v.blendweights[i].Weight) / total)
	}
	return true
}

// WeightSum returns the sum of the blend weights, 0 if absent.
func (v *Vertex) WeightSum() float64 {
	var total float64
	for _, w := range v.blendweights {
		total += float64(w.Weight)
	}
	return total
}
