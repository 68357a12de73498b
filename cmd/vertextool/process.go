package main

import (
	"go.uber.org/zap"

	"github.com/Faultbox/g3dexport/internal/config"
	"github.com/Faultbox/g3dexport/internal/logger"
	"github.com/Faultbox/g3dexport/internal/vertexfile"
	"github.com/Faultbox/g3dexport/pkg/vertex"
)

// summary describes a vertex list.
type summary struct {
	Total         int
	Unique        int
	WithTangent   int
	WithBinormal  int
	UnsetColor    int
	MaxUVChannels int
	Skinned       int
	ZeroWeightSum int
}

func summarize(vertices []*vertex.Vertex) summary {
	s := summary{Total: len(vertices)}
	buf := vertex.NewBuffer()
	for _, v := range vertices {
		buf.Add(v)
		if _, ok := v.Tangent(); ok {
			s.WithTangent++
		}
		if _, ok := v.Binormal(); ok {
			s.WithBinormal++
		}
		if _, ok := v.Color(); !ok {
			s.UnsetColor++
		}
		if n := len(v.TexCoords()); n > s.MaxUVChannels {
			s.MaxUVChannels = n
		}
		if bw := v.BlendWeights(); bw != nil {
			s.Skinned++
			if v.WeightSum() == 0 {
				s.ZeroWeightSum++
			}
		}
	}
	s.Unique = buf.Len()
	return s
}

// normalizeAll normalizes every vertex and returns how many were skipped
// because their weights summed to zero. Vertices with no weights are not
// counted.
func normalizeAll(doc *vertexfile.Document) int {
	skipped := 0
	for i, v := range doc.Vertices {
		if len(v.BlendWeights()) == 0 {
			continue
		}
		if !v.NormalizeWeights() {
			skipped++
			logger.Warn("vertex has zero total blend weight", zap.Int("vertex", i))
		}
	}
	if skipped > 0 {
		logger.Sugar.Warnf("%d of %d vertices left unnormalized", skipped, len(doc.Vertices))
	}
	return skipped
}

// dedupe returns a document holding each distinct vertex once, with
// indices mapping the original order onto them. Existing indices are
// remapped through the merge.
func dedupe(doc *vertexfile.Document) *vertexfile.Document {
	buf := vertex.NewBuffer()
	for _, v := range doc.Vertices {
		buf.Add(v)
	}

	indices := buf.Indices()
	if doc.Indices != nil {
		remapped := make([]int, len(doc.Indices))
		for i, old := range doc.Indices {
			remapped[i] = indices[old]
		}
		indices = remapped
	}

	logger.Info("deduplicated vertices",
		zap.Int("in", len(doc.Vertices)),
		zap.Int("out", buf.Len()))

	return &vertexfile.Document{Vertices: buf.Vertices(), Indices: indices}
}

// process runs the configured steps. Weights are normalized before
// deduplication so vertices that differ only in weight scale merge.
func process(doc *vertexfile.Document, cfg config.ProcessConfig) *vertexfile.Document {
	if cfg.WarnUnsetColor {
		for i, v := range doc.Vertices {
			if _, ok := v.Color(); !ok {
				logger.Warn("vertex has no color; it only matches other uncolored vertices", zap.Int("vertex", i))
			}
		}
	}
	if cfg.NormalizeWeights {
		normalizeAll(doc)
	}
	if cfg.Deduplicate {
		doc = dedupe(doc)
	}
	return doc
}
