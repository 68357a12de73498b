// Package vertexfile reads and writes vertex lists as YAML documents.
//
// Every vertex is built through vertex.NewVertex, so a document that
// loads holds only valid vertices.
package vertexfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/g3dexport/pkg/math"
	"github.com/Faultbox/g3dexport/pkg/vertex"
)

// Document is a decoded vertex list. Indices is set when the vertices
// were deduplicated and refers into Vertices.
type Document struct {
	Vertices []*vertex.Vertex
	Indices  []int
}

type fileDocument struct {
	Vertices []record `yaml:"vertices"`
	Indices  []int    `yaml:"indices,omitempty"`
}

type record struct {
	Position     []float32       `yaml:"position,flow"`
	Normal       []float32       `yaml:"normal,flow"`
	Tangent      []float32       `yaml:"tangent,flow,omitempty"`
	Binormal     []float32       `yaml:"binormal,flow,omitempty"`
	Color        []float32       `yaml:"color,flow,omitempty"`
	TexCoords    *[][]float32    `yaml:"texcoords,flow,omitempty"`
	BlendWeights *[]weightRecord `yaml:"blendweights,omitempty"`
}

type weightRecord struct {
	Bone   int     `yaml:"bone"`
	Weight float32 `yaml:"weight"`
}

// Load reads a vertex document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a vertex document.
func Decode(data []byte) (*Document, error) {
	var fd fileDocument
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("parsing vertex document: %w", err)
	}

	doc := &Document{
		Vertices: make([]*vertex.Vertex, 0, len(fd.Vertices)),
		Indices:  fd.Indices,
	}
	for i, r := range fd.Vertices {
		v, err := r.toVertex()
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		doc.Vertices = append(doc.Vertices, v)
	}

	for i, idx := range doc.Indices {
		if idx < 0 || idx >= len(doc.Vertices) {
			return nil, fmt.Errorf("index %d: %d out of range [0, %d)", i, idx, len(doc.Vertices))
		}
	}

	return doc, nil
}

// Encode serializes the document. Absent texcoord or blend weight lists
// are omitted; present empty ones are written as [].
func (d *Document) Encode() ([]byte, error) {
	fd := fileDocument{
		Vertices: make([]record, 0, len(d.Vertices)),
		Indices:  d.Indices,
	}
	for _, v := range d.Vertices {
		fd.Vertices = append(fd.Vertices, fromVertex(v))
	}
	return yaml.Marshal(&fd)
}

func (r record) toVertex() (*vertex.Vertex, error) {
	pos, err := vec3("position", r.Position)
	if err != nil {
		return nil, err
	}
	normal, err := vec3("normal", r.Normal)
	if err != nil {
		return nil, err
	}

	var opts []vertex.Option
	if r.Tangent != nil {
		t, err := vec3("tangent", r.Tangent)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vertex.WithTangent(t))
	}
	if r.Binormal != nil {
		b, err := vec3("binormal", r.Binormal)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vertex.WithBinormal(b))
	}
	if r.Color != nil {
		c, err := color(r.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vertex.WithColor(c))
	}
	if r.TexCoords != nil {
		uv := make([]math.Vec2, 0, len(*r.TexCoords))
		for i, tc := range *r.TexCoords {
			if len(tc) != 2 {
				return nil, fmt.Errorf("%w: texcoord[%d] needs 2 components, got %d", vertex.ErrInvalidType, i, len(tc))
			}
			uv = append(uv, math.Vec2{X: tc[0], Y: tc[1]})
		}
		opts = append(opts, vertex.WithTexCoords(uv))
	}
	if r.BlendWeights != nil {
		bw := make([]vertex.BlendWeight, 0, len(*r.BlendWeights))
		for _, w := range *r.BlendWeights {
			bw = append(bw, vertex.BlendWeight{Bone: w.Bone, Weight: w.Weight})
		}
		opts = append(opts, vertex.WithBlendWeights(bw))
	}

	return vertex.NewVertex(pos, normal, opts...)
}

func fromVertex(v *vertex.Vertex) record {
	r := record{
		Position: v.Position().Slice(),
		Normal:   v.Normal().Slice(),
	}
	if t, ok := v.Tangent(); ok {
		r.Tangent = t.Slice()
	}
	if b, ok := v.Binormal(); ok {
		r.Binormal = b.Slice()
	}
	if c, ok := v.Color(); ok {
		r.Color = c.Slice()
	}
	if uvs := v.TexCoords(); uvs != nil {
		tcs := make([][]float32, 0, len(uvs))
		for _, uv := range uvs {
			tcs = append(tcs, uv.Slice())
		}
		r.TexCoords = &tcs
	}
	if bw := v.BlendWeights(); bw != nil {
		ws := make([]weightRecord, 0, len(bw))
		for _, w := range bw {
			ws = append(ws, weightRecord{Bone: w.Bone, Weight: w.Weight})
		}
		r.BlendWeights = &ws
	}
	return r
}

func vec3(field string, c []float32) (math.Vec3, error) {
	if len(c) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", vertex.ErrInvalidType, field, len(c))
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// color accepts RGB (opaque) or RGBA.
func color(c []float32) (math.Color, error) {
	switch len(c) {
	case 3:
		return math.RGB(c[0], c[1], c[2]), nil
	case 4:
		return math.Color{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
	default:
		return math.Color{}, fmt.Errorf("%w: color needs 3 or 4 components, got %d", vertex.ErrInvalidType, len(c))
	}
}
