package triangle

import "github.com/go-gl/mathgl/mgl32"

// Attribute is one per-vertex stream, bound to a shader input location.
// Name is only used when the program binds locations by name before linking.
type Attribute struct {
	Location   uint32
	Name       string
	Components int
	Data       []mgl32.Vec3
}

// Floats flattens the stream into tightly packed float32 triples.
func (a Attribute) Floats() []float32 {
	out := make([]float32, 0, len(a.Data)*3)
	for _, v := range a.Data {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// ByteSize is the size of the uploaded buffer.
func (a Attribute) ByteSize() int {
	return len(a.Data) * a.Components * 4
}

type Geometry struct {
	Attributes  []Attribute
	VertexCount int
}
