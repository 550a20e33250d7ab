package triangle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAttributeFloatsTightlyPacked(t *testing.T) {
	a := Attribute{
		Components: 3,
		Data:       []mgl32.Vec3{{0, 0.5, 0}, {0.5, -0.5, 0}, {-0.5, -0.5, 0}},
	}
	assert.Equal(t, []float32{0, 0.5, 0, 0.5, -0.5, 0, -0.5, -0.5, 0}, a.Floats())
	assert.Equal(t, 9*4, a.ByteSize())
}
