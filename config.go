package triangle

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

const (
	BackendGLFW = "glfw"
	BackendSDL2 = "sdl2"

	// DefaultMaxShaderBytes is the largest accepted shader source, in bytes.
	DefaultMaxShaderBytes = 254
)

//go:embed variants.yaml
var variantsYAML []byte

// Variant describes one triangle program: its window, shader files and
// vertex attribute streams.
type Variant struct {
	Name           string
	Title          string
	Width          int
	Height         int
	Backend        string
	VertexShader   string
	FragmentShader string
	MaxShaderBytes int
	ClearColor     [4]float32
	Attributes     []Attribute
	// Debug turns on debug logging (stage transitions, frame count).
	Debug bool
}

type variantFile struct {
	Variants []rawVariant `yaml:"variants"`
}

type rawVariant struct {
	Name           string         `yaml:"name"`
	Title          string         `yaml:"title"`
	Width          int            `yaml:"width"`
	Height         int            `yaml:"height"`
	Backend        string         `yaml:"backend"`
	VertexShader   string         `yaml:"vertex_shader"`
	FragmentShader string         `yaml:"fragment_shader"`
	MaxShaderBytes int            `yaml:"max_shader_bytes"`
	ClearColor     []float32      `yaml:"clear_color"`
	Attributes     []rawAttribute `yaml:"attributes"`
	Debug          bool           `yaml:"debug"`
}

type rawAttribute struct {
	Location   uint32      `yaml:"location"`
	Name       string      `yaml:"name"`
	Components int         `yaml:"components"`
	Data       [][]float32 `yaml:"data"`
}

// ParseVariants decodes a variants document. Unknown keys are rejected.
func ParseVariants(doc []byte) ([]Variant, error) {
	dec := yaml.NewDecoder(bytes.NewReader(doc))
	dec.KnownFields(true)

	var file variantFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode variants: %w", err)
	}

	out := make([]Variant, 0, len(file.Variants))
	for _, rv := range file.Variants {
		v, err := rv.toVariant()
		if err != nil {
			return nil, err
		}
		v.applyDefaults()
		if err := v.Validate(); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (rv rawVariant) toVariant() (Variant, error) {
	v := Variant{
		Name:           rv.Name,
		Title:          rv.Title,
		Width:          rv.Width,
		Height:         rv.Height,
		Backend:        rv.Backend,
		VertexShader:   rv.VertexShader,
		FragmentShader: rv.FragmentShader,
		MaxShaderBytes: rv.MaxShaderBytes,
		Debug:          rv.Debug,
	}
	switch len(rv.ClearColor) {
	case 0:
		v.ClearColor = [4]float32{0, 0, 0, 1}
	case 4:
		copy(v.ClearColor[:], rv.ClearColor)
	default:
		return Variant{}, fmt.Errorf("variant %q: clear_color needs 4 components, got %d", rv.Name, len(rv.ClearColor))
	}

	for _, ra := range rv.Attributes {
		attr := Attribute{Location: ra.Location, Name: ra.Name, Components: ra.Components}
		if attr.Components == 0 {
			attr.Components = 3
		}
		for i, row := range ra.Data {
			if len(row) != 3 {
				return Variant{}, fmt.Errorf("variant %q: attribute %d vertex %d has %d components, want 3", rv.Name, ra.Location, i, len(row))
			}
			attr.Data = append(attr.Data, mgl32.Vec3{row[0], row[1], row[2]})
		}
		v.Attributes = append(v.Attributes, attr)
	}
	return v, nil
}

func (v *Variant) applyDefaults() {
	if v.Backend == "" {
		v.Backend = BackendGLFW
	}
	if v.MaxShaderBytes <= 0 {
		v.MaxShaderBytes = DefaultMaxShaderBytes
	}
	if v.Title == "" {
		v.Title = v.Name
	}
	sort.SliceStable(v.Attributes, func(i, j int) bool {
		return v.Attributes[i].Location < v.Attributes[j].Location
	})
}

// Validate checks that the attribute streams match the fixed buffer layout.
func (v Variant) Validate() error {
	if v.Name == "" {
		return errors.New("variant without a name")
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("variant %q: window size %dx%d is invalid", v.Name, v.Width, v.Height)
	}
	if v.Backend != BackendGLFW && v.Backend != BackendSDL2 {
		return fmt.Errorf("variant %q: unknown backend %q", v.Name, v.Backend)
	}
	if v.VertexShader == "" || v.FragmentShader == "" {
		return fmt.Errorf("variant %q: both shader paths are required", v.Name)
	}
	if len(v.Attributes) == 0 {
		return fmt.Errorf("variant %q: no vertex attributes", v.Name)
	}

	locations := make(map[uint32]bool)
	names := make(map[string]bool)
	named := 0
	for _, a := range v.Attributes {
		if a.Components != 3 {
			return fmt.Errorf("variant %q: attribute %d has %d components, only 3 is supported", v.Name, a.Location, a.Components)
		}
		if len(a.Data) != len(v.Attributes[0].Data) {
			return fmt.Errorf("variant %q: attribute %d has %d vertices, attribute %d has %d",
				v.Name, a.Location, len(a.Data), v.Attributes[0].Location, len(v.Attributes[0].Data))
		}
		if locations[a.Location] {
			return fmt.Errorf("variant %q: attribute location %d used twice", v.Name, a.Location)
		}
		locations[a.Location] = true
		if a.Name != "" {
			if names[a.Name] {
				return fmt.Errorf("variant %q: attribute name %q used twice", v.Name, a.Name)
			}
			names[a.Name] = true
			named++
		}
	}
	// Either every location is bound by name or none is.
	if named != 0 && named != len(v.Attributes) {
		return fmt.Errorf("variant %q: %d of %d attributes are named", v.Name, named, len(v.Attributes))
	}
	if len(v.Attributes[0].Data) == 0 {
		return fmt.Errorf("variant %q: no vertices", v.Name)
	}
	return nil
}

// Geometry returns the vertex streams of the variant.
func (v Variant) Geometry() Geometry {
	return Geometry{
		Attributes:  v.Attributes,
		VertexCount: len(v.Attributes[0].Data),
	}
}

// LookupVariant returns the built-in variant called name.
func LookupVariant(name string) (Variant, error) {
	variants, err := ParseVariants(variantsYAML)
	if err != nil {
		return Variant{}, err
	}
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
