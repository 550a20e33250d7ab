package triangle

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// FrameDevice is what the frame loop needs from the graphics side.
type FrameDevice interface {
	Clear()
	Draw()
}

// SceneRenderer is the full set of GL steps the bootstrap drives.
type SceneRenderer interface {
	FrameDevice
	Upload(geom Geometry) error
	Compile(src ShaderSource) (uint32, error)
	Link(vs, fs uint32, attrs []Attribute) error
	DiscardShader(shader uint32)
	Release()
}

// programAPI is the slice of GL used to assemble a program.
type programAPI interface {
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, location uint32, name string)
	LinkProgram(program uint32, what string) error
	DetachShader(program, shader uint32)
	DeleteShader(shader uint32)
}

type glProgramAPI struct{}

func (glProgramAPI) CreateProgram() uint32               { return gl.CreateProgram() }
func (glProgramAPI) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (glProgramAPI) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (glProgramAPI) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }

func (glProgramAPI) BindAttribLocation(program, location uint32, name string) {
	gl.BindAttribLocation(program, location, gl.Str(name+"\x00"))
}

func (glProgramAPI) LinkProgram(program uint32, what string) error {
	gl.LinkProgram(program)
	return linkerErrorCheck(program, what)
}

// Renderer owns the GL objects of one triangle: its vertex buffers, the
// vertex array describing them and the linked program.
type Renderer struct {
	api programAPI

	vbos        []uint32
	vao         uint32
	program     uint32
	vertexCount int32
	clearColor  [4]float32
}

func NewRenderer(clearColor [4]float32) *Renderer {
	return &Renderer{api: glProgramAPI{}, clearColor: clearColor}
}

// newGLRenderer loads the GL entry points for the current context and returns
// a renderer bound to it.
func newGLRenderer(v Variant, log Logger) (SceneRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: gl.Init: %v", ErrWindowCreate, err)
	}
	log.Infof("Renderer %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Infof("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return NewRenderer(v.ClearColor), nil
}

// Upload creates one static buffer per attribute stream and a vertex array
// binding each to its location with a tightly packed 3-float layout.
func (r *Renderer) Upload(geom Geometry) error {
	r.vbos = make([]uint32, len(geom.Attributes))
	gl.GenBuffers(int32(len(r.vbos)), &r.vbos[0])
	for i, attr := range geom.Attributes {
		data := attr.Floats()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, attr.ByteSize(), gl.Ptr(data), gl.STATIC_DRAW)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	for i, attr := range geom.Attributes {
		gl.EnableVertexAttribArray(attr.Location)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[i])
		gl.VertexAttribPointer(attr.Location, int32(attr.Components), gl.FLOAT, false, 0, gl.PtrOffset(0))
	}
	r.vertexCount = int32(geom.VertexCount)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%w: uploading geometry: 0x%x", ErrGPU, code)
	}
	return nil
}

func shaderType(stage ShaderStage) uint32 {
	if stage == FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Compile builds one shader stage and returns its handle.
func (r *Renderer) Compile(src ShaderSource) (uint32, error) {
	shader := gl.CreateShader(shaderType(src.Stage))
	csources, free := gl.Strs(src.CString())
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
	if err := shaderErrorCheck(shader, fmt.Sprintf("%s shader %s", src.Stage, src.Path)); err != nil {
		r.DiscardShader(shader)
		return 0, err
	}
	return shader, nil
}

// Link attaches both stages and links the program. Named attributes are bound
// to their locations first, so declaration order in the source is irrelevant.
func (r *Renderer) Link(vs, fs uint32, attrs []Attribute) error {
	r.program = r.api.CreateProgram()
	r.api.AttachShader(r.program, vs)
	r.api.AttachShader(r.program, fs)

	for _, a := range attrs {
		if a.Name == "" {
			continue
		}
		r.api.BindAttribLocation(r.program, a.Location, a.Name)
	}

	err := r.api.LinkProgram(r.program, "shader program")

	r.api.DetachShader(r.program, vs)
	r.api.DetachShader(r.program, fs)
	r.DiscardShader(vs)
	r.DiscardShader(fs)
	return err
}

// DiscardShader deletes a compiled stage that will not be linked.
func (r *Renderer) DiscardShader(shader uint32) {
	if shader != 0 {
		r.api.DeleteShader(shader)
	}
}

func (r *Renderer) Clear() {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) Draw() {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
}

// Release deletes every GL object the renderer created.
func (r *Renderer) Release() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if len(r.vbos) > 0 {
		gl.DeleteBuffers(int32(len(r.vbos)), &r.vbos[0])
		r.vbos = nil
	}
}

func shaderErrorCheck(shader uint32, text string) error {
	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return &BuildError{What: text, Log: strings.TrimRight(log, "\x00")}
	}
	return nil
}

func linkerErrorCheck(program uint32, text string) error {
	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return &BuildError{What: text, Log: strings.TrimRight(log, "\x00")}
	}
	return nil
}
