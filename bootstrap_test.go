package triangle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer stands in for the GL renderer.
type fakeRenderer struct {
	calls      *[]string
	nextShader uint32
	compileErr map[ShaderStage]error
	released   bool
	discarded  []uint32
	linkedWith []Attribute
}

func (r *fakeRenderer) Clear() { *r.calls = append(*r.calls, "clear") }
func (r *fakeRenderer) Draw()  { *r.calls = append(*r.calls, "draw") }

func (r *fakeRenderer) Upload(geom Geometry) error {
	*r.calls = append(*r.calls, fmt.Sprintf("upload %d", geom.VertexCount))
	return nil
}

func (r *fakeRenderer) Compile(src ShaderSource) (uint32, error) {
	*r.calls = append(*r.calls, "compile "+src.Stage.String())
	if err := r.compileErr[src.Stage]; err != nil {
		return 0, err
	}
	r.nextShader++
	return r.nextShader, nil
}

func (r *fakeRenderer) Link(vs, fs uint32, attrs []Attribute) error {
	*r.calls = append(*r.calls, fmt.Sprintf("link %d %d", vs, fs))
	r.linkedWith = attrs
	return nil
}

func (r *fakeRenderer) DiscardShader(shader uint32) { r.discarded = append(r.discarded, shader) }
func (r *fakeRenderer) Release()                    { r.released = true }

type bootstrapFixture struct {
	b        *Bootstrap
	out      *bytes.Buffer
	calls    *[]string
	window   *fakeWindow
	renderer *fakeRenderer
}

// newFixture builds a bootstrap for the shaded variant with its shaders copied
// to a temp dir. The window closes itself after frames presents.
func newFixture(t *testing.T, frames int) *bootstrapFixture {
	t.Helper()
	v, err := LookupVariant("shaded")
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{v.VertexShader, v.FragmentShader} {
		data, err := os.ReadFile(filepath.Join("cmd", "shadedtriangle", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	v.VertexShader = filepath.Join(dir, v.VertexShader)
	v.FragmentShader = filepath.Join(dir, v.FragmentShader)

	f := &bootstrapFixture{out: &bytes.Buffer{}, calls: &[]string{}}
	f.window = &fakeWindow{maxFrames: frames, calls: f.calls}
	f.renderer = &fakeRenderer{calls: f.calls, compileErr: map[ShaderStage]error{}}

	f.b = NewBootstrap(v, newLogger("shaded", true, f.out, f.out))
	f.b.openWindow = func(Variant, Logger) (Window, error) { return f.window, nil }
	f.b.newRenderer = func(Variant, Logger) (SceneRenderer, error) { return f.renderer, nil }
	return f
}

func (f *bootstrapFixture) transitions() []string {
	var out []string
	for _, line := range strings.Split(f.out.String(), "\n") {
		if i := strings.Index(line, "DEBUG: "); i >= 0 && strings.Contains(line, " -> ") {
			out = append(out, line[i+len("DEBUG: "):])
		}
	}
	return out
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "Uninitialized", Uninitialized.String())
	assert.Equal(t, "ShadersLinked", ShadersLinked.String())
	assert.Equal(t, "Terminated", Terminated.String())
	assert.Equal(t, "Stage(42)", Stage(42).String())
}

func TestExecuteSuccess(t *testing.T) {
	f := newFixture(t, 2)

	assert.Equal(t, ExitSuccess, f.b.Execute())
	assert.Equal(t, Terminated, f.b.Stage())
	assert.Equal(t, []string{
		"Uninitialized -> ContextReady",
		"ContextReady -> GeometryLoaded",
		"GeometryLoaded -> ShadersLinked",
		"ShadersLinked -> Running",
		"Running -> Closing",
		"Closing -> Terminated",
	}, f.transitions())

	assert.Equal(t, []string{
		"upload 3",
		"compile vertex",
		"compile fragment",
		"link 1 2",
		"clear", "draw", "swap", "poll",
		"clear", "draw", "swap", "poll",
	}, *f.calls)
	assert.Equal(t, f.b.variant.Attributes, f.renderer.linkedWith)
	assert.True(t, f.renderer.released)
	assert.True(t, f.window.destroyed)
}

func TestExecuteWindowFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"init", fmt.Errorf("%w: no display", ErrWindowSystemInit), ExitInitFail},
		{"create", fmt.Errorf("%w: no 4.1 context", ErrWindowCreate), ExitWindowFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			f.b.openWindow = func(Variant, Logger) (Window, error) { return nil, tt.err }

			assert.Equal(t, tt.want, f.b.Execute())
			assert.Equal(t, Terminated, f.b.Stage())
			assert.Equal(t, []string{"Uninitialized -> Terminated"}, f.transitions())
			assert.Equal(t, 1, strings.Count(f.out.String(), "ERROR:"))
			assert.Empty(t, *f.calls)
		})
	}
}

func TestExecuteGLInitFailureDestroysWindow(t *testing.T) {
	f := newFixture(t, 1)
	f.b.newRenderer = func(Variant, Logger) (SceneRenderer, error) {
		return nil, fmt.Errorf("%w: gl.Init: no entry points", ErrWindowCreate)
	}

	assert.Equal(t, ExitWindowFail, f.b.Execute())
	assert.True(t, f.window.destroyed)
}

func TestExecuteMissingShaderStopsBeforeRendering(t *testing.T) {
	f := newFixture(t, 1)
	require.NoError(t, os.Remove(f.b.variant.FragmentShader))

	assert.Equal(t, ExitFailure, f.b.Execute())
	assert.Equal(t, []string{"upload 3"}, *f.calls)
	assert.Contains(t, f.out.String(), "shadedTriangle.frag could not be opened")
	assert.Equal(t, []string{
		"Uninitialized -> ContextReady",
		"ContextReady -> GeometryLoaded",
		"GeometryLoaded -> Terminated",
	}, f.transitions())
	assert.True(t, f.renderer.released)
	assert.True(t, f.window.destroyed)
}

func TestExecuteFragmentCompileFailureDiscardsVertex(t *testing.T) {
	f := newFixture(t, 1)
	f.renderer.compileErr[FragmentStage] = &BuildError{What: "fragment shader", Log: "syntax error"}

	assert.Equal(t, ExitFailure, f.b.Execute())
	assert.Equal(t, []uint32{1}, f.renderer.discarded)
	assert.Equal(t, []string{"upload 3", "compile vertex", "compile fragment"}, *f.calls)
	assert.Contains(t, f.out.String(), "failed to build fragment shader: syntax error")
}

func TestMainUnknownVariant(t *testing.T) {
	assert.Equal(t, ExitFailure, Main("nope"))
}

func TestCleanupWithoutWindow(t *testing.T) {
	b := NewBootstrap(Variant{Name: "test"}, NewNopLogger())
	b.Cleanup()
	assert.Equal(t, Terminated, b.Stage())
}
