package triangle

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	win   *glfw.Window
	input Input
}

func openGLFW(v Variant) (Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowSystemInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile) // macOS only offers core
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	win, err := glfw.CreateWindow(v.Width, v.Height, v.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &glfwWindow{win: win}
	win.SetKeyCallback(w.onKey)
	return w, nil
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w.input.Push(translateGLFWKey(key, action))
}

func translateGLFWKey(key glfw.Key, action glfw.Action) KeyEvent {
	ev := KeyEvent{Key: KeyUnknown, Action: Release}
	if key == glfw.KeyEscape {
		ev.Key = KeyEscape
	}
	switch action {
	case glfw.Press:
		ev.Action = Press
	case glfw.Repeat:
		ev.Action = Repeat
	}
	return ev
}

func (w *glfwWindow) ShouldClose() bool     { return w.win.ShouldClose() }
func (w *glfwWindow) SetShouldClose(v bool) { w.win.SetShouldClose(v) }
func (w *glfwWindow) SwapBuffers()          { w.win.SwapBuffers() }
func (w *glfwWindow) PollEvents()           { glfw.PollEvents() }
func (w *glfwWindow) Input() *Input         { return &w.input }

func (w *glfwWindow) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
