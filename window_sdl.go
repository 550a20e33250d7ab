package triangle

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

type sdlWindow struct {
	window      *sdl.Window
	context     sdl.GLContext
	input       Input
	shouldClose bool
}

func openSDL(v Variant, log Logger) (Window, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowSystemInit, err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow(v.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(v.Width), int32(v.Height), sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.Warnf("vsync unavailable: %s", err)
	}
	return &sdlWindow{window: window, context: context}, nil
}

func (w *sdlWindow) ShouldClose() bool     { return w.shouldClose }
func (w *sdlWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *sdlWindow) SwapBuffers()          { w.window.GLSwap() }
func (w *sdlWindow) Input() *Input         { return &w.input }

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.KeyboardEvent:
			w.input.Push(translateSDLKey(e))
		}
	}
}

// translateSDLKey maps a keyboard event to a KeyEvent. Auto-repeated key
// downs become Repeat.
func translateSDLKey(e *sdl.KeyboardEvent) KeyEvent {
	ev := KeyEvent{Key: KeyUnknown, Action: Release}
	if e.Keysym.Sym == sdl.K_ESCAPE {
		ev.Key = KeyEscape
	}
	if e.Type == sdl.KEYDOWN {
		ev.Action = Press
		if e.Repeat != 0 {
			ev.Action = Repeat
		}
	}
	return ev
}

func (w *sdlWindow) Destroy() {
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
	sdl.Quit()
}
