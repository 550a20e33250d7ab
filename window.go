package triangle

import "fmt"

// Window is the platform window and its current GL context. All methods must
// be called from the thread that opened it.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	// PollEvents processes pending events without blocking and queues key
	// events on Input.
	PollEvents()
	Input() *Input
	// Destroy destroys the window and shuts the windowing system down.
	Destroy()
}

// OpenWindow creates a fixed-size, non-resizable, double-buffered window with
// a 4.1 core context using the variant's backend. Swaps wait for vsync.
func OpenWindow(v Variant, log Logger) (Window, error) {
	switch v.Backend {
	case BackendGLFW, "":
		return openGLFW(v)
	case BackendSDL2:
		return openSDL(v, log)
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrWindowSystemInit, v.Backend)
}
