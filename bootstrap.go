package triangle

import (
	"fmt"
)

// Stage is the bootstrap's position in its setup sequence.
type Stage int

const (
	Uninitialized Stage = iota
	ContextReady
	GeometryLoaded
	ShadersLinked
	Running
	Closing
	Terminated
)

var stageNames = [...]string{
	Uninitialized:  "Uninitialized",
	ContextReady:   "ContextReady",
	GeometryLoaded: "GeometryLoaded",
	ShadersLinked:  "ShadersLinked",
	Running:        "Running",
	Closing:        "Closing",
	Terminated:     "Terminated",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Bootstrap opens the window, uploads a variant's geometry, builds its
// program and runs the frame loop. Every step must run on the main thread.
type Bootstrap struct {
	variant  Variant
	log      Logger
	stage    Stage
	window   Window
	renderer SceneRenderer

	openWindow  func(Variant, Logger) (Window, error)
	newRenderer func(Variant, Logger) (SceneRenderer, error)
}

func NewBootstrap(v Variant, log Logger) *Bootstrap {
	return &Bootstrap{
		variant:     v,
		log:         log,
		openWindow:  OpenWindow,
		newRenderer: newGLRenderer,
	}
}

func (b *Bootstrap) Stage() Stage { return b.stage }

func (b *Bootstrap) enter(s Stage) {
	b.log.Debugf("%s -> %s", b.stage, s)
	b.stage = s
}

// Init opens the window and loads the GL entry points.
func (b *Bootstrap) Init() error {
	win, err := b.openWindow(b.variant, b.log)
	if err != nil {
		return err
	}
	b.window = win
	r, err := b.newRenderer(b.variant, b.log)
	if err != nil {
		return err
	}
	b.renderer = r
	b.enter(ContextReady)
	return nil
}

func (b *Bootstrap) LoadGeometry() error {
	if err := b.renderer.Upload(b.variant.Geometry()); err != nil {
		return err
	}
	b.enter(GeometryLoaded)
	return nil
}

// LinkShaders reads both shader files, compiles them and links the program.
func (b *Bootstrap) LinkShaders() error {
	vsSrc, fsSrc, err := LoadShaders(b.variant)
	if err != nil {
		return err
	}
	vs, err := b.renderer.Compile(vsSrc)
	if err != nil {
		return err
	}
	fs, err := b.renderer.Compile(fsSrc)
	if err != nil {
		b.renderer.DiscardShader(vs)
		return err
	}
	if err := b.renderer.Link(vs, fs, b.variant.Attributes); err != nil {
		return err
	}
	b.enter(ShadersLinked)
	return nil
}

func (b *Bootstrap) Run() int {
	b.enter(Running)
	frames := RunLoop(b.window, b.renderer, b.log)
	b.enter(Closing)
	return frames
}

// Cleanup releases GL objects and destroys the window. Safe after a failed
// Init.
func (b *Bootstrap) Cleanup() {
	if b.renderer != nil {
		b.renderer.Release()
		b.renderer = nil
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
	b.enter(Terminated)
}

// Execute runs setup, the frame loop and cleanup, and returns the process
// exit status. Fatal errors are logged here and nowhere else.
func (b *Bootstrap) Execute() int {
	if err := b.setup(); err != nil {
		b.log.Errorf("%s", err)
		b.Cleanup()
		return ExitCode(err)
	}

	frames := b.Run()
	b.log.Debugf("presented %d frames", frames)
	b.Cleanup()
	return ExitSuccess
}

func (b *Bootstrap) setup() error {
	if err := b.Init(); err != nil {
		return err
	}
	if err := b.LoadGeometry(); err != nil {
		return err
	}
	return b.LinkShaders()
}

// Main runs the named built-in variant and returns the process exit status.
func Main(variant string) int {
	log := NewDefaultLogger(variant, false)

	v, err := LookupVariant(variant)
	if err != nil {
		log.Errorf("%s", err)
		return ExitCode(err)
	}
	log.SetDebug(v.Debug)

	return NewBootstrap(v, log).Execute()
}
