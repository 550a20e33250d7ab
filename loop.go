package triangle

// RunLoop renders until the window's close flag is set and returns the number
// of frames presented. SwapBuffers blocks on vsync, which is the only throttle.
// An Escape press seen while polling sets the close flag, so the loop ends
// before the next frame.
func RunLoop(win Window, dev FrameDevice, log Logger) int {
	frames := 0
	for !win.ShouldClose() {
		dev.Clear()
		dev.Draw()

		win.SwapBuffers()
		win.PollEvents()
		frames++

		if CloseRequested(win.Input().Drain()) {
			log.Debugf("escape pressed after %d frames", frames)
			win.SetShouldClose(true)
		}
	}
	return frames
}
