// Command simpletriangle draws a flat-colored triangle in a 240x240 window.
// simpleTriangle.vert and simpleTriangle.frag must be in the working directory.
package main

import (
	"os"
	"runtime"

	triangle "github.com/tehcyx/gotriangle"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(triangle.Main("simple"))
}
