// Command shadedtriangle draws a triangle with red, green and blue corners in
// a 480x480 window. shadedTriangle.vert and shadedTriangle.frag must be in the
// working directory.
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
	os.Exit(triangle.Main("shaded"))
}
