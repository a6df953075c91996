// cubesolver - algebraic Rubik's cube solver with solve recording and live
// smart cube tracking.
package main

import (
	"github.com/SeamusWaldron/gocube_solver_library/internal/cli"
)

func main() {
	cli.Execute()
}
