// Package viz renders runs in the terminal: a dot progress printer,
// asciigraph series plots, and a bubbletea live view.
package viz

import (
	"fmt"
	"io"
)

// DotProgress prints one dot per progress notification, the way the
// generator's verbose mode has always looked. A restart (step moving
// backwards) prints a recalculating notice.
type DotProgress struct {
	w        io.Writer
	lastStep int
	started  bool
}

func NewDotProgress(w io.Writer) *DotProgress {
	return &DotProgress{w: w, lastStep: -1}
}

func (d *DotProgress) OnProgress(step, total int, _ []float64) {
	if d.started && step <= d.lastStep {
		fmt.Fprint(d.w, " recalculating... ")
	}
	d.started = true
	d.lastStep = step
	fmt.Fprint(d.w, ".")
	if step == total {
		fmt.Fprintln(d.w)
	}
}
