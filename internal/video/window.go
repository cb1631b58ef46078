package video

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/fieldvision/trackbench/internal/track"
)

// displayDelayMs is how long Show blocks waiting for a key event
// before resuming the loop.
const displayDelayMs = 30

// Window displays annotated frames and polls for the quit keys.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a named display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show draws each overlay's bounding box and label onto a copy of the
// frame, presents it, and polls the keyboard once. It reports true
// when the user pressed 'q' or ESC.
func (w *Window) Show(f track.Frame, overlays []track.Overlay) bool {
	vf, ok := f.(*Frame)
	if !ok {
		return false
	}

	display := vf.Mat.Clone()
	defer display.Close()

	for _, o := range overlays {
		gocv.Rectangle(&display, o.Region, o.Color, 2)
		org := image.Pt(o.Region.Min.X, max(o.Region.Min.Y-10, 0))
		gocv.PutText(&display, o.Label, org, gocv.FontHersheySimplex, 0.5, o.Color, 1)
	}

	w.win.IMShow(display)
	key := w.win.WaitKey(displayDelayMs)
	return key == 27 || key == 'q'
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
