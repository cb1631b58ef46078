package video

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/fieldvision/trackbench/internal/track"
)

// SelectROI prompts the user to drag a rectangle around the target on
// the given frame and confirm with ENTER or SPACE, or cancel with 'c'.
// A cancelled or degenerate selection returns the empty rectangle
// sentinel; callers must not start a session with it.
func SelectROI(f track.Frame) image.Rectangle {
	vf, ok := f.(*Frame)
	if !ok {
		return image.Rectangle{}
	}
	win := gocv.NewWindow("Select ROI")
	defer win.Close()
	return gocv.SelectROI("Select ROI", vf.Mat)
}
