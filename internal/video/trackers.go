package video

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"github.com/fieldvision/trackbench/internal/track"
)

// cvTracker is the slice of the OpenCV tracker surface the builtin
// methods need.
type cvTracker interface {
	Init(img gocv.Mat, boundingBox image.Rectangle) bool
	Update(img gocv.Mat) (image.Rectangle, bool)
	Close() error
}

// builtin wraps one opaque OpenCV tracking algorithm as a track.Method.
type builtin struct {
	name string
	col  color.RGBA
	trk  cvTracker
}

// NewTracker constructs the named OpenCV-backed tracking method. The
// supported names are csrt, kcf, and mosse; the template method is not
// built here since it carries no OpenCV handle.
func NewTracker(name string) (track.Method, error) {
	switch name {
	case "csrt":
		return &builtin{name: name, col: color.RGBA{R: 255, A: 255}, trk: contrib.NewTrackerCSRT()}, nil
	case "kcf":
		return &builtin{name: name, col: color.RGBA{B: 255, A: 255}, trk: contrib.NewTrackerKCF()}, nil
	case "mosse":
		return &builtin{name: name, col: color.RGBA{R: 255, G: 255, A: 255}, trk: contrib.NewTrackerMOSSE()}, nil
	}
	return nil, fmt.Errorf("unknown tracker type %q", name)
}

func (b *builtin) Name() string { return b.name }

func (b *builtin) Color() color.RGBA { return b.col }

func (b *builtin) Init(first track.Frame, roi image.Rectangle) bool {
	vf, ok := first.(*Frame)
	if !ok {
		return false
	}
	return b.trk.Init(vf.Mat, roi)
}

func (b *builtin) Update(f track.Frame) (image.Rectangle, bool) {
	vf, ok := f.(*Frame)
	if !ok {
		return image.Rectangle{}, false
	}
	return b.trk.Update(vf.Mat)
}

// Close releases the underlying OpenCV tracker.
func (b *builtin) Close() error {
	return b.trk.Close()
}
