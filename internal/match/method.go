package match

import (
	"image"
	"image/color"

	"github.com/fieldvision/trackbench/internal/track"
)

// Method adapts the matcher to the orchestrator's Method interface.
// The update loop treats it exactly like the wrapped tracking
// algorithms.
type Method struct {
	matcher *Matcher
	score   float64
}

// NewMethod returns an uninitialized template method. The template is
// cropped from the first frame in Init.
func NewMethod() *Method {
	return &Method{}
}

func (t *Method) Name() string { return "template" }

func (t *Method) Color() color.RGBA { return color.RGBA{G: 255, A: 255} }

// Init crops the template at roi from the first frame's grayscale
// view. Template initialization is unconditional: it has no model to
// train and cannot fail on a valid frame.
func (t *Method) Init(first track.Frame, roi image.Rectangle) bool {
	gray := first.Gray()
	if gray == nil {
		return false
	}
	tmpl, ok := gray.SubImage(roi.Intersect(gray.Bounds())).(*image.Gray)
	if !ok {
		return false
	}
	t.matcher = New(tmpl)
	return true
}

// Update matches the frame against the fixed template. A confidence
// below LossThreshold reports the target as lost.
func (t *Method) Update(f track.Frame) (image.Rectangle, bool) {
	score, loc := t.matcher.Match(f.Gray())
	t.score = score
	if score < LossThreshold {
		return image.Rectangle{}, false
	}
	w, h := t.matcher.Size()
	return image.Rect(loc.X, loc.Y, loc.X+w, loc.Y+h), true
}

// LastScore reports the confidence of the most recent Update.
func (t *Method) LastScore() float64 { return t.score }
