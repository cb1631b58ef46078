package track

import (
	"image"
	"image/color"
)

// Frame is one decoded video frame handed to every method in turn.
// Implementations carry their decoder's native handle; Gray exposes a
// grayscale view for appearance-based methods. A Frame is only valid
// until the source produces the next one.
type Frame interface {
	Gray() *image.Gray
}

// Method is one tracking strategy under comparison. Init binds the
// method to the target region on the first frame and reports whether
// the method is usable; Update reports the target region on a
// subsequent frame, or ok=false once the method has lost the target.
// Each method carries its own display label and color; the update loop
// never branches on method identity.
type Method interface {
	Name() string
	Color() color.RGBA
	Init(first Frame, roi image.Rectangle) bool
	Update(f Frame) (image.Rectangle, bool)
}

// Scorer is implemented by methods that expose a per-frame match
// confidence. The confidence is appended to the overlay label.
type Scorer interface {
	LastScore() float64
}

// Overlay is one annotation to draw on the displayed frame.
type Overlay struct {
	Region image.Rectangle
	Label  string
	Color  color.RGBA
}

// Source supplies an ordered sequence of frames. Next reports false
// when the stream is exhausted.
type Source interface {
	Next() (Frame, bool)
}

// Display presents an annotated frame and polls for a user-initiated
// quit request. Returning true stops the run loop after the current
// frame.
type Display interface {
	Show(f Frame, overlays []Overlay) bool
}
