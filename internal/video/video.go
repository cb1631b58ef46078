// Package video is the OpenCV boundary: frame capture, interactive
// region selection, the annotated display window, and the wrapped
// tracking algorithms. Everything here is thin glue around gocv; the
// orchestration logic lives in internal/track.
package video

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/fieldvision/trackbench/internal/track"
)

// Frame wraps one decoded BGR frame. The grayscale view is converted
// lazily and cached for the frame's lifetime.
type Frame struct {
	Mat  gocv.Mat
	gray *image.Gray
}

// Gray returns the frame as 8-bit grayscale. Returns an empty image
// when the conversion fails, which downstream matchers treat as an
// unscorable frame.
func (f *Frame) Gray() *image.Gray {
	if f.gray != nil {
		return f.gray
	}
	grayMat := gocv.NewMat()
	defer grayMat.Close()
	gocv.CvtColor(f.Mat, &grayMat, gocv.ColorBGRToGray)

	img, err := grayMat.ToImage()
	if err != nil {
		f.gray = &image.Gray{}
		return f.gray
	}
	g, ok := img.(*image.Gray)
	if !ok {
		f.gray = &image.Gray{}
		return f.gray
	}
	f.gray = g
	return f.gray
}

// Capture reads frames from a stored video file.
type Capture struct {
	cap *gocv.VideoCapture
	mat gocv.Mat
}

// OpenCapture opens the video file at path.
func OpenCapture(path string) (*Capture, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open video %q: %w", path, err)
	}
	return &Capture{cap: cap, mat: gocv.NewMat()}, nil
}

// Next reads the next frame. The returned frame shares the capture's
// buffer and is only valid until the following call to Next; the loop
// fully processes each frame before reading the next one.
func (c *Capture) Next() (track.Frame, bool) {
	if ok := c.cap.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, false
	}
	return &Frame{Mat: c.mat}, true
}

// Close releases the capture and its frame buffer.
func (c *Capture) Close() error {
	if err := c.mat.Close(); err != nil {
		return err
	}
	return c.cap.Close()
}
