// Package match implements grayscale template matching by normalized
// cross-correlation. Unlike the wrapped tracking algorithms it keeps no
// temporal state: every frame is matched independently against the
// original template.
package match

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LossThreshold is the NCC confidence below which the target counts as
// lost. Fixed contract value; there is no hysteresis and no
// re-acquisition once a frame scores below it.
const LossThreshold = 0.5

// Matcher holds the immutable template state: the grayscale pixels
// cropped from the first frame and their precomputed statistics.
type Matcher struct {
	pix  []float64 // template grayscale, row-major
	w, h int
	mean float64
	std  float64 // population standard deviation
}

// New builds a matcher from a grayscale template. The pixels are
// copied; the matcher never observes later changes to tmpl.
func New(tmpl *image.Gray) *Matcher {
	b := tmpl.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = float64(tmpl.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}

	m := &Matcher{pix: pix, w: w, h: h}
	if len(pix) == 0 {
		return m
	}
	n := float64(len(pix))
	m.mean = floats.Sum(pix) / n
	if variance := floats.Dot(pix, pix)/n - m.mean*m.mean; variance > 0 {
		m.std = math.Sqrt(variance)
	}
	return m
}

// Size returns the template dimensions in pixels.
func (m *Matcher) Size() (w, h int) {
	return m.w, m.h
}

// Match slides the template over frame and returns the best normalized
// cross-correlation score in [-1,1] together with its top-left
// location. It is a pure function of its inputs: the same frame always
// yields the same score and location. A score of -1 with the zero
// point is returned when no window can be scored (frame smaller than
// the template, or a flat template or frame, which leave the
// correlation undefined).
func (m *Matcher) Match(frame *image.Gray) (float64, image.Point) {
	if frame == nil || m.w == 0 || m.h == 0 || m.std <= 0 {
		return -1, image.Point{}
	}
	fb := frame.Bounds()
	fw, fh := fb.Dx(), fb.Dy()
	if fw < m.w || fh < m.h {
		return -1, image.Point{}
	}

	gray, integral, integralSq := framePlanes(frame)

	n := float64(m.w * m.h)
	best := math.Inf(-1)
	var bestPt image.Point
	for y := 0; y <= fh-m.h; y++ {
		for x := 0; x <= fw-m.w; x++ {
			sumF := rectSum(integral, fw, x, y, x+m.w-1, y+m.h-1)
			sumF2 := rectSum(integralSq, fw, x, y, x+m.w-1, y+m.h-1)
			meanF := sumF / n
			varF := sumF2/n - meanF*meanF
			if varF <= 0 {
				continue
			}

			var cross float64
			for ty := 0; ty < m.h; ty++ {
				row := gray[(y+ty)*fw+x : (y+ty)*fw+x+m.w]
				cross += floats.Dot(row, m.pix[ty*m.w:(ty+1)*m.w])
			}

			score := (cross - n*meanF*m.mean) / (n * math.Sqrt(varF) * m.std)
			if score > best {
				best = score
				bestPt = image.Pt(x+fb.Min.X, y+fb.Min.Y)
			}
		}
	}
	if math.IsInf(best, -1) {
		return -1, image.Point{}
	}
	return best, bestPt
}

// framePlanes converts the frame to float grayscale and builds
// summed-area tables of the values and their squares, giving O(1)
// window mean and variance queries during the scan.
func framePlanes(frame *image.Gray) (gray, integral, integralSq []float64) {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	gray = make([]float64, w*h)
	integral = make([]float64, w*h)
	integralSq = make([]float64, w*h)

	for y := 0; y < h; y++ {
		var rowSum, rowSumSq float64
		for x := 0; x < w; x++ {
			v := float64(frame.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			off := y*w + x
			gray[off] = v
			rowSum += v
			rowSumSq += v * v
			if y == 0 {
				integral[off] = rowSum
				integralSq[off] = rowSumSq
			} else {
				integral[off] = integral[off-w] + rowSum
				integralSq[off] = integralSq[off-w] + rowSumSq
			}
		}
	}
	return gray, integral, integralSq
}

// rectSum returns the inclusive sum over [x0..x1]x[y0..y1] from a
// summed-area table stored row-major with width w.
func rectSum(table []float64, w, x0, y0, x1, y1 int) float64 {
	at := func(x, y int) float64 {
		if x < 0 || y < 0 {
			return 0
		}
		return table[y*w+x]
	}
	return at(x1, y1) - at(x0-1, y1) - at(x1, y0-1) + at(x0-1, y0-1)
}
