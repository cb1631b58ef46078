package track

import (
	"errors"
	"fmt"
	"image"
	"log"
)

var (
	// ErrEmptySelection is returned when the region of interest has
	// zero width or height (the user cancelled the selection).
	ErrEmptySelection = errors.New("empty region selected")

	// ErrNoTrackers is returned when no requested method survives
	// initialization.
	ErrNoTrackers = errors.New("no valid trackers initialized")
)

// Entry holds one method's per-session bookkeeping. Loss is terminal:
// once lost is set the entry is skipped for the remainder of the
// session and survived stops incrementing.
type Entry struct {
	method     Method
	lost       bool
	survived   int
	lastRegion image.Rectangle
}

// Result is one entry's final survival count.
type Result struct {
	Name     string
	Survived int
}

// Summary is the immutable outcome of a finished session. Results keep
// initialization order.
type Summary struct {
	TotalFrames int
	Results     []Result
}

// Session drives a set of tracking methods over one video stream. All
// mutation happens sequentially inside Step; a Session is not safe for
// concurrent use and is never reused across streams.
type Session struct {
	entries []*Entry
	total   int
}

// NewSession initializes every method against the first frame and the
// selected region. Methods that fail to initialize are excluded from
// the session entirely, with a warning; they appear neither in
// per-frame processing nor in the summary. The session fails only when
// the region is degenerate or no method survives initialization.
func NewSession(first Frame, roi image.Rectangle, methods []Method) (*Session, error) {
	if roi.Dx() <= 0 || roi.Dy() <= 0 {
		return nil, ErrEmptySelection
	}

	s := &Session{}
	for _, m := range methods {
		if !m.Init(first, roi) {
			log.Printf("[WARN] could not initialize tracker %q, skipping", m.Name())
			continue
		}
		log.Printf("[INFO] initialized tracker: %s", m.Name())
		s.entries = append(s.entries, &Entry{method: m, lastRegion: roi})
	}
	if len(s.entries) == 0 {
		return nil, ErrNoTrackers
	}
	return s, nil
}

// Step advances every active entry by one frame and returns the
// overlays for the targets still being tracked. An update that fails,
// or that reports a region with non-positive width or height, marks
// the entry lost; there are no retries and no re-acquisition. The
// frame counter increments exactly once per call even when every entry
// is already lost.
func (s *Session) Step(f Frame) []Overlay {
	s.total++

	overlays := make([]Overlay, 0, len(s.entries))
	for _, e := range s.entries {
		if e.lost {
			continue
		}
		region, ok := e.method.Update(f)
		if !ok || region.Dx() <= 0 || region.Dy() <= 0 {
			e.lost = true
			continue
		}
		e.survived++
		e.lastRegion = region
		overlays = append(overlays, Overlay{
			Region: region,
			Label:  overlayLabel(e.method),
			Color:  e.method.Color(),
		})
	}
	return overlays
}

// Run consumes frames from src until the stream is exhausted or the
// display reports a quit request, whichever comes first, and returns
// the session summary. A nil display runs headless.
func (s *Session) Run(src Source, disp Display) Summary {
	for {
		f, ok := src.Next()
		if !ok {
			break
		}
		overlays := s.Step(f)
		if disp != nil && disp.Show(f, overlays) {
			break
		}
	}
	return s.Summary()
}

// Summary reports the totals for every entry ever initialized,
// including entries later lost, in initialization order.
func (s *Session) Summary() Summary {
	sum := Summary{TotalFrames: s.total}
	for _, e := range s.entries {
		sum.Results = append(sum.Results, Result{Name: e.method.Name(), Survived: e.survived})
	}
	return sum
}

func overlayLabel(m Method) string {
	if sc, ok := m.(Scorer); ok {
		return fmt.Sprintf("%s (%.2f)", m.Name(), sc.LastScore())
	}
	return m.Name()
}
