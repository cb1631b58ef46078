// Package report renders the outcome of a finished tracking session:
// the plain-text survival summary, an optional HTML chart, and an
// optional SQLite archive of run results.
package report

import (
	"fmt"
	"io"

	"github.com/fieldvision/trackbench/internal/track"
)

// Write prints the survival summary, one line per initialized tracker
// in initialization order.
func Write(w io.Writer, s track.Summary) error {
	if _, err := fmt.Fprintf(w, "\n=== Tracking survival summary ===\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total frames processed: %d\n", s.TotalFrames); err != nil {
		return err
	}
	for _, r := range s.Results {
		if _, err := fmt.Fprintf(w, "%-9s: survived %d / %d frames\n", r.Name, r.Survived, s.TotalFrames); err != nil {
			return err
		}
	}
	return nil
}
