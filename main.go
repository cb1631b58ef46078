// trackbench compares object-tracking strategies on the same video:
// the user marks a target on the first frame, every requested method
// tracks it independently, and the run ends with a per-method survival
// summary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fieldvision/trackbench/internal/fsutil"
	"github.com/fieldvision/trackbench/internal/match"
	"github.com/fieldvision/trackbench/internal/report"
	"github.com/fieldvision/trackbench/internal/track"
	"github.com/fieldvision/trackbench/internal/version"
	"github.com/fieldvision/trackbench/internal/video"
)

var (
	videoPath   = flag.String("video", "", "Path to the input video file")
	methodList  = flag.String("methods", "template,csrt,kcf,mosse", "Comma-separated tracking methods to run")
	chartPath   = flag.String("chart", "", "Optional path for an HTML survival chart")
	dbPath      = flag.String("db", "", "Optional SQLite database to record run summaries")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

// methodNames lists the supported methods in their default order.
var methodNames = []string{"template", "csrt", "kcf", "mosse"}

// parseMethods splits and validates the --methods flag, dropping
// duplicates while preserving the requested order.
func parseMethods(list string) ([]string, error) {
	known := make(map[string]bool, len(methodNames))
	for _, n := range methodNames {
		known[n] = true
	}

	var names []string
	seen := make(map[string]bool)
	for _, raw := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown tracking method %q (supported: %s)", name, strings.Join(methodNames, ", "))
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, errors.New("no tracking methods requested")
	}
	return names, nil
}

// newMethod maps a method name to its constructor. The template method
// is built by the core; everything else wraps an OpenCV tracker.
func newMethod(name string) (track.Method, error) {
	if name == "template" {
		return match.NewMethod(), nil
	}
	return video.NewTracker(name)
}

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if err := run(); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run() error {
	if *videoPath == "" {
		return errors.New("--video is required")
	}
	names, err := parseMethods(*methodList)
	if err != nil {
		return err
	}

	capture, err := video.OpenCapture(*videoPath)
	if err != nil {
		return err
	}
	defer capture.Close()

	first, ok := capture.Next()
	if !ok {
		return errors.New("could not read first frame from video")
	}

	log.Printf("[INFO] drag a box around the target, then press ENTER or SPACE to confirm, or 'c' to cancel")
	roi := video.SelectROI(first)
	if roi.Dx() <= 0 || roi.Dy() <= 0 {
		return track.ErrEmptySelection
	}

	methods := make([]track.Method, 0, len(names))
	for _, name := range names {
		m, err := newMethod(name)
		if err != nil {
			log.Printf("[WARN] could not create tracker %q: %v", name, err)
			continue
		}
		methods = append(methods, m)
	}
	defer func() {
		for _, m := range methods {
			if c, ok := m.(io.Closer); ok {
				c.Close()
			}
		}
	}()

	session, err := track.NewSession(first, roi, methods)
	if err != nil {
		return err
	}

	window := video.NewWindow("Tracking comparison")
	defer window.Close()

	summary := session.Run(capture, window)

	if err := report.Write(os.Stdout, summary); err != nil {
		return err
	}
	if *chartPath != "" {
		if err := report.WriteChart(fsutil.OSFileSystem{}, *chartPath, summary); err != nil {
			log.Printf("[WARN] could not write survival chart: %v", err)
		}
	}
	if *dbPath != "" {
		if err := recordRun(*dbPath, *videoPath, summary); err != nil {
			log.Printf("[WARN] could not record run: %v", err)
		}
	}
	return nil
}

func recordRun(dbPath, videoPath string, summary track.Summary) error {
	store, err := report.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.RecordRun(videoPath, summary)
	if err != nil {
		return err
	}
	log.Printf("[INFO] recorded run %s", runID)
	return nil
}
