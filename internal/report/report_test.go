package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldvision/trackbench/internal/fsutil"
	"github.com/fieldvision/trackbench/internal/track"
)

func sampleSummary() track.Summary {
	return track.Summary{
		TotalFrames: 100,
		Results: []track.Result{
			{Name: "template", Survived: 42},
			{Name: "csrt", Survived: 100},
			{Name: "kcf", Survived: 7},
		},
	}
}

func TestWrite_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSummary()))

	want := strings.Join([]string{
		"",
		"=== Tracking survival summary ===",
		"Total frames processed: 100",
		"template : survived 42 / 100 frames",
		"csrt     : survived 100 / 100 frames",
		"kcf      : survived 7 / 100 frames",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_NoTrackers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, track.Summary{}))
	assert.Contains(t, buf.String(), "Total frames processed: 0")
}

func TestWriteChart(t *testing.T) {
	t.Parallel()

	fsys := fsutil.NewMemoryFileSystem()
	require.NoError(t, WriteChart(fsys, "survival.html", sampleSummary()))

	data, err := fsys.ReadFile("survival.html")
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Tracker survival")
	assert.Contains(t, html, "100 frames processed")
	for _, name := range []string{"template", "csrt", "kcf"} {
		assert.Contains(t, html, name)
	}
}
