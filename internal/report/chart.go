package report

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fieldvision/trackbench/internal/fsutil"
	"github.com/fieldvision/trackbench/internal/track"
)

// WriteChart renders a bar chart of per-method survival to a
// standalone HTML file at path.
func WriteChart(fsys fsutil.FileSystem, path string, s track.Summary) error {
	names := make([]string, 0, len(s.Results))
	data := make([]opts.BarData, 0, len(s.Results))
	for _, r := range s.Results {
		names = append(names, r.Name)
		data = append(data, opts.BarData{Value: r.Survived})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Tracker survival"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Tracker survival",
			Subtitle: fmt.Sprintf("%d frames processed", s.TotalFrames),
		}),
	)
	bar.SetXAxis(names).AddSeries("survived frames", data)

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("could not create chart file: %w", err)
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("could not render chart: %w", err)
	}
	return f.Close()
}
