package hexsketch

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type Stats struct {
	Counts [len(opKindNames)]int
	Wraps  int
	Points int
	// Manhattan length over consecutive points, including the jumps that
	// follow a wrap.
	Length int
}

// Analyse summarises a run. ops and path are expected to come from the same
// input, as returned by Canvas.Sketch.
func Analyse(ops []Operation, path Path) Stats {
	s := Stats{
		Wraps:  path.Wraps,
		Points: len(path.Points),
	}
	for _, op := range ops {
		if int(op.Kind) < len(s.Counts) {
			s.Counts[op.Kind]++
		}
	}
	for i := 1; i < len(path.Points); i++ {
		s.Length += manhattan(path.Points[i-1], path.Points[i])
	}
	return s
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s Stats) Count(kind OpKind) int {
	if int(kind) >= len(s.Counts) {
		return 0
	}
	return s.Counts[kind]
}

func (s Stats) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Operation Mix",
		Subtitle: strconv.Itoa(s.Points) + " points, " +
			strconv.Itoa(s.Wraps) + " wraps, length " + strconv.Itoa(s.Length),
	}))

	labels := make([]string, len(s.Counts))
	items := make([]opts.BarData, len(s.Counts))
	for kind, count := range s.Counts {
		labels[kind] = OpKind(kind).String()
		items[kind] = opts.BarData{Value: count}
	}

	bar.SetXAxis(labels).AddSeries("Operations", items)
	return bar.Render(w)
}
