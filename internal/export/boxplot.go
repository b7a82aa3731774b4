package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/emiliopalmerini/genex/internal/domain"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 500

	boxHalfWidth = 0.25
	capHalfWidth = 0.1
)

// ErrNoSamples is returned when no group has values to plot.
var ErrNoSamples = errors.New("no expression samples to plot")

var groupColors = map[string]drawing.Color{
	"Healthy":  drawing.ColorFromHex("2196F3"),
	"Diseased": drawing.ColorFromHex("F44336"),
}

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    3,
		DotColor:    col.WithAlpha(160),
	}
}

func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: width,
		StrokeColor: col,
	}
}

// BoxPlotPNG writes a vertical box-and-whisker chart of the groups, one box
// per group on a shared y axis, with every sample drawn as a point.
func BoxPlotPNG(w io.Writer, title string, groups []domain.SampleGroup, width, height int) error {
	var (
		series []chart.Series
		ticks  []chart.Tick
		lo, hi float64
		plotted int
	)

	for i, g := range groups {
		s, err := domain.Summarize(g.Values)
		if errors.Is(err, domain.ErrEmptyGroup) {
			continue
		}
		if err != nil {
			return fmt.Errorf("summarize %s: %w", g.Name, err)
		}

		if plotted == 0 || s.Min < lo {
			lo = s.Min
		}
		if plotted == 0 || s.Max > hi {
			hi = s.Max
		}
		plotted++

		x := float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%s (n=%d)", g.Name, s.N)})
		series = append(series, boxSeries(x, g, s, colorFor(g.Name))...)
	}
	if plotted == 0 {
		return ErrNoSamples
	}

	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}

	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(len(groups)) + 0.5},
			Ticks: append([]chart.Tick{{Value: 0.5}}, append(ticks, chart.Tick{Value: float64(len(groups)) + 0.5})...),
		},
		YAxis: chart.YAxis{
			Name:  "Expression",
			Range: &chart.ContinuousRange{Min: lo - pad, Max: hi + pad},
		},
		Series: series,
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func boxSeries(x float64, g domain.SampleGroup, s domain.BoxSummary, col drawing.Color) []chart.Series {
	left, right := x-boxHalfWidth, x+boxHalfWidth

	out := []chart.Series{
		chart.ContinuousSeries{
			Name:    g.Name,
			XValues: []float64{left, right, right, left, left},
			YValues: []float64{s.Q1, s.Q1, s.Q3, s.Q3, s.Q1},
			Style:   lineStyle(col, 2),
		},
		chart.ContinuousSeries{
			XValues: []float64{left, right},
			YValues: []float64{s.Median, s.Median},
			Style:   lineStyle(col, 4),
		},
		chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{s.LowerWhisker, s.Q1},
			Style:   lineStyle(col, 1),
		},
		chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{s.Q3, s.UpperWhisker},
			Style:   lineStyle(col, 1),
		},
		chart.ContinuousSeries{
			XValues: []float64{x - capHalfWidth, x + capHalfWidth},
			YValues: []float64{s.LowerWhisker, s.LowerWhisker},
			Style:   lineStyle(col, 1),
		},
		chart.ContinuousSeries{
			XValues: []float64{x - capHalfWidth, x + capHalfWidth},
			YValues: []float64{s.UpperWhisker, s.UpperWhisker},
			Style:   lineStyle(col, 1),
		},
	}

	// Spread samples sideways so equal values stay visible.
	xs := make([]float64, len(g.Values))
	for i := range g.Values {
		xs[i] = x + float64(i%5-2)*0.04
	}
	out = append(out, chart.ContinuousSeries{
		XValues: xs,
		YValues: append([]float64(nil), g.Values...),
		Style:   pointStyle(col),
	})

	return out
}

func colorFor(name string) drawing.Color {
	if c, ok := groupColors[name]; ok {
		return c
	}
	return chart.ColorAlternateGray
}
