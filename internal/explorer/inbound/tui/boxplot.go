package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

const (
	plotWidth  = 48
	labelWidth = 10
)

// RenderBoxPlot draws one horizontal box-and-whisker row per group on a
// shared axis, with every sample marked on the line below it.
//
//	├───▒▒▒▒┃▒▒▒▒───┤  ○
//	 · ·· ·· · ·· ·    ·
func RenderBoxPlot(groups []domain.SampleGroup, width int) string {
	type row struct {
		group   domain.SampleGroup
		summary domain.BoxSummary
	}

	var rows []row
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, g := range groups {
		summary, err := domain.Summarize(g.Values)
		if err != nil {
			continue
		}
		rows = append(rows, row{g, summary})
		lo = math.Min(lo, summary.Min)
		hi = math.Max(hi, summary.Max)
	}
	if len(rows) == 0 || width < 2 {
		return ""
	}

	// Widen a degenerate axis so a single value lands mid-plot
	if hi == lo {
		lo, hi = lo-1, hi+1
	}

	// Halved so that an axis spanning the whole float64 range stays finite
	span := hi/2 - lo/2
	flat := span == 0 || math.IsNaN(span) || math.IsInf(span, 0)
	last := float64(width - 1)

	pos := func(v float64) int {
		if flat {
			return width / 2
		}
		x := math.Round((v/2 - lo/2) / span * last)
		switch {
		case math.IsNaN(x):
			return width / 2
		case x < 0:
			return 0
		case x > last:
			return width - 1
		}
		return int(x)
	}

	styles := theme.Default()
	pad := strings.Repeat(" ", labelWidth)

	var lines []string
	for _, r := range rows {
		s := r.summary

		plot := blank(width)
		for i := pos(s.LowerWhisker); i <= pos(s.UpperWhisker); i++ {
			plot[i] = '─'
		}
		for i := pos(s.Q1); i <= pos(s.Q3); i++ {
			plot[i] = '▒'
		}
		plot[pos(s.LowerWhisker)] = '├'
		plot[pos(s.UpperWhisker)] = '┤'
		plot[pos(s.Median)] = '┃'
		for _, o := range s.Outliers {
			plot[pos(o)] = '○'
		}

		points := blank(width)
		for _, v := range r.group.Values {
			points[pos(v)] = '·'
		}

		style := styles.Group(r.group.Name)
		label := style.Render(fmt.Sprintf("%-*s", labelWidth, r.group.Name))
		lines = append(lines,
			label+style.Render(string(plot)),
			pad+styles.Muted.Render(string(points)),
		)
	}

	minLabel := fmt.Sprintf("%.2f", lo)
	maxLabel := fmt.Sprintf("%.2f", hi)
	gap := width - len(minLabel) - len(maxLabel)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, pad+styles.Muted.Render(minLabel+strings.Repeat(" ", gap)+maxLabel))

	return strings.Join(lines, "\n")
}

func blank(width int) []rune {
	r := make([]rune, width)
	for i := range r {
		r[i] = ' '
	}
	return r
}
