package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// ErrEmptyGroup is returned when a sample group has no values to summarise.
var ErrEmptyGroup = errors.New("sample group is empty")

// whiskerFactor is the Tukey fence multiplier applied to the IQR.
const whiskerFactor = 1.5

// BoxSummary is the five-number summary of a sample group plus the
// Tukey whiskers and the points falling outside them.
type BoxSummary struct {
	N            int       `json:"n"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers,omitempty"`
}

// IQR returns the interquartile range.
func (b BoxSummary) IQR() float64 {
	return b.Q3 - b.Q1
}

// Summarize computes a box-plot summary of values. The input slice is not
// modified.
func Summarize(values []float64) (BoxSummary, error) {
	if len(values) == 0 {
		return BoxSummary{}, ErrEmptyGroup
	}

	data := stats.Float64Data(values)

	min, err := stats.Min(data)
	if err != nil {
		return BoxSummary{}, fmt.Errorf("min: %w", err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return BoxSummary{}, fmt.Errorf("max: %w", err)
	}

	// Quartile leaves Q1/Q3 undefined for a single value
	if len(values) == 1 {
		v := values[0]
		return BoxSummary{N: 1, Min: v, Q1: v, Median: v, Q3: v, Max: v, LowerWhisker: v, UpperWhisker: v}, nil
	}

	q, err := stats.Quartile(data)
	if err != nil {
		return BoxSummary{}, fmt.Errorf("quartiles: %w", err)
	}

	iqr := q.Q3 - q.Q1
	lowFence := q.Q1 - whiskerFactor*iqr
	highFence := q.Q3 + whiskerFactor*iqr

	summary := BoxSummary{
		N:            len(values),
		Min:          min,
		Q1:           q.Q1,
		Median:       q.Q2,
		Q3:           q.Q3,
		Max:          max,
		LowerWhisker: max,
		UpperWhisker: min,
	}

	for _, v := range values {
		if v < lowFence || v > highFence {
			summary.Outliers = append(summary.Outliers, v)
			continue
		}
		if v < summary.LowerWhisker {
			summary.LowerWhisker = v
		}
		if v > summary.UpperWhisker {
			summary.UpperWhisker = v
		}
	}
	sort.Float64s(summary.Outliers)

	return summary, nil
}
