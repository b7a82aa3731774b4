package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected BoxSummary
	}{
		{
			name:   "odd count",
			values: []float64{7, 5, 6},
			expected: BoxSummary{
				N: 3, Min: 5, Q1: 5, Median: 6, Q3: 7, Max: 7,
				LowerWhisker: 5, UpperWhisker: 7,
			},
		},
		{
			name:   "even count",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8},
			expected: BoxSummary{
				N: 8, Min: 1, Q1: 2.5, Median: 4.5, Q3: 6.5, Max: 8,
				LowerWhisker: 1, UpperWhisker: 8,
			},
		},
		{
			name:   "single value",
			values: []float64{4.2},
			expected: BoxSummary{
				N: 1, Min: 4.2, Q1: 4.2, Median: 4.2, Q3: 4.2, Max: 4.2,
				LowerWhisker: 4.2, UpperWhisker: 4.2,
			},
		},
		{
			name:   "high outlier beyond fence",
			values: []float64{10, 11, 12, 13, 14, 15, 40},
			expected: BoxSummary{
				N: 7, Min: 10, Q1: 11, Median: 13, Q3: 15, Max: 40,
				LowerWhisker: 10, UpperWhisker: 15,
				Outliers: []float64{40},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSummarize_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	if _, err := Summarize(values); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(values, []float64{3, 1, 2}) {
		t.Errorf("input was modified: %v", values)
	}
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("expected ErrEmptyGroup, got %v", err)
	}
}
