package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPredictionResult_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    PredictionResult
		wantErr error
	}{
		{
			name: "diseased",
			body: `{"prediction":"diseased","confidence":87}`,
			want: PredictionResult{Prediction: StatusDiseased, Confidence: 87},
		},
		{
			name: "healthy with decimals",
			body: `{"prediction":"healthy","confidence":42.17}`,
			want: PredictionResult{Prediction: StatusHealthy, Confidence: 42.17},
		},
		{
			name:    "unknown label",
			body:    `{"prediction":"unknown","confidence":10}`,
			wantErr: ErrUnknownHealthStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got PredictionResult
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPredictionResult_Presentation(t *testing.T) {
	tests := []struct {
		name         string
		result       PredictionResult
		wantLabel    string
		wantHealthy  bool
		wantText     string
		wantFraction float64
	}{
		{"integer confidence", PredictionResult{StatusDiseased, 87}, "Diseased", false, "87%", 0.87},
		{"decimal confidence", PredictionResult{StatusHealthy, 62.5}, "Healthy", true, "62.5%", 0.625},
		{"zero", PredictionResult{StatusHealthy, 0}, "Healthy", true, "0%", 0},
		{"full", PredictionResult{StatusDiseased, 100}, "Diseased", false, "100%", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Prediction.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if got := tt.result.Healthy(); got != tt.wantHealthy {
				t.Errorf("Healthy() = %v, want %v", got, tt.wantHealthy)
			}
			if got := tt.result.ConfidenceText(); got != tt.wantText {
				t.Errorf("ConfidenceText() = %q, want %q", got, tt.wantText)
			}
			if got := tt.result.ConfidenceFraction(); got != tt.wantFraction {
				t.Errorf("ConfidenceFraction() = %v, want %v", got, tt.wantFraction)
			}
		})
	}
}
