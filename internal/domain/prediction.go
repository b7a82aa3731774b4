package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownHealthStatus is returned when a prediction carries a label other
// than healthy or diseased.
var ErrUnknownHealthStatus = errors.New("unknown health status")

// HealthStatus is the binary classification produced by the prediction model.
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusDiseased HealthStatus = "diseased"
)

// ParseHealthStatus validates a raw label.
func ParseHealthStatus(s string) (HealthStatus, error) {
	switch HealthStatus(s) {
	case StatusHealthy, StatusDiseased:
		return HealthStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownHealthStatus, s)
	}
}

// UnmarshalJSON rejects labels outside the known set.
func (h *HealthStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseHealthStatus(raw)
	if err != nil {
		return err
	}
	*h = status
	return nil
}

// Label returns the status with its first letter upper-cased.
func (h HealthStatus) Label() string {
	if h == "" {
		return ""
	}
	s := string(h)
	return strings.ToUpper(s[:1]) + s[1:]
}

// PredictionResult is the outcome of a health prediction.
// Confidence is a percentage in [0, 100].
type PredictionResult struct {
	Prediction HealthStatus `json:"prediction"`
	Confidence float64      `json:"confidence"`
}

// Healthy reports whether the sample was classified as healthy.
func (p PredictionResult) Healthy() bool {
	return p.Prediction == StatusHealthy
}

// ConfidenceFraction maps the confidence onto [0, 1] for proportional
// indicators. Out-of-domain values are clamped.
func (p PredictionResult) ConfidenceFraction() float64 {
	f := p.Confidence / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ConfidenceText formats the confidence exactly as received: the shortest
// decimal that round-trips, without rounding. 87 -> "87%", 87.25 -> "87.25%".
func (p PredictionResult) ConfidenceText() string {
	return strconv.FormatFloat(p.Confidence, 'f', -1, 64) + "%"
}
