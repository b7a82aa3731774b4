package domain

// ExpressionData holds per-sample expression levels for the two sample groups.
type ExpressionData struct {
	Healthy  []float64 `json:"healthy"`
	Diseased []float64 `json:"diseased"`
}

// Statistics are the backend-computed summary values for one analysis.
// FoldChange is opaque to the client and is never recomputed.
type Statistics struct {
	HealthyMean  float64 `json:"healthy_mean"`
	DiseasedMean float64 `json:"diseased_mean"`
	FoldChange   float64 `json:"fold_change"`
}

// ExpressionResult is the outcome of an expression analysis.
// Values are treated as immutable once decoded.
type ExpressionResult struct {
	ExpressionData ExpressionData `json:"expression_data"`
	Statistics     Statistics     `json:"statistics"`
}

// Groups returns the sample groups in display order.
func (r ExpressionResult) Groups() []SampleGroup {
	return []SampleGroup{
		{Name: "Healthy", Values: r.ExpressionData.Healthy},
		{Name: "Diseased", Values: r.ExpressionData.Diseased},
	}
}

// SampleGroup is a named series of expression values.
type SampleGroup struct {
	Name   string
	Values []float64
}
