package explorer

import "github.com/emiliopalmerini/genex/internal/domain"

// DatasetsSettledMsg reports the outcome of one dataset search.
type DatasetsSettledMsg struct {
	Seq      uint64
	Query    string
	Datasets []domain.Dataset
	Err      error
}

// AnalysisSettledMsg reports the joined outcome of the expression and
// prediction calls of one analysis. It is emitted once both have settled.
type AnalysisSettledMsg struct {
	Seq           uint64
	Query         domain.AnalysisQuery
	Expression    domain.ExpressionResult
	Prediction    domain.PredictionResult
	ExpressionErr error
	PredictionErr error
}

// Failed reports whether either call of the analysis failed.
func (m AnalysisSettledMsg) Failed() bool {
	return m.ExpressionErr != nil || m.PredictionErr != nil
}
