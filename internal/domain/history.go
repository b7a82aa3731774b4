package domain

import "time"

// HistoryKind distinguishes the recorded operations.
type HistoryKind string

const (
	HistorySearch   HistoryKind = "search"
	HistoryAnalysis HistoryKind = "analysis"
)

// HistoryEntry is one recorded search or successful analysis.
// Analysis-only fields are zero for searches.
type HistoryEntry struct {
	ID           string
	Kind         HistoryKind
	Query        string
	DatasetID    string
	DatasetTitle string
	GeneID       string
	Prediction   HealthStatus
	Confidence   float64
	FoldChange   float64
	ResultCount  int
	CreatedAt    time.Time
}

// Dataset rebuilds the dataset an analysis entry was computed for.
// Only ID and Title are known from history.
func (e HistoryEntry) Dataset() Dataset {
	return Dataset{ID: e.DatasetID, Title: e.DatasetTitle}
}
