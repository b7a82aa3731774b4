package ports

import (
	"context"

	"github.com/emiliopalmerini/genex/internal/domain"
)

// Backend is the gene-expression analysis service consumed by the explorer.
type Backend interface {
	// SearchDatasets returns the datasets matching a free-text query.
	SearchDatasets(ctx context.Context, query string) ([]domain.Dataset, error)
	// AnalyzeExpression returns expression distributions and summary statistics.
	AnalyzeExpression(ctx context.Context, q domain.AnalysisQuery) (domain.ExpressionResult, error)
	// PredictHealth classifies the health status for a gene within a dataset.
	PredictHealth(ctx context.Context, q domain.AnalysisQuery) (domain.PredictionResult, error)
}

// DatasetCatalog exposes dataset metadata beyond search results.
type DatasetCatalog interface {
	GetDataset(ctx context.Context, id string) (domain.DatasetDetail, error)
	// IsAvailable checks if the backend is reachable.
	IsAvailable(ctx context.Context) bool
}
