package ports

import (
	"context"

	"github.com/emiliopalmerini/genex/internal/domain"
)

// MockBackend is a mock implementation of Backend for testing.
type MockBackend struct {
	SearchDatasetsFunc    func(ctx context.Context, query string) ([]domain.Dataset, error)
	AnalyzeExpressionFunc func(ctx context.Context, q domain.AnalysisQuery) (domain.ExpressionResult, error)
	PredictHealthFunc     func(ctx context.Context, q domain.AnalysisQuery) (domain.PredictionResult, error)
}

func (m *MockBackend) SearchDatasets(ctx context.Context, query string) ([]domain.Dataset, error) {
	if m.SearchDatasetsFunc != nil {
		return m.SearchDatasetsFunc(ctx, query)
	}
	return []domain.Dataset{}, nil
}

func (m *MockBackend) AnalyzeExpression(ctx context.Context, q domain.AnalysisQuery) (domain.ExpressionResult, error) {
	if m.AnalyzeExpressionFunc != nil {
		return m.AnalyzeExpressionFunc(ctx, q)
	}
	return domain.ExpressionResult{}, nil
}

func (m *MockBackend) PredictHealth(ctx context.Context, q domain.AnalysisQuery) (domain.PredictionResult, error) {
	if m.PredictHealthFunc != nil {
		return m.PredictHealthFunc(ctx, q)
	}
	return domain.PredictionResult{}, nil
}
