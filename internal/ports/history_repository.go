package ports

import (
	"context"

	"github.com/emiliopalmerini/genex/internal/domain"
)

// HistoryRepository persists recorded searches and analyses.
type HistoryRepository interface {
	Record(ctx context.Context, entry *domain.HistoryEntry) error
	// List returns the most recent entries first.
	List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}
