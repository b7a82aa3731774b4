package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/genex/internal/domain"
)

// timeLayout is fixed-width so that created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record stores entry, assigning an ID and timestamp when missing.
func (r *HistoryRepository) Record(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history (
			id, kind, query, dataset_id, dataset_title, gene_id,
			prediction, confidence, fold_change, result_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		string(entry.Kind),
		entry.Query,
		entry.DatasetID,
		entry.DatasetTitle,
		entry.GeneID,
		string(entry.Prediction),
		entry.Confidence,
		entry.FoldChange,
		entry.ResultCount,
		entry.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, query, dataset_id, dataset_title, gene_id,
		       prediction, confidence, fold_change, result_count, created_at
		FROM history
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		var (
			e          domain.HistoryEntry
			kind       string
			prediction string
			createdAt  string
		)
		if err := rows.Scan(
			&e.ID, &kind, &e.Query, &e.DatasetID, &e.DatasetTitle, &e.GeneID,
			&prediction, &e.Confidence, &e.FoldChange, &e.ResultCount, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		e.Kind = domain.HistoryKind(kind)
		e.Prediction = domain.HealthStatus(prediction)
		e.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *HistoryRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// NoOpHistory drops every entry; used when history is disabled.
type NoOpHistory struct{}

func (NoOpHistory) Record(ctx context.Context, entry *domain.HistoryEntry) error { return nil }

func (NoOpHistory) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	return nil, nil
}

func (NoOpHistory) Clear(ctx context.Context) error { return nil }
