package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emiliopalmerini/genex/internal/adapters/api"
	"github.com/emiliopalmerini/genex/internal/adapters/otel"
	"github.com/emiliopalmerini/genex/internal/adapters/turso"
	"github.com/emiliopalmerini/genex/internal/config"
	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/explorer"
	"github.com/emiliopalmerini/genex/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config  *config.Config
	Backend ports.Backend
	Catalog ports.DatasetCatalog
	History ports.HistoryRepository
	Metrics ports.MetricsExporter
	Logger  domain.Logger

	db *sql.DB
}

// NewAppContext creates an AppContext with all dependencies initialized.
// History falls back to a no-op store when disabled. Telemetry falls back
// to a no-op exporter when disabled or unreachable.
func NewAppContext(ctx context.Context, cfg *config.Config, logger domain.Logger) (*AppContext, error) {
	client, err := api.NewClient(cfg.API.URL, cfg.API.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	a := &AppContext{
		Config:  cfg,
		Backend: client,
		Catalog: client,
		History: turso.NoOpHistory{},
		Metrics: otel.NewNoOpExporter(),
		Logger:  logger,
	}

	if cfg.History.Enabled {
		db, err := turso.Open(ctx, cfg.History.DatabaseURL, cfg.History.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		a.db = db
		a.History = turso.NewHistoryRepository(db)
	}

	if cfg.Telemetry.Enabled {
		exporter, err := otel.NewExporter(ctx, cfg.Telemetry)
		if err != nil {
			logger.Error(fmt.Sprintf("metrics disabled: %v", err))
		} else {
			a.Metrics = exporter
		}
	}

	return a, nil
}

// Orchestrator builds an explorer wired to this context's dependencies.
func (a *AppContext) Orchestrator() *explorer.Orchestrator {
	return explorer.NewOrchestrator(a.Backend, explorer.Options{
		History:      a.History,
		Metrics:      a.Metrics,
		Logger:       a.Logger,
		DiscardStale: a.Config.API.DiscardStale,
	})
}

// Close flushes metrics and releases the history database.
func (a *AppContext) Close() error {
	var errs []error
	if a.Metrics != nil {
		errs = append(errs, a.Metrics.Close(context.Background()))
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
