package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// ResumeRepository is the record store. Entries are immutable once inserted.
type ResumeRepository interface {
	// Insert persists rec and returns the key assigned to it.
	Insert(ctx context.Context, rec entity.Resume) (string, error)
	// GetByID returns the record stored under id, or a NotFound error.
	GetByID(ctx context.Context, id string) (entity.Resume, error)
	Ping(ctx context.Context) error
	// Migrate creates the backing table or collection if it does not exist.
	Migrate(ctx context.Context) error
	Close() error
}

// Open connects to the store selected by cfg.Driver.
func Open(ctx context.Context, cfg common.StoreConfig, logger *slog.Logger) (ResumeRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	table := cfg.Table
	if table == "" {
		table = constants.ResumesTable
	}

	var (
		repo ResumeRepository
		err  error
	)
	switch cfg.Driver {
	case constants.StorePostgres:
		repo, err = openPostgres(ctx, cfg, table, logger)
	case constants.StoreSQLite:
		repo, err = openSQLite(ctx, cfg, table, logger)
	case constants.StoreMongo:
		repo, err = openMongo(ctx, cfg, table, logger)
	default:
		return nil, common.NewAppError(common.CodeConfig, fmt.Sprintf("unknown store driver %q", cfg.Driver), common.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
	}
	return repo, nil
}
