package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// sqlResumeRepository stores each record as one row {id, data} and builds
// statements with ent's dialect-aware SQL builder.
type sqlResumeRepository struct {
	drv     *entsql.Driver
	dialect string
	table   string
	onClose func()
	logger  *slog.Logger
}

func newSQLResumeRepository(db *sql.DB, d, table string, onClose func(), logger *slog.Logger) *sqlResumeRepository {
	return &sqlResumeRepository{
		drv:     entsql.OpenDB(d, db),
		dialect: d,
		table:   table,
		onClose: onClose,
		logger:  logger,
	}
}

func (r *sqlResumeRepository) dataType() string {
	if r.dialect == dialect.Postgres {
		return "JSONB"
	}
	return "TEXT"
}

func (r *sqlResumeRepository) Migrate(ctx context.Context) error {
	query, args := entsql.Dialect(r.dialect).
		CreateTable(r.table).
		IfNotExists().
		Columns(
			entsql.Column("id").Type("TEXT"),
			entsql.Column("data").Type(r.dataType()).Attr("NOT NULL"),
		).
		PrimaryKey("id").
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		r.logger.Error("failed to migrate resumes table", "table", r.table, "error", err)
		return common.PersistenceError("migrate resumes table", err)
	}
	r.logger.Info("resumes table ready", "table", r.table, "dialect", r.dialect)
	return nil
}

func (r *sqlResumeRepository) Insert(ctx context.Context, rec entity.Resume) (string, error) {
	start := time.Now()
	data, err := json.Marshal(rec)
	if err != nil {
		return "", common.PersistenceError("encode resume", err)
	}

	id := uuid.NewString()
	query, args := entsql.Dialect(r.dialect).
		Insert(r.table).
		Columns("id", "data").
		Values(id, string(data)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		r.logger.Error("failed to insert resume", "error", err)
		return "", common.PersistenceError("insert resume", err)
	}

	r.logger.Debug("inserted resume", "id", id, "bytes", len(data), "elapsed_ms", time.Since(start).Milliseconds())
	return id, nil
}

func (r *sqlResumeRepository) GetByID(ctx context.Context, id string) (entity.Resume, error) {
	query, args := entsql.Dialect(r.dialect).
		Select("data").
		From(entsql.Table(r.table)).
		Where(entsql.EQ("id", id)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		r.logger.Error("failed to query resume", "id", id, "error", err)
		return entity.Resume{}, common.PersistenceError("query resume", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return entity.Resume{}, common.PersistenceError("query resume", err)
		}
		return entity.Resume{}, common.NotFoundErrorf("resume %s not found", id)
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		return entity.Resume{}, common.PersistenceError("scan resume", err)
	}

	var rec entity.Resume
	if err := json.Unmarshal(data, &rec); err != nil {
		r.logger.Error("stored resume is not valid json", "id", id, "error", err)
		return entity.Resume{}, common.PersistenceError("decode stored resume", err)
	}
	rec.Normalize()
	return rec, nil
}

func (r *sqlResumeRepository) Ping(ctx context.Context) error {
	if err := r.drv.DB().PingContext(ctx); err != nil {
		return common.PersistenceError("ping database", err)
	}
	return nil
}

// Close closes the database connections gracefully
func (r *sqlResumeRepository) Close() error {
	r.logger.Info("closing database connections", "dialect", r.dialect)
	err := r.drv.Close()
	if r.onClose != nil {
		r.onClose()
	}
	return err
}
