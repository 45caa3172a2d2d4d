package metrics

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/logger"
	"codeberg.org/mutker/gamectl/internal/telemetry"
	_ "github.com/mattn/go-sqlite3"
)

// Repository persists performance snapshots in a SQLite database. Safe for
// concurrent use through database/sql's pooling.
type Repository struct {
	db  *sql.DB
	log logger.Logger
}

// NewRepository opens (or creates) the history database and brings its
// schema up to date, backing up and recreating on a version mismatch.
func NewRepository(cfg Config, log logger.Logger) (*Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrDBOpen, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	// Open database with specific pragmas for better performance and safety
	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrDBOpen, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	// Validate if schema is current, with backup if needed
	if err := ValidateAndUpdateSchema(db, cfg.DBPath, log); err != nil {
		db.Close()

		return nil, err
	}

	log.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Snapshot history initialized")

	return &Repository{
		db:  db,
		log: log,
	}, nil
}

// Record inserts one snapshot stamped with the current time.
func (r *Repository) Record(ctx context.Context, snap telemetry.Snapshot) error {
	errFactory := errors.New()

	_, err := r.db.ExecContext(ctx, insertSnapshotSQL,
		time.Now().Unix(),
		snap.CurrentFPS, snap.AverageFPS, snap.MinFPS, snap.MaxFPS,
		snap.CPUFrameMs, snap.GPUFrameMs, snap.RAMUsageMB, snap.VRAMUsageMB,
		int64(snap.DrawCalls), int64(snap.Primitives),
		snap.GameThreadLoad, snap.RenderThreadLoad, snap.RHIThreadLoad,
	)
	if err != nil {
		return errFactory.Wrap(ErrRecord, err)
	}

	return nil
}

// Recent returns up to n snapshots, newest first.
func (r *Repository) Recent(ctx context.Context, n int) ([]Row, error) {
	errFactory := errors.New()

	rows, err := r.db.QueryContext(ctx, recentSnapshotsSQL, n)
	if err != nil {
		return nil, errFactory.Wrap(ErrDBQuery, err)
	}
	defer rows.Close()

	out := make([]Row, 0, n)
	for rows.Next() {
		var (
			row Row
			ts  int64
		)
		if err := rows.Scan(&ts,
			&row.CurrentFPS, &row.AverageFPS, &row.MinFPS, &row.MaxFPS,
			&row.CPUFrameMs, &row.GPUFrameMs, &row.RAMUsageMB, &row.VRAMUsageMB,
			&row.DrawCalls, &row.Primitives,
			&row.GameThreadLoad, &row.RenderThreadLoad, &row.RHIThreadLoad,
		); err != nil {
			return nil, errFactory.Wrap(ErrDBQuery, err)
		}
		row.Timestamp = time.Unix(ts, 0)
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrDBQuery, err)
	}

	return out, nil
}

// Close checkpoints the WAL and closes the database.
func (r *Repository) Close() error {
	errFactory := errors.New()

	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return errFactory.WithData(ErrDBClose, struct {
			Phase string
			Error string
		}{
			Phase: "checkpoint_wal",
			Error: err.Error(),
		})
	}

	if err := r.db.Close(); err != nil {
		return errFactory.WithData(ErrDBClose, struct {
			Phase string
			Error string
		}{
			Phase: "close_database",
			Error: err.Error(),
		})
	}

	r.log.Debug().Msg("Snapshot history closed")

	return nil
}
