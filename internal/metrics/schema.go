package metrics

import (
	"database/sql"

	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/logger"
)

const (
	SchemaVersion = 1

	// SQL statements derived from schema
	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS snapshots (
	       id           INTEGER PRIMARY KEY AUTOINCREMENT,
	       ts           INTEGER NOT NULL,
	       current_fps  REAL NOT NULL,
	       average_fps  REAL NOT NULL,
	       min_fps      REAL NOT NULL,
	       max_fps      REAL NOT NULL,
	       cpu_ms       REAL NOT NULL,
	       gpu_ms       REAL NOT NULL,
	       ram_mb       REAL NOT NULL,
	       vram_mb      REAL NOT NULL,
	       draw_calls   INTEGER NOT NULL CHECK (typeof(draw_calls) = 'integer'),
	       primitives   INTEGER NOT NULL CHECK (typeof(primitives) = 'integer'),
	       game_load    REAL NOT NULL CHECK (game_load BETWEEN 0 AND 1),
	       render_load  REAL NOT NULL CHECK (render_load BETWEEN 0 AND 1),
	       rhi_load     REAL NOT NULL CHECK (rhi_load BETWEEN 0 AND 1)
	   );
	   CREATE INDEX IF NOT EXISTS snapshots_ts ON snapshots (ts);`

	insertSnapshotSQL = `
    INSERT INTO snapshots (
        ts,
        current_fps, average_fps, min_fps, max_fps,
        cpu_ms, gpu_ms, ram_mb, vram_mb,
        draw_calls, primitives,
        game_load, render_load, rhi_load
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	recentSnapshotsSQL = `
    SELECT ts,
        current_fps, average_fps, min_fps, max_fps,
        cpu_ms, gpu_ms, ram_mb, vram_mb,
        draw_calls, primitives,
        game_load, render_load, rhi_load
    FROM snapshots
    ORDER BY ts DESC, id DESC
    LIMIT ?`
)

// InitSchema creates a new database schema with the current version
func InitSchema(db *sql.DB, log logger.Logger) error {
	errFactory := errors.New()

	log.Debug().Msg("Creating history database...")

	tx, err := db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrSchemaInit, err)
	}

	// Track transaction state
	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil {
				// Only log if it's not the "already committed" error
				if !errors.Is(err, sql.ErrTxDone) {
					log.Debug().Err(err).Msg("Failed to rollback transaction")
				}
			}
		}
	}()

	if _, err := tx.Exec(createTablesSQL); err != nil {
		return errFactory.WithData(ErrSchemaInit, struct {
			Error string
			SQL   string
		}{
			Error: err.Error(),
			SQL:   createTablesSQL,
		})
	}

	if _, err := tx.Exec(`
        INSERT INTO schema_versions (version, applied_at)
        VALUES (?, datetime('now'))
    `, SchemaVersion); err != nil {
		return errFactory.WithData(ErrSchemaInit, struct {
			Error string
			Phase string
		}{
			Error: err.Error(),
			Phase: "record_version",
		})
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrSchemaInit, err)
	}
	committed = true

	log.Info().
		Int("version", SchemaVersion).
		Msg("History schema initialized")

	return nil
}

// GetSchemaVersion returns the current schema version
func GetSchemaVersion(db *sql.DB) (int, error) {
	errFactory := errors.New()

	exists, err := TableExists(db, "schema_versions")
	if err != nil {
		return 0, errFactory.Wrap(ErrSchemaValidation, err)
	}
	if !exists {
		return 0, nil
	}

	var version int
	err = db.QueryRow(`
        SELECT version
        FROM schema_versions
        ORDER BY version DESC
        LIMIT 1
    `).Scan(&version)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errFactory.WithData(ErrSchemaValidation, struct {
			Phase string
			Error string
		}{
			Phase: "get_version",
			Error: err.Error(),
		})
	}

	return version, nil
}

// TableExists checks if a table exists
func TableExists(db *sql.DB, tableName string) (bool, error) {
	errFactory := errors.New()

	var exists bool
	err := db.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM sqlite_master
            WHERE type='table' AND name=?
        )
    `, tableName).Scan(&exists)
	if err != nil {
		return false, errFactory.WithData(ErrSchemaValidation, struct {
			Phase string
			Table string
			Error string
		}{
			Phase: "check_table_exists",
			Table: tableName,
			Error: err.Error(),
		})
	}

	return exists, nil
}
