package metrics

import "codeberg.org/mutker/gamectl/internal/errors"

const (
	// Configuration errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("history_invalid_db_path")

	// Schema errors
	ErrSchemaInit       = errors.ErrorCode("history_schema_init_failed")
	ErrSchemaValidation = errors.ErrorCode("history_schema_validation_failed")
	ErrSchemaMigration  = errors.ErrorCode("history_schema_migration_failed")
	ErrBackup           = errors.ErrorCode("history_backup_failed")

	// Storage errors
	ErrDBOpen  = errors.ErrorCode("history_db_open_failed")
	ErrDBQuery = errors.ErrorCode("history_db_query_failed")
	ErrDBClose = errors.ErrShutdownFailed

	// Recording errors
	ErrRecord = errors.ErrRecordSnapshot
)
