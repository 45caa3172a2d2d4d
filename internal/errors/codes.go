package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"
	ErrUnavailable     ErrorCode = "service_unavailable"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrMissingConfig   ErrorCode = "missing_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Settings store errors
	ErrUnknownField ErrorCode = "unknown_field"
	ErrFieldKind    ErrorCode = "field_kind_mismatch"

	// Settings persistence errors
	ErrSettingsNotFound  ErrorCode = "settings_not_found"
	ErrSettingsRead      ErrorCode = "settings_read_failed"
	ErrSettingsParse     ErrorCode = "settings_parse_failed"
	ErrSettingsSerialize ErrorCode = "settings_serialize_failed"
	ErrSettingsDirCreate ErrorCode = "settings_dir_create_failed"
	ErrSettingsWrite     ErrorCode = "settings_write_failed"

	// Process errors
	ErrAlreadyRunning ErrorCode = "already_running"

	// Operation errors
	ErrOperationFailed  ErrorCode = "operation_failed"
	ErrTimeout          ErrorCode = "operation_timeout"
	ErrInvalidOperation ErrorCode = "invalid_operation"

	// History errors
	ErrInitHistory    ErrorCode = "init_history_failed"
	ErrRecordSnapshot ErrorCode = "record_snapshot_failed"
	ErrCloseHistory   ErrorCode = "close_history_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidArgument:   "Invalid argument provided",
	ErrNotImplemented:    "Operation not implemented",
	ErrUnavailable:       "Service unavailable",
	ErrInvalidConfig:     "Invalid configuration",
	ErrMissingConfig:     "Missing configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrReadConfig:        "Failed to read configuration",
	ErrInvalidInterval:   "Invalid interval value",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrInitFailed:        "Initialization failed",
	ErrShutdownFailed:    "Shutdown failed",
	ErrUnknownField:      "Unknown settings field",
	ErrFieldKind:         "Settings field kind mismatch",
	ErrSettingsNotFound:  "Settings file not found",
	ErrSettingsRead:      "Failed to read settings file",
	ErrSettingsParse:     "Failed to parse settings file",
	ErrSettingsSerialize: "Failed to serialize settings",
	ErrSettingsDirCreate: "Failed to create settings directory",
	ErrSettingsWrite:     "Failed to write settings file",
	ErrAlreadyRunning:    "Another instance is already running",
	ErrOperationFailed:   "Operation failed",
	ErrTimeout:           "Operation timed out",
	ErrInvalidOperation:  "Invalid operation",
	ErrInitHistory:       "Failed to initialize snapshot history",
	ErrRecordSnapshot:    "Failed to record performance snapshot",
	ErrCloseHistory:      "Failed to close snapshot history",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
