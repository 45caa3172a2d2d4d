package errors

// ErrorCode is the stable identifier for one failure mode. Codes are
// matched with HasCode, never by message text.
type ErrorCode string

// Error is a coded error carrying optional message, cause and context data
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory defines methods for creating domain errors
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
