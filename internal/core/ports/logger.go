package ports

// Logger defines the interface for logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, unwinding wrapped causes where possible.
	Error(err error)
}
