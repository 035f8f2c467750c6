package ports

// Logger defines the interface for logging.
// Info and Warn take optional alternating key/value pairs, as log/slog does.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
}
