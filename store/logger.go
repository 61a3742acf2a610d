package store

// Logger receives the bag's diagnostics. Creates, replacements, deletions
// and clears are reported at debug level with the property name.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DefaultLogger discards everything. It is what NewPropertyBag uses unless
// WithLogger supplies another Logger.
type DefaultLogger struct{}

// Debug implements Logger.Debug
func (l *DefaultLogger) Debug(format string, args ...interface{}) {}

// Info implements Logger.Info
func (l *DefaultLogger) Info(format string, args ...interface{}) {}

// Warn implements Logger.Warn
func (l *DefaultLogger) Warn(format string, args ...interface{}) {}

// Error implements Logger.Error
func (l *DefaultLogger) Error(format string, args ...interface{}) {}

// NewDefaultLogger returns the no-op logger bags start with.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}
