package calculation

// Logger is the engine's logging seam. The engine only emits printf-style
// diagnostics; callers plug in whatever backend they run (the CLI adapts
// zap through internal/logging).
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all output. It is the engine default.
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
