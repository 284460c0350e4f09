package hkdebug

// Backend receives records that passed the level policy. Each implementation
// prepends its own preamble to format and hands the result to its
// collaborator. Backends never report errors to the caller.
type Backend interface {
	Emit(level Level, millis uint32, tag, format string, args ...any)
}

var std = defaultLogger()

// SetDefault replaces the logger used by the package level functions.
// Passing nil restores the logger selected by the build tags.
//
// The compile-time gate of the build still applies: a level compiled out of
// this build stays silent whatever policy l carries.
func SetDefault(l *Logger) {
	if l == nil {
		std = defaultLogger()
		return
	}
	std = l
}

// Default returns the logger used by the package level functions.
func Default() *Logger {
	return std
}

// nopBackend is a backend that does nothing.
type nopBackend struct{}

func (nopBackend) Emit(Level, uint32, string, string, ...any) {}
