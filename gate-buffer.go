//go:build logbuffer

package hkdebug

const defaultRingSize = 4096

// DefaultRing holds the records of the build-default logger until they are
// read out, for example by a diagnostics endpoint.
var DefaultRing = NewRing(defaultRingSize)

// activeLevel is the runtime threshold of buffer builds. It only changes
// through SetLevel.
var activeLevel = NewRuntime(DefaultLevel)

func enabled(level Level) bool {
	return level != LevelNone
}

func defaultLogger() *Logger {
	return New(
		WithPolicy(activeLevel),
		WithBackend(NewBuffer(DefaultRing.LogToBuffer)),
	)
}

// SetLevel changes the runtime threshold. It reports false for an invalid
// level.
func SetLevel(level Level) bool {
	if !level.Valid() {
		return false
	}
	activeLevel.Set(level)
	return true
}

// ActiveLevel returns the runtime threshold.
func ActiveLevel() Level {
	return activeLevel.Level()
}
