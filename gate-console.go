//go:build !logbuffer

package hkdebug

// enabled is the compile-time gate. compiledThreshold is a constant, so a
// call with a constant level folds to true or false and a false branch is
// dropped by the compiler.
func enabled(level Level) bool {
	return level != LevelNone && level <= compiledThreshold
}

func defaultLogger() *Logger {
	return New(
		WithPolicy(Static(compiledThreshold)),
		WithBackend(NewConsole(consoleWriter())),
	)
}

// SetLevel reports false: console builds filter at compile time and have no
// runtime threshold.
func SetLevel(Level) bool {
	return false
}

// ActiveLevel returns the threshold of this build.
func ActiveLevel() Level {
	return compiledThreshold
}
