package hkdebug

// The functions below log through the default logger. Each checks the
// compile-time gate first so that, in console builds, levels above the
// compiled level leave no code behind.

func Errorf(tag, format string, args ...any) {
	if enabled(LevelError) {
		std.Logf(LevelError, tag, format, args...)
	}
}

func Warnf(tag, format string, args ...any) {
	if enabled(LevelWarn) {
		std.Logf(LevelWarn, tag, format, args...)
	}
}

func Infof(tag, format string, args ...any) {
	if enabled(LevelInfo) {
		std.Logf(LevelInfo, tag, format, args...)
	}
}

func Debugf(tag, format string, args ...any) {
	if enabled(LevelDebug) {
		std.Logf(LevelDebug, tag, format, args...)
	}
}

func Verbosef(tag, format string, args ...any) {
	if enabled(LevelVerbose) {
		std.Logf(LevelVerbose, tag, format, args...)
	}
}

// Error logs an error record with the default tag.
func Error(format string, args ...any) {
	if enabled(LevelError) {
		std.Logf(LevelError, std.tag, format, args...)
	}
}

// Info logs an info record with the default tag.
func Info(format string, args ...any) {
	if enabled(LevelInfo) {
		std.Logf(LevelInfo, std.tag, format, args...)
	}
}

// Debug logs a debug record with the default tag and the calling function's
// name.
func Debug(format string, args ...any) {
	if enabled(LevelDebug) {
		std.logCaller(LevelDebug, 2, format, args)
	}
}

// Verbose logs a verbose record with the default tag and the calling
// function's name.
func Verbose(format string, args ...any) {
	if enabled(LevelVerbose) {
		std.logCaller(LevelVerbose, 2, format, args)
	}
}

// DebugTimeBegin starts a coarse duration measurement. There is a single
// slot: a second DebugTimeBegin before DebugTimeEnd overwrites it.
func DebugTimeBegin() {
	if enabled(LevelDebug) {
		std.DebugTimeBegin()
	}
}

// DebugTimeEnd logs label with the milliseconds since DebugTimeBegin.
func DebugTimeEnd(label string) {
	if enabled(LevelDebug) {
		std.debugTimeEnd(3, label)
	}
}

// DebugHeap logs the free heap at debug level.
func DebugHeap() {
	if enabled(LevelDebug) {
		std.debugHeap(3)
	}
}

// InfoHeap logs the free heap at info level.
func InfoHeap() {
	if enabled(LevelInfo) {
		std.InfoHeap()
	}
}

// PrintBinary logs prompt and the rendering of data as one debug record.
func PrintBinary(prompt string, data []byte) {
	if enabled(LevelDebug) {
		std.printBinary(3, prompt, data)
	}
}
