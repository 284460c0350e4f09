// Package hkdebug is a leveled logging facility for memory constrained
// firmware.
//
// Records are filtered by a Policy and handed to exactly one Backend. Build
// tags pick both:
//
//	(default)   Console backend, Static policy at the compiled level
//	logbuffer   Buffer backend into DefaultRing, Runtime policy
//
// The compiled level is info unless one of the hklog_none, hklog_error or
// hklog_debug tags is set. In console builds the package level functions for
// levels above it compile to nothing.
package hkdebug

import (
	"runtime"
	"strings"
	"time"
)

// DefaultTag is the subsystem tag used by Error, Info, Debug and Verbose.
const DefaultTag = "HomeKit"

// Clock returns milliseconds since startup.
type Clock func() uint32

// HeapSource returns the current free heap in bytes.
type HeapSource func() uint32

var boot = time.Now()

func uptimeMillis() uint32 {
	return uint32(time.Since(boot) / time.Millisecond)
}

func freeHeap() uint32 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return uint32(ms.HeapIdle)
}

// Logger formats records with a timestamp, severity and tag preamble and
// passes the ones its policy allows to its backend.
//
// A Logger is not safe for concurrent DebugTimeBegin/DebugTimeEnd use: the
// timing slot is shared and a nested BEGIN overwrites it.
type Logger struct {
	policy  Policy
	backend Backend
	clock   Clock
	heap    HeapSource
	tag     string

	start uint32 // set by DebugTimeBegin
}

// Option configures a Logger.
type Option func(*Logger)

// WithPolicy sets the level policy. Defaults to Static(DefaultLevel).
func WithPolicy(p Policy) Option {
	return func(l *Logger) {
		if p != nil {
			l.policy = p
		}
	}
}

// WithBackend sets the destination of emitted records. Defaults to a backend
// that drops everything.
func WithBackend(b Backend) Option {
	return func(l *Logger) {
		if b != nil {
			l.backend = b
		}
	}
}

// WithClock sets the millisecond timestamp source.
func WithClock(c Clock) Option {
	return func(l *Logger) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithHeapSource sets the free memory source used by DebugHeap and InfoHeap.
func WithHeapSource(h HeapSource) Option {
	return func(l *Logger) {
		if h != nil {
			l.heap = h
		}
	}
}

// WithTag sets the tag used by the default-tag helpers.
func WithTag(tag string) Option {
	return func(l *Logger) {
		if tag != "" {
			l.tag = tag
		}
	}
}

// New returns a Logger configured by opts.
func New(opts ...Option) *Logger {
	l := &Logger{
		policy:  Static(DefaultLevel),
		backend: nopBackend{},
		clock:   uptimeMillis,
		heap:    freeHeap,
		tag:     DefaultTag,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enabled reports whether a record at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return l.policy.ShouldLog(level)
}

// Tag returns the tag used by the default-tag helpers.
func (l *Logger) Tag() string {
	return l.tag
}

// Logf emits a record at level if the policy allows it.
func (l *Logger) Logf(level Level, tag, format string, args ...any) {
	if !l.policy.ShouldLog(level) {
		return
	}
	l.backend.Emit(level, l.clock(), tag, format, args...)
}

func (l *Logger) Errorf(tag, format string, args ...any) {
	l.Logf(LevelError, tag, format, args...)
}

func (l *Logger) Warnf(tag, format string, args ...any) {
	l.Logf(LevelWarn, tag, format, args...)
}

func (l *Logger) Infof(tag, format string, args ...any) {
	l.Logf(LevelInfo, tag, format, args...)
}

func (l *Logger) Debugf(tag, format string, args ...any) {
	l.Logf(LevelDebug, tag, format, args...)
}

func (l *Logger) Verbosef(tag, format string, args ...any) {
	l.Logf(LevelVerbose, tag, format, args...)
}

// Error logs an error record with the logger's tag.
func (l *Logger) Error(format string, args ...any) {
	l.Logf(LevelError, l.tag, format, args...)
}

// Info logs an info record with the logger's tag.
func (l *Logger) Info(format string, args ...any) {
	l.Logf(LevelInfo, l.tag, format, args...)
}

// Debug logs a debug record with the logger's tag, prefixed with the name of
// the calling function.
func (l *Logger) Debug(format string, args ...any) {
	l.logCaller(LevelDebug, 2, format, args)
}

// Verbose is Debug at verbose level.
func (l *Logger) Verbose(format string, args ...any) {
	l.logCaller(LevelVerbose, 2, format, args)
}

// logCaller looks up the function skip frames above it only when the record
// will be emitted.
func (l *Logger) logCaller(level Level, skip int, format string, args []any) {
	if !l.policy.ShouldLog(level) {
		return
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, callerName(skip))
	l.backend.Emit(level, l.clock(), l.tag, "(%s) "+format, append(out, args...)...)
}

// DebugTimeBegin records the current time in the timing slot.
func (l *Logger) DebugTimeBegin() {
	l.start = l.clock()
}

// DebugTimeEnd emits a debug record with the milliseconds elapsed since the
// last DebugTimeBegin. Without a prior DebugTimeBegin the value is
// meaningless.
func (l *Logger) DebugTimeEnd(label string) {
	l.debugTimeEnd(3, label)
}

// DebugHeap emits a debug record with the free heap.
func (l *Logger) DebugHeap() {
	l.debugHeap(3)
}

// InfoHeap emits an info record with the free heap.
func (l *Logger) InfoHeap() {
	l.Logf(LevelInfo, l.tag, "Free heap: %d", l.heap())
}

// PrintBinary emits a single debug record holding prompt and the rendering
// of data.
func (l *Logger) PrintBinary(prompt string, data []byte) {
	l.printBinary(3, prompt, data)
}

func (l *Logger) debugTimeEnd(skip int, label string) {
	if !l.policy.ShouldLog(LevelDebug) {
		return
	}
	// Unsigned subtraction keeps the result right across a clock wrap.
	elapsed := l.clock() - l.start
	l.logCaller(LevelDebug, skip, "%s took %6d ms", []any{label, elapsed})
}

func (l *Logger) debugHeap(skip int) {
	if !l.policy.ShouldLog(LevelDebug) {
		return
	}
	l.logCaller(LevelDebug, skip, "Free heap: %d", []any{l.heap()})
}

func (l *Logger) printBinary(skip int, prompt string, data []byte) {
	if !l.policy.ShouldLog(LevelDebug) {
		return
	}
	l.logCaller(LevelDebug, skip, "%s (%d bytes): \"%s\"", []any{prompt, len(data), BinaryToString(data)})
}

// callerName returns the short name of the function skip frames above the
// caller of callerName, such as "pairSetup" or "(*Server).accept".
func callerName(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return "?"
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	name := frame.Function
	if name == "" {
		return "?"
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
