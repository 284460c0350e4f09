package hkdebug

import "sync/atomic"

// Policy decides whether a record at a given level is emitted.
type Policy interface {
	ShouldLog(level Level) bool
}

// Static is a threshold fixed for the lifetime of the logger. The package
// level entry points pair it with a constant so disabled call sites are
// compiled out.
type Static Level

func (s Static) ShouldLog(level Level) bool {
	return level != LevelNone && level <= Level(s)
}

// Runtime is a threshold that can be changed while the program runs. Logging
// calls only read it.
type Runtime struct {
	level atomic.Uint32
}

// NewRuntime returns a Runtime policy starting at level.
func NewRuntime(level Level) *Runtime {
	r := &Runtime{}
	r.Set(level)
	return r
}

func (r *Runtime) ShouldLog(level Level) bool {
	return level != LevelNone && uint32(level) <= r.level.Load()
}

// Set changes the threshold. Invalid levels are ignored.
func (r *Runtime) Set(level Level) {
	if level.Valid() {
		r.level.Store(uint32(level))
	}
}

// Level returns the current threshold.
func (r *Runtime) Level() Level {
	return Level(r.level.Load())
}
