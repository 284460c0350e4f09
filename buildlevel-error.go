//go:build hklog_error && !hklog_none

package hkdebug

const (
	compiledLevel     = BuildError
	compiledThreshold = LevelError
)
