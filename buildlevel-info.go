//go:build !hklog_none && !hklog_error && !hklog_debug

package hkdebug

const (
	compiledLevel     = BuildInfo
	compiledThreshold = LevelInfo
)
