//go:build hklog_debug && !hklog_none && !hklog_error

package hkdebug

const (
	compiledLevel     = BuildDebug
	compiledThreshold = LevelVerbose
)
