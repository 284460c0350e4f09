//go:build hklog_none

package hkdebug

const (
	compiledLevel     = BuildNone
	compiledThreshold = LevelNone
)
