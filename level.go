package hkdebug

import (
	"strconv"
	"strings"
)

// Level is the severity of a record. A record is emitted when its level is
// less than or equal to the active threshold.
type Level uint8

const (
	// LevelNone disables logging. It is a threshold, never a record severity.
	LevelNone Level = iota
	// LevelError reports failures the firmware can not recover from on its own.
	LevelError
	// LevelWarn reports conditions that were recovered from.
	LevelWarn
	// LevelInfo describes the normal flow of events.
	LevelInfo
	// LevelDebug carries values, pointers and sizes useful while debugging.
	LevelDebug
	// LevelVerbose is for chatty output that can flood the console.
	LevelVerbose
)

// DefaultLevel is the threshold used when none is configured.
const DefaultLevel = LevelInfo

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// Marker returns the single-character severity marker used by the console
// backend.
func (l Level) Marker() byte {
	switch l {
	case LevelError:
		return 'E'
	case LevelWarn:
		return 'W'
	case LevelInfo:
		return 'I'
	case LevelDebug:
		return 'D'
	case LevelVerbose:
		return 'V'
	default:
		return '-'
	}
}

// Tag returns the textual severity tag used by the buffer backend.
func (l Level) Tag() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelVerbose:
		return "VERBOSE"
	default:
		return "NONE"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l <= LevelVerbose
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &ParseError{Input: strconv.Itoa(int(l)), Type: "level"}
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, its marker letter or its numeric rank.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "0":
		return LevelNone, nil
	case "error", "e", "1":
		return LevelError, nil
	case "warn", "warning", "w", "2":
		return LevelWarn, nil
	case "info", "i", "3":
		return LevelInfo, nil
	case "debug", "d", "4":
		return LevelDebug, nil
	case "verbose", "v", "5":
		return LevelVerbose, nil
	default:
		return DefaultLevel, &ParseError{Input: s, Type: "level"}
	}
}

// ParseError reports a value that could not be parsed.
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "hkdebug: invalid " + e.Type + ": " + strconv.Quote(e.Input)
}

// BuildLevel is the coarse compile-time scale selected with build tags.
// Its ranks map one to one onto Level through BuildLevel.Level.
type BuildLevel uint8

const (
	BuildNone  BuildLevel = 0
	BuildError BuildLevel = 1
	BuildInfo  BuildLevel = 2
	BuildDebug BuildLevel = 3
)

// Level returns the most verbose Level enabled by b. BuildDebug enables both
// debug and verbose records.
func (b BuildLevel) Level() Level {
	switch b {
	case BuildNone:
		return LevelNone
	case BuildError:
		return LevelError
	case BuildInfo:
		return LevelInfo
	default:
		return LevelVerbose
	}
}

func (b BuildLevel) String() string {
	return "build-" + b.Level().String()
}

// CompiledLevel returns the compile-time level of this build.
func CompiledLevel() BuildLevel {
	return compiledLevel
}
