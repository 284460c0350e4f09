//go:build tinygo

package hkdebug

import (
	"io"
	"machine"
)

// consoleWriter is the board's default serial port.
func consoleWriter() io.Writer {
	return machine.Serial
}
