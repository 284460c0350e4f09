//go:build !tinygo

package hkdebug

import (
	"io"
	"os"
)

// consoleWriter is stdout on hosts. Use OpenUART to log to a serial port
// instead.
func consoleWriter() io.Writer {
	return os.Stdout
}
