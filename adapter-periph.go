//go:build !tinygo

package hkdebug

import (
	"fmt"
	"io"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// UARTConfig holds the serial console settings for Linux hosts.
type UARTConfig struct {
	// Port is the UART name, alias or number as known to periph.io.
	// Defaults to the first available port if not provided.
	Port string
	// Baud is the line speed.
	// Defaults to 115200 if not provided.
	Baud int
}

// UARTWriter is an io.WriteCloser over a periph.io connection, for use with
// NewConsole.
type UARTWriter struct {
	mu      sync.Mutex
	conn    conn.Conn
	port    io.Closer
	scratch []byte // read side of full duplex transfers
}

// NewUARTWriter wraps an already connected conn.Conn. closer may be nil.
func NewUARTWriter(c conn.Conn, closer io.Closer) *UARTWriter {
	return &UARTWriter{conn: c, port: closer}
}

// OpenUART initializes periph.io and opens a serial port for console output.
func OpenUART(c UARTConfig) (*UARTWriter, error) {
	// 1. Initialize periph.io host
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	// 2. Default speed
	if c.Baud == 0 {
		c.Baud = 115200
	}

	// 3. Open the port
	p, err := uartreg.Open(c.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port: %w", err)
	}

	// 4. Connect (8N1, no flow control)
	cn, err := p.Connect(physic.Frequency(c.Baud)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to create UART connection: %w", err)
	}
	return NewUARTWriter(cn, p), nil
}

// Write sends p as a single transaction.
func (w *UARTWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var r []byte
	if w.conn.Duplex() == conn.Full {
		// Full duplex needs a read buffer of the same length.
		if cap(w.scratch) < len(p) {
			w.scratch = make([]byte, len(p))
		}
		r = w.scratch[:len(p)]
	}
	if err := w.conn.Tx(p, r); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close releases the port.
func (w *UARTWriter) Close() error {
	if w.port == nil {
		return nil
	}
	return w.port.Close()
}

func (w *UARTWriter) String() string {
	return "UART(" + w.conn.String() + ")"
}
