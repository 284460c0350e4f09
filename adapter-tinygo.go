//go:build tinygo

package hkdebug

import (
	"machine"
)

// UARTConfig holds the serial console settings for TinyGo boards.
type UARTConfig struct {
	// UART is the peripheral to use.
	// Defaults to machine.DefaultUART if not provided.
	UART *machine.UART
	// TX and RX are the pins. Zero values keep the board defaults.
	TX, RX machine.Pin
	// Baud is the line speed.
	// Defaults to 115200 if not provided.
	Baud uint32
}

// UARTWriter writes console records to a hardware UART.
type UARTWriter struct {
	uart *machine.UART
}

// OpenUART configures a hardware UART for console output.
func OpenUART(c UARTConfig) (*UARTWriter, error) {
	if c.UART == nil {
		c.UART = machine.DefaultUART
	}
	if c.Baud == 0 {
		c.Baud = 115200
	}
	if err := c.UART.Configure(machine.UARTConfig{BaudRate: c.Baud, TX: c.TX, RX: c.RX}); err != nil {
		return nil, err
	}
	return &UARTWriter{uart: c.UART}, nil
}

func (w *UARTWriter) Write(p []byte) (int, error) {
	return w.uart.Write(p)
}

// Close is a no-op. Hardware UARTs stay configured.
func (w *UARTWriter) Close() error {
	return nil
}
