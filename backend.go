package hkdebug

import (
	"fmt"
	"io"
)

// Console writes each record straight to a writer, typically a serial port.
//
// Records look like:
//
//	[   1234] E HomeKit: failed: 7
type Console struct {
	w io.Writer
}

// NewConsole returns a Console writing to w. A nil w discards every record.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w}
}

func (c *Console) Emit(level Level, millis uint32, tag, format string, args ...any) {
	// Write errors are the writer's business.
	_, _ = fmt.Fprintf(c.w, "[%7d] %c %s: "+format+"\n", preamble(millis, level.Marker(), tag, args)...)
}

// BufferFunc appends a printf-style record to in-memory storage. Capacity
// and overflow are entirely its concern. Ring.LogToBuffer is one.
type BufferFunc func(format string, args ...any)

// Buffer hands each record to a BufferFunc for later retrieval, for when
// nothing is listening on the console.
//
// Records look like:
//
//	(1234) ERROR   HomeKit: failed: 7
type Buffer struct {
	fn BufferFunc
}

// NewBuffer returns a Buffer appending through fn. A nil fn discards every
// record.
func NewBuffer(fn BufferFunc) *Buffer {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	return &Buffer{fn: fn}
}

func (b *Buffer) Emit(level Level, millis uint32, tag, format string, args ...any) {
	b.fn("(%d) %-7s %s: "+format+"\r\n", preamble(millis, level.Tag(), tag, args)...)
}

func preamble(millis uint32, marker any, tag string, args []any) []any {
	out := make([]any, 0, len(args)+3)
	out = append(out, millis, marker, tag)
	return append(out, args...)
}
