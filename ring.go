package hkdebug

import (
	"fmt"
	"io"
	"sync"
)

// Ring is a fixed-size in-memory log. When full, the oldest whole lines are
// dropped to make room. It is safe for concurrent use so a reader can drain
// it while the firmware keeps logging.
type Ring struct {
	mu   sync.Mutex
	buf  []byte
	head int // index of the oldest byte
	size int // number of bytes held
}

// NewRing returns a Ring holding at most capacity bytes.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]byte, capacity)}
}

// LogToBuffer formats a record and appends it. It has the BufferFunc
// signature.
func (r *Ring) LogToBuffer(format string, args ...any) {
	r.Write([]byte(fmt.Sprintf(format, args...)))
}

// Write appends p, evicting the oldest lines as needed. If p alone is larger
// than the ring only its tail is kept. It never fails.
func (r *Ring) Write(p []byte) (int, error) {
	n := len(p)
	r.mu.Lock()
	defer r.mu.Unlock()

	capacity := len(r.buf)
	if len(p) >= capacity {
		p = p[len(p)-capacity:]
		copy(r.buf, p)
		r.head = 0
		r.size = capacity
		return n, nil
	}
	if over := r.size + len(p) - capacity; over > 0 {
		r.evict(over)
	}
	tail := (r.head + r.size) % capacity
	k := copy(r.buf[tail:], p)
	copy(r.buf, p[k:])
	r.size += len(p)
	return n, nil
}

// evict drops at least n bytes from the front, continuing to the end of the
// line so that no partial line is left at the start.
func (r *Ring) evict(n int) {
	capacity := len(r.buf)
	for n < r.size && r.buf[(r.head+n-1)%capacity] != '\n' {
		n++
	}
	r.head = (r.head + n) % capacity
	r.size -= n
}

// Bytes returns a copy of the contents, oldest first.
func (r *Ring) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Ring) snapshot() []byte {
	out := make([]byte, r.size)
	k := copy(out, r.buf[r.head:min(r.head+r.size, len(r.buf))])
	copy(out[k:], r.buf[:r.size-k])
	return out
}

// WriteTo writes the contents to w, oldest first. The ring is left intact.
func (r *Ring) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// Len returns the number of bytes held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Cap returns the capacity in bytes.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Reset discards the contents.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.size = 0
}
