package hkdebug

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestRingKeepsOrder(t *testing.T) {
	r := NewRing(64)
	r.LogToBuffer("one %d\n", 1)
	r.LogToBuffer("two %d\n", 2)

	if got := string(r.Bytes()); got != "one 1\ntwo 2\n" {
		t.Errorf("Unexpected contents: %q", got)
	}
	if r.Len() != 12 || r.Cap() != 64 {
		t.Errorf("Expected len 12 cap 64, got len %d cap %d", r.Len(), r.Cap())
	}
}

func TestRingEvictsWholeLines(t *testing.T) {
	r := NewRing(16)
	r.Write([]byte("aaaa\n"))   // 5
	r.Write([]byte("bbbb\n"))   // 10
	r.Write([]byte("cccc\n"))   // 15
	r.Write([]byte("dddddd\n")) // needs 6 more, drops "aaaa\n" and "bbbb\n"

	if got := string(r.Bytes()); got != "cccc\ndddddd\n" {
		t.Errorf("Unexpected contents after eviction: %q", got)
	}
}

func TestRingWrapsAround(t *testing.T) {
	r := NewRing(10)
	for i := 0; i < 20; i++ {
		r.LogToBuffer("%d\n", i%10)
	}
	got := string(r.Bytes())
	if got != "5\n6\n7\n8\n9\n" {
		t.Errorf("Unexpected contents after wrap: %q", got)
	}
}

func TestRingOversizedWrite(t *testing.T) {
	r := NewRing(4)
	r.Write([]byte("x\n"))
	n, err := r.Write([]byte("abcdefgh"))
	if err != nil || n != 8 {
		t.Errorf("Expected full write to be reported, got %d, %v", n, err)
	}
	if got := string(r.Bytes()); got != "efgh" {
		t.Errorf("Expected tail of oversized write, got %q", got)
	}
}

func TestRingWriteToAndReset(t *testing.T) {
	r := NewRing(32)
	r.LogToBuffer("(%d) %s\r\n", 5, "hi")

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) || buf.String() != "(5) hi\r\n" {
		t.Errorf("Unexpected WriteTo output %q (%d)", buf.String(), n)
	}
	if r.Len() == 0 {
		t.Error("Expected WriteTo to leave the ring intact")
	}

	r.Reset()
	if r.Len() != 0 || len(r.Bytes()) != 0 {
		t.Error("Expected empty ring after Reset")
	}
}

func TestRingConcurrentWriters(t *testing.T) {
	r := NewRing(1024)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.LogToBuffer("g%d-%03d\n", g, i)
			}
		}(g)
	}
	wg.Wait()

	for _, line := range strings.Split(strings.TrimSuffix(string(r.Bytes()), "\n"), "\n") {
		var g, i int
		if _, err := fmt.Sscanf(line, "g%d-%d", &g, &i); err != nil {
			t.Fatalf("Corrupted line %q: %v", line, err)
		}
	}
}
