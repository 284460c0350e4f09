package hkdebug

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestBinaryToString(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte("hello"), "hello"},
		{[]byte{0x00, 0xFF, 0x41}, `\x00\xFFA`},
		{[]byte{'\\'}, `\\`},
		{[]byte{'\\', 'x', '4', '1'}, `\\x41`},
		{[]byte{0x1F, 0x20, 0x7E, 0x7F}, `\x1F ~\x7F`},
		{[]byte("\r\n"), `\x0D\x0A`},
	}
	for _, c := range cases {
		if got := BinaryToString(c.in); got != c.want {
			t.Errorf("BinaryToString(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestBinaryToStringRoundTripAllPairs(t *testing.T) {
	seen := make(map[string]struct{}, 1<<16)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			in := []byte{byte(a), byte(b)}
			s := BinaryToString(in)
			if _, dup := seen[s]; dup {
				t.Fatalf("Rendering %q is shared by two inputs", s)
			}
			seen[s] = struct{}{}

			out, err := ParseBinaryString(s)
			if err != nil {
				t.Fatalf("ParseBinaryString(%q) failed: %v", s, err)
			}
			if !bytes.Equal(in, out) {
				t.Fatalf("Round trip of %X gave %X", in, out)
			}
		}
	}
}

func TestBinaryToStringRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 64; n++ {
		in := make([]byte, n)
		rng.Read(in)
		out, err := ParseBinaryString(BinaryToString(in))
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if !bytes.Equal(in, out) {
			t.Fatalf("len %d: round trip of %X gave %X", n, in, out)
		}
	}
}

func TestParseBinaryStringLowercaseHex(t *testing.T) {
	out, err := ParseBinaryString(`\xff\x0a`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(out, []byte{0xFF, 0x0A}) {
		t.Errorf("Expected FF0A, got %X", out)
	}
}

func TestParseBinaryStringErrors(t *testing.T) {
	for _, in := range []string{`\`, `\x`, `\x4`, `\xZZ`, `\q`} {
		if _, err := ParseBinaryString(in); !errors.Is(err, ErrBadEscape) {
			t.Errorf("ParseBinaryString(%q): expected ErrBadEscape, got %v", in, err)
		}
	}
}
