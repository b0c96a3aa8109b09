package snowid

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBase62RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 61, 62, 63, 123, 1234567890, math.MaxUint64 / 2, math.MaxUint64}
	for _, v := range values {
		s := EncodeBase62(v)
		got, err := DecodeBase62(s)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if got != v {
			t.Fatalf("roundtrip %d: got %d via %q", v, got, s)
		}
	}
}

func TestBase62CanonicalReencode(t *testing.T) {
	// Any string decode accepts must re-encode to itself (both directions of
	// the round-trip law, for non-padded strings).
	for _, s := range []string{"0", "1", "z", "10", "4Ly3K1aP0d0", "LygHa16AHYF"} {
		v, err := DecodeBase62(s)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if got := EncodeBase62(v); got != s {
			t.Fatalf("reencode %q: got %q", s, got)
		}
	}
}

func TestBase62EncodeZero(t *testing.T) {
	if got := EncodeBase62(0); got != "0" {
		t.Fatalf("encode 0: got %q", got)
	}
}

func TestBase62MaxLength(t *testing.T) {
	if got := EncodeBase62(math.MaxUint64); got != "LygHa16AHYF" {
		t.Fatalf("encode MaxUint64: got %q", got)
	}
	if n := len(EncodeBase62(math.MaxUint64)); n != MaxBase62Len {
		t.Fatalf("MaxUint64 length: got %d", n)
	}
}

func TestBase62DecodeRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"abc!def",
		"with space",
		strings.Repeat("a", 12), // too long, even though alphabet-valid
		"4Ly3K1aP0d0X",          // 12 chars extending a valid 11-char string
		strings.Repeat("z", 11), // alphabet-valid but overflows uint64
		"LygHa16AHYG",           // MaxUint64 + 1
	}
	for _, s := range cases {
		if _, err := DecodeBase62(s); !errors.Is(err, ErrInvalidBase62) {
			t.Fatalf("decode %q: expected ErrInvalidBase62, got %v", s, err)
		}
	}
}

func TestBase62DecodeBoundary(t *testing.T) {
	// An 11-char alphabet-valid string inside the uint64 range decodes fine.
	v, err := DecodeBase62("4Ly3K1aP0d0")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v == 0 {
		t.Fatalf("expected non-zero value")
	}
	// Length is checked before character validity.
	if _, err := DecodeBase62(strings.Repeat("!", 12)); !errors.Is(err, ErrInvalidBase62) {
		t.Fatalf("expected length rejection")
	}
}
