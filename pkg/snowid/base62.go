package snowid

import (
	"errors"
	"fmt"
	"math"
)

// The alphabet order is part of the wire format: ids encoded by any build of
// this package must decode to the same integers on every other build.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxBase62Len is the length of math.MaxUint64 in base62. Longer input can
// never denote a 64-bit value and is rejected before any other validation.
const MaxBase62Len = 11

// ErrInvalidBase62 is returned for any undecodable base62 input: empty
// strings, over-long strings, bytes outside the alphabet, or values that
// overflow uint64.
var ErrInvalidBase62 = errors.New("snowid: invalid base62 input")

// base62Index maps an ASCII byte to its alphabet value, 0xff for non-members.
var base62Index = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 0xff
	}
	for i := 0; i < len(base62Alphabet); i++ {
		t[base62Alphabet[i]] = byte(i)
	}
	return t
}()

// EncodeBase62 renders v as its shortest base62 form. Zero encodes as "0".
func EncodeBase62(v uint64) string {
	if v == 0 {
		return base62Alphabet[:1]
	}
	var buf [MaxBase62Len]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = base62Alphabet[v%62]
		v /= 62
	}
	return string(buf[i:])
}

// DecodeBase62 parses a base62 string into the integer it denotes.
// Overflow is checked per character so an over-range 11-byte string fails
// rather than wrapping.
func DecodeBase62(s string) (uint64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidBase62)
	}
	if len(s) > MaxBase62Len {
		return 0, fmt.Errorf("%w: length %d exceeds maximum %d", ErrInvalidBase62, len(s), MaxBase62Len)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := base62Index[s[i]]
		if d == 0xff {
			return 0, fmt.Errorf("%w: byte %q at position %d", ErrInvalidBase62, s[i], i)
		}
		if v > (math.MaxUint64-uint64(d))/62 {
			return 0, fmt.Errorf("%w: value overflows uint64", ErrInvalidBase62)
		}
		v = v*62 + uint64(d)
	}
	return v, nil
}
