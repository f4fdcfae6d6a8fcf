package grammar

import (
	"bytes"

	"github.com/ghettovoice/pk11uri/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && IsHexChar(s[i+1]) && IsHexChar(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Already well-formed "% HEXDIG HEXDIG" triplets pass through untouched.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsResAvailChar(c) && !IsAlphanumChar(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexChar(s[i+1]) && IsHexChar(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

// IsHexChar checks HEXDIG rule.
func IsHexChar(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsFullyPctEncoded reports whether s consists solely of one or more
// "% HEXDIG HEXDIG" triplets, i.e. the whole value is percent-encoded.
func IsFullyPctEncoded[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || len(s)%3 != 0 {
		return false
	}
	for i := 0; i < len(s); i += 3 {
		if s[i] != '%' || !IsHexChar(s[i+1]) || !IsHexChar(s[i+2]) {
			return false
		}
	}
	return true
}
