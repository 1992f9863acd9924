package grammar

import "github.com/ghettovoice/gouri/internal/constraints"

// Escape replaces every byte of s outside allowed with its "%" HEXDIG HEXDIG form.
// Hex digits are upper-cased. A "%" is escaped too unless allowed contains it.
func Escape[T constraints.Byteseq](s T, allowed Charset) T {
	var n int
	for i := range len(s) {
		if !allowed.Contains(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	b := make([]byte, 0, len(s)+2*n)
	for i := range len(s) {
		c := s[i]
		if allowed.Contains(c) {
			b = append(b, c)
			continue
		}
		b = append(b, '%', upperhex[c>>4], upperhex[c&15])
	}
	return T(b)
}

// Unescape decodes every "%" HEXDIG HEXDIG triplet of s.
// It fails as a whole, returning false, on a truncated or non-hex escape
// and on a literal byte outside allowed. There is no partial output.
func Unescape[T constraints.Byteseq](s T, allowed Charset) (T, bool) {
	var zero T

	pct := -1
	for i := range len(s) {
		if s[i] == '%' {
			pct = i
			break
		}
		if !allowed.Contains(s[i]) {
			return zero, false
		}
	}
	if pct < 0 {
		return s, true
	}

	b := make([]byte, pct, len(s))
	for i := range pct {
		b[i] = s[i]
	}
	for i := pct; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%':
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return zero, false
			}
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		case allowed.Contains(c):
			b = append(b, c)
		default:
			return zero, false
		}
	}
	return T(b), true
}

// IsEscaped reports whether s holds only bytes of allowed and well-formed escapes.
func IsEscaped[T constraints.Byteseq](s T, allowed Charset) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%':
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return false
			}
			i += 2
		case !allowed.Contains(s[i]):
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool { return HexDig.Contains(c) }

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
