package grammar

import (
	"math/bits"
	"strings"
)

// Charset is an immutable set of bytes.
// The zero value is the empty set. Charsets are compared and copied by value.
type Charset [4]uint64

// NewCharset returns a set containing every byte of chars.
func NewCharset(chars string) Charset {
	var cs Charset
	for i := range len(chars) {
		c := chars[i]
		cs[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// CharRange returns a set containing bytes from lo to hi inclusive.
func CharRange(lo, hi byte) Charset {
	var cs Charset
	for c := int(lo); c <= int(hi); c++ {
		cs[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// Union returns the union of all given sets.
func Union(sets ...Charset) Charset {
	var cs Charset
	for _, s := range sets {
		for i := range cs {
			cs[i] |= s[i]
		}
	}
	return cs
}

// Union returns the union of cs with others.
func (cs Charset) Union(others ...Charset) Charset {
	return Union(append([]Charset{cs}, others...)...)
}

// Without returns a copy of cs with chars removed.
func (cs Charset) Without(chars string) Charset {
	rm := NewCharset(chars)
	for i := range cs {
		cs[i] &^= rm[i]
	}
	return cs
}

// Contains reports whether c belongs to the set.
func (cs Charset) Contains(c byte) bool { return cs[c>>6]&(1<<(c&63)) != 0 }

// ContainsAll reports whether every byte of s belongs to the set.
func (cs Charset) ContainsAll(s string) bool { return cs.IndexNotIn(s) < 0 }

// IndexNotIn returns the index of the first byte of s outside the set, or -1.
func (cs Charset) IndexNotIn(s string) int {
	for i := range len(s) {
		if !cs.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// Len returns the number of members.
func (cs Charset) Len() int {
	var n int
	for _, w := range cs {
		n += bits.OnesCount64(w)
	}
	return n
}

// String returns the members in ascending byte order.
func (cs Charset) String() string {
	var sb strings.Builder
	sb.Grow(cs.Len())
	for c := range 256 {
		if cs.Contains(byte(c)) {
			sb.WriteByte(byte(c))
		}
	}
	return sb.String()
}

// RFC 3986 character classes. Sets leave out pct-encoded, the codec handles it.
var (
	Alpha     = CharRange('A', 'Z').Union(CharRange('a', 'z'))
	Digit     = CharRange('0', '9')
	HexDig    = Digit.Union(CharRange('A', 'F'), CharRange('a', 'f'))
	SubDelims = NewCharset("!$&'()*+,;=")
	GenDelims = NewCharset(":/?#[]@")

	Unreserved    = Union(Alpha, Digit, NewCharset("-._~"))
	SchemeTail    = Union(Alpha, Digit, NewCharset("+-."))
	UserInfoChars = Union(Unreserved, SubDelims, NewCharset(":"))
	RegNameChars  = Union(Unreserved, SubDelims)
	PChar         = Union(Unreserved, SubDelims, NewCharset(":@"))
	PathChars     = PChar.Union(NewCharset("/"))

	QueryOrFragmentChars = PChar.Union(NewCharset("/?"))
	// QueryParamChars is used for keys and values of query pairs.
	QueryParamChars = QueryOrFragmentChars.Without("&=+")

	// AllowedInURI is the set left untouched by JavaScript encodeURI.
	AllowedInURI = Union(Alpha, Digit, NewCharset(";,/?:@&=+$-_.!~*'()#"))
)
