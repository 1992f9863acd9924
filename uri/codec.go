package uri

import "github.com/ghettovoice/gouri/internal/grammar"

// Charset is a set of bytes left unescaped by [Encode].
type Charset = grammar.Charset

// Character sets of RFC 3986 components.
var (
	Unreserved           = grammar.Unreserved
	SubDelims            = grammar.SubDelims
	SchemeChars          = grammar.SchemeTail
	UserInfoChars        = grammar.UserInfoChars
	RegNameChars         = grammar.RegNameChars
	PChar                = grammar.PChar
	PathChars            = grammar.PathChars
	QueryOrFragmentChars = grammar.QueryOrFragmentChars
	// QueryParamChars is the query set without "&", "=" and "+".
	QueryParamChars = grammar.QueryParamChars
	// AllowedInURI is the set kept by JavaScript encodeURI.
	AllowedInURI = grammar.AllowedInURI
)

// Encode percent-encodes every byte of s outside allowed, "%" included.
func Encode(s string, allowed Charset) string { return grammar.Escape(s, allowed) }

// Decode percent-decodes s.
// It returns false, and no partial result, if s holds a truncated or non-hex escape
// or a literal byte outside allowed.
func Decode(s string, allowed Charset) (string, bool) { return grammar.Unescape(s, allowed) }
