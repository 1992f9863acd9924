package uri

import (
	"maps"
	"slices"
	"strings"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// QueryValues parses the query as "&" separated key=value pairs.
// Keys and values are percent-decoded, the last occurrence of a key wins.
// Pairs with an empty or undecodable key are dropped, an undecodable value becomes "".
func (c *core) QueryValues() map[string]string {
	q := c.Query()
	vals := make(map[string]string)
	if q == "" {
		return vals
	}
	for pair := range strings.SplitSeq(q, "&") {
		rk, rv, _ := strings.Cut(pair, "=")
		k, ok := grammar.Unescape(rk, grammar.QueryOrFragmentChars)
		if !ok || k == "" {
			continue
		}
		v, ok := grammar.Unescape(rv, grammar.QueryOrFragmentChars)
		if !ok {
			v = ""
		}
		vals[k] = v
	}
	return vals
}

// QueryValue returns the decoded value of key.
func (c *core) QueryValue(key string) (string, bool) {
	v, ok := c.QueryValues()[key]
	return v, ok
}

// SetQueryValues replaces the query with vals rendered as key=value pairs in key order.
// Keys and values are percent-encoded, so "&", "=" and "+" inside them are kept as data.
// An empty map leaves an empty query.
func (u *URI) SetQueryValues(vals map[string]string) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, k := range slices.Sorted(maps.Keys(vals)) {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(grammar.Escape(k, grammar.QueryParamChars))
		sb.WriteByte('=')
		sb.WriteString(grammar.Escape(vals[k], grammar.QueryParamChars))
	}
	u.setRawQuery(sb.String())
}
