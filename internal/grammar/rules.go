package grammar

import "github.com/ghettovoice/abnf"

// RFC 3986 Appendix A.

func lit(s string) abnf.Operator { return abnf.Literal(`"`+s+`"`, []byte(s)) }

func rng(key string, lo, hi byte) abnf.Operator { return abnf.Range(key, []byte{lo}, []byte{hi}) }

// oneOf matches a single byte of chars.
func oneOf(key, chars string) abnf.Operator {
	ops := make([]abnf.Operator, len(chars))
	for i := range len(chars) {
		ops[i] = lit(chars[i : i+1])
	}
	return abnf.AltFirst(key, ops[0], ops[1:]...)
}

var (
	alpha  = abnf.AltFirst("ALPHA", rng("%x41-5A", 'A', 'Z'), rng("%x61-7A", 'a', 'z'))
	digit  = rng("DIGIT", '0', '9')
	hexdig = abnf.AltFirst("HEXDIG", digit, rng("%x41-46", 'A', 'F'), rng("%x61-66", 'a', 'f'))

	pctEncoded = abnf.Concat("pct-encoded", lit("%"), hexdig, hexdig)
	unreserved = abnf.AltFirst("unreserved", alpha, digit, oneOf("unreserved-mark", "-._~"))
	subDelims  = oneOf("sub-delims", "!$&'()*+,;=")
	pchar      = abnf.AltFirst("pchar", unreserved, pctEncoded, subDelims, oneOf("pchar-mark", ":@"))
)

var scheme = abnf.Concat(
	"scheme",
	alpha,
	abnf.Repeat0Inf("scheme-tail", abnf.AltFirst("scheme-char", alpha, digit, oneOf("scheme-mark", "+-."))),
)

var userinfo = abnf.Repeat0Inf(
	"userinfo",
	abnf.AltFirst("userinfo-char", unreserved, pctEncoded, subDelims, lit(":")),
)

var decOctet = abnf.Alt(
	"dec-octet",
	abnf.Concat("dec-octet-250", lit("25"), rng("%x30-35", '0', '5')),
	abnf.Concat("dec-octet-200", lit("2"), rng("%x30-34", '0', '4'), digit),
	abnf.Concat("dec-octet-100", lit("1"), digit, digit),
	abnf.Concat("dec-octet-10", rng("%x31-39", '1', '9'), digit),
	digit,
)

var ipv4Address = abnf.Concat(
	"IPv4address",
	decOctet, lit("."), decOctet, lit("."), decOctet, lit("."), decOctet,
)

var (
	h16      = abnf.Repeat("h16", 1, 4, hexdig)
	h16Colon = abnf.Concat("h16-colon", h16, lit(":"))
	ls32     = abnf.Alt("ls32", abnf.Concat("h16-pair", h16, lit(":"), h16), ipv4Address)
	dcolon   = lit("::")
)

// h16Prefix is [ *max( h16 ":" ) h16 ].
func h16Prefix(maxReps uint) abnf.Operator {
	return abnf.Optional("h16-prefix", abnf.Concat("h16-list", abnf.Repeat("h16-colons", 0, maxReps, h16Colon), h16))
}

var ipv6Address = abnf.Alt(
	"IPv6address",
	abnf.Concat("IPv6-full", abnf.Repeat("h16-colons", 6, 6, h16Colon), ls32),
	abnf.Concat("IPv6-lead", dcolon, abnf.Repeat("h16-colons", 5, 5, h16Colon), ls32),
	abnf.Concat("IPv6-1", abnf.Optional("h16-prefix", h16), dcolon, abnf.Repeat("h16-colons", 4, 4, h16Colon), ls32),
	abnf.Concat("IPv6-2", h16Prefix(1), dcolon, abnf.Repeat("h16-colons", 3, 3, h16Colon), ls32),
	abnf.Concat("IPv6-3", h16Prefix(2), dcolon, abnf.Repeat("h16-colons", 2, 2, h16Colon), ls32),
	abnf.Concat("IPv6-4", h16Prefix(3), dcolon, h16Colon, ls32),
	abnf.Concat("IPv6-5", h16Prefix(4), dcolon, ls32),
	abnf.Concat("IPv6-6", h16Prefix(5), dcolon, h16),
	abnf.Concat("IPv6-7", h16Prefix(6), dcolon),
)

var ipvFuture = abnf.Concat(
	"IPvFuture",
	oneOf("v", "vV"),
	abnf.Repeat1Inf("version", hexdig),
	lit("."),
	abnf.Repeat1Inf("address", abnf.AltFirst("ipvf-char", unreserved, subDelims, lit(":"))),
)

var (
	ipLiteral = abnf.Concat("IP-literal", lit("["), abnf.Alt("ip-literal-addr", ipv6Address, ipvFuture), lit("]"))
	regName   = abnf.Repeat0Inf("reg-name", abnf.AltFirst("reg-name-char", unreserved, pctEncoded, subDelims))
	host      = abnf.Alt("host", ipLiteral, ipv4Address, regName)
	port      = abnf.Repeat0Inf("port", digit)

	authority = abnf.Concat(
		"authority",
		abnf.Optional("userinfo-at", abnf.Concat("userinfo-at", userinfo, lit("@"))),
		host,
		abnf.Optional("colon-port", abnf.Concat("colon-port", lit(":"), port)),
	)
)

var (
	segment     = abnf.Repeat0Inf("segment", pchar)
	segmentNz   = abnf.Repeat1Inf("segment-nz", pchar)
	segmentNzNc = abnf.Repeat1Inf(
		"segment-nz-nc",
		abnf.AltFirst("segment-nz-nc-char", unreserved, pctEncoded, subDelims, lit("@")),
	)
	slashSegments = abnf.Repeat0Inf("slash-segments", abnf.Concat("slash-segment", lit("/"), segment))

	pathAbempty  = abnf.Concat("path-abempty", slashSegments)
	pathAbsolute = abnf.Concat(
		"path-absolute",
		lit("/"),
		abnf.Optional("path-absolute-tail", abnf.Concat("path-absolute-tail", segmentNz, slashSegments)),
	)
	pathNoscheme = abnf.Concat("path-noscheme", segmentNzNc, slashSegments)
	pathRootless = abnf.Concat("path-rootless", segmentNz, slashSegments)
	path         = abnf.Alt("path", pathAbempty, pathAbsolute, pathNoscheme, pathRootless)
)

var (
	query    = abnf.Repeat0Inf("query", abnf.AltFirst("query-char", pchar, lit("/"), lit("?")))
	fragment = abnf.Repeat0Inf("fragment", abnf.AltFirst("fragment-char", pchar, lit("/"), lit("?")))

	optQuery    = abnf.Optional("question-query", abnf.Concat("question-query", lit("?"), query))
	optFragment = abnf.Optional("hash-fragment", abnf.Concat("hash-fragment", lit("#"), fragment))
)

var (
	netPath = abnf.Concat("net-path", lit("//"), authority, pathAbempty)

	hierPart     = abnf.Alt("hier-part", netPath, pathAbsolute, pathRootless)
	relativePart = abnf.Alt("relative-part", netPath, pathAbsolute, pathNoscheme)

	uri = abnf.Concat(
		"URI",
		scheme, lit(":"), abnf.Optional("hier-part", hierPart), optQuery, optFragment,
	)
	absoluteURI = abnf.Concat(
		"absolute-URI",
		scheme, lit(":"), abnf.Optional("hier-part", hierPart), optQuery,
	)
	relativeRef = abnf.Concat(
		"relative-ref",
		abnf.Optional("relative-part", relativePart), optQuery, optFragment,
	)
	uriReference = abnf.Alt("URI-reference", uri, relativeRef)
)
