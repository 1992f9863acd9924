package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"fortio.org/safecast"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

var defaultPorts = map[string]uint16{
	"http":   80,
	"https":  443,
	"ftp":    21,
	"ssh":    22,
	"telnet": 23,
	"ftps":   990,
}

// Scheme returns the scheme without the trailing ":".
func (c *core) Scheme() string {
	b, o := c.snapshot(phaseScheme)
	return b[:o.schemeEnd]
}

func (c *core) HasScheme() bool {
	_, o := c.snapshot(phaseScheme)
	return o.hasScheme()
}

// Authority returns the text between "//" and the path.
func (c *core) Authority() string {
	b, o := c.snapshot(phaseAuthorityEnd)
	if !o.hasAuthority(b) {
		return ""
	}
	return b[o.authStart:o.authEnd]
}

// HasAuthority reports whether the reference has "//", even with an empty authority.
func (c *core) HasAuthority() bool {
	b, o := c.snapshot(phaseScheme)
	return o.hasAuthority(b)
}

// UserInfo returns the text before "@" of the authority.
func (c *core) UserInfo() string {
	b, o := c.snapshot(phaseUserInfo)
	if !o.hasUserInfo(b) {
		return ""
	}
	return b[o.authStart:o.userInfoEnd]
}

func (c *core) HasUserInfo() bool {
	b, o := c.snapshot(phaseUserInfo)
	return o.hasUserInfo(b)
}

func (c *core) UserInfoDecoded() (string, bool) {
	return grammar.Unescape(c.UserInfo(), grammar.UserInfoChars)
}

// Username returns the user-info part before the first ":".
func (c *core) Username() string {
	name, _, _ := strings.Cut(c.UserInfo(), ":")
	return name
}

// Password returns the user-info part after the first ":".
func (c *core) Password() string {
	_, pass, _ := strings.Cut(c.UserInfo(), ":")
	return pass
}

// HasUsername reports whether the user info holds a non-empty part before the first ":".
func (c *core) HasUsername() bool { return c.Username() != "" }

func (c *core) HasPassword() bool { return strings.IndexByte(c.UserInfo(), ':') >= 0 }

func (c *core) UsernameDecoded() (string, bool) {
	return grammar.Unescape(c.Username(), grammar.UserInfoChars)
}

func (c *core) PasswordDecoded() (string, bool) {
	return grammar.Unescape(c.Password(), grammar.UserInfoChars)
}

// Host returns the raw host, IPv6 addresses keep their square brackets.
func (c *core) Host() string {
	b, o := c.snapshot(phasePort)
	if !o.hasAuthority(b) {
		return ""
	}
	return b[o.hostStart(b):o.portStart]
}

// HasHost reports whether the host is not empty.
func (c *core) HasHost() bool { return c.Host() != "" }

// HostDecoded returns the percent-decoded host.
// IP literals are returned as is.
func (c *core) HostDecoded() (string, bool) {
	h := c.Host()
	if strings.HasPrefix(h, "[") {
		return h, grammar.IsIPLiteral(h)
	}
	return grammar.Unescape(h, grammar.RegNameChars)
}

// Port returns the digits after the port ":", it can be empty for "host:".
func (c *core) Port() string {
	b, o := c.snapshot(phasePort)
	if !o.hasPort() {
		return ""
	}
	return b[o.portStart+1 : o.authEnd]
}

func (c *core) HasPort() bool {
	_, o := c.snapshot(phasePort)
	return o.hasPort()
}

// DefaultPort returns the well-known port of the scheme or 0.
func (c *core) DefaultPort() uint16 { return defaultPorts[util.LCase(c.Scheme())] }

// PortUint16 returns the explicit port, or the [DefaultPort] if there is none
// or it does not fit into 16 bits.
func (c *core) PortUint16() uint16 {
	if p := c.Port(); p != "" {
		if n, err := strconv.ParseUint(p, 10, 64); err == nil {
			if v, err := safecast.Conv[uint16](n); err == nil {
				return v
			}
		}
	}
	return c.DefaultPort()
}

func (c *core) Path() string {
	b, o := c.snapshot(phaseAuthorityEnd)
	return b[o.authEnd:o.queryStart]
}

func (c *core) HasPath() bool { return c.Path() != "" }

func (c *core) PathDecoded() (string, bool) {
	return grammar.Unescape(c.Path(), grammar.PathChars)
}

// Query returns the text between "?" and the fragment.
func (c *core) Query() string {
	b, o := c.snapshot(phaseQuery)
	if !o.hasQuery() {
		return ""
	}
	return b[o.queryStart+1 : o.fragmentStart]
}

func (c *core) HasQuery() bool {
	_, o := c.snapshot(phaseQuery)
	return o.hasQuery()
}

func (c *core) QueryDecoded() (string, bool) {
	return grammar.Unescape(c.Query(), grammar.QueryOrFragmentChars)
}

// Fragment returns the text after "#".
func (c *core) Fragment() string {
	b, o := c.snapshot(phaseFragment)
	if !o.hasFragment(b) {
		return ""
	}
	return b[o.fragmentStart+1:]
}

func (c *core) HasFragment() bool {
	b, o := c.snapshot(phaseFragment)
	return o.hasFragment(b)
}

func (c *core) FragmentDecoded() (string, bool) {
	return grammar.Unescape(c.Fragment(), grammar.QueryOrFragmentChars)
}

// IsURN reports whether the reference has a scheme and no authority, like "urn:isbn:123".
func (c *core) IsURN() bool {
	b, o := c.snapshot(phaseScheme)
	return o.hasScheme() && !o.hasAuthority(b)
}

// IsURL reports whether the reference has a scheme and an authority.
func (c *core) IsURL() bool {
	b, o := c.snapshot(phaseScheme)
	return o.hasScheme() && o.hasAuthority(b)
}

// IsRelativeReference reports whether the reference has no scheme.
func (c *core) IsRelativeReference() bool { return !c.HasScheme() }

// IsAbsoluteURI reports whether the reference has a scheme and no fragment.
func (c *core) IsAbsoluteURI() bool { return c.HasScheme() && !c.HasFragment() }

func (c *core) IsPathAbsolute() bool { return strings.HasPrefix(c.Path(), "/") }

// IsNormalized reports whether the path holds no "." or ".." segments.
func (c *core) IsNormalized() bool {
	for seg := range strings.SplitSeq(c.Path(), "/") {
		if seg == "." || seg == ".." {
			return false
		}
	}
	return true
}

// SetScheme sets the scheme.
// It fails with [ErrInvalidComponent] unless s is a letter followed by letters, digits, "+", "-" or ".".
func (u *URI) SetScheme(s string) error {
	if !isSchemeText(s) {
		return errtrace.Wrap(newInvalidComponentErr("scheme", s))
	}

	_, o := u.snapshot(phaseScheme)
	if o.hasScheme() {
		u.replace(0, o.schemeEnd, s)
	} else {
		u.replace(0, 0, s+":")
	}
	return nil
}

// ClearScheme removes the scheme and its ":".
// A rootless path with ":" in the first segment gets a "./" prefix
// so it is not read back as a scheme.
func (u *URI) ClearScheme() {
	b, o := u.snapshot(phaseAuthorityEnd)
	if !o.hasScheme() {
		return
	}

	repl := ""
	if !o.hasAuthority(b) {
		p := b[o.authEnd:o.queryStart]
		if seg, _, _ := strings.Cut(p, "/"); strings.IndexByte(seg, ':') >= 0 {
			repl = "./"
		}
	}
	u.replace(0, o.schemeEnd+1, repl)
}

// insertAuthority adds "//" with auth in front of the path of a reference without authority.
// A rootless path becomes absolute.
func (u *URI) insertAuthority(b string, o offsets, auth string) {
	s := "//" + auth
	if p := b[o.authEnd:o.queryStart]; p != "" && p[0] != '/' {
		s += "/"
	}
	u.replace(o.authStart, o.authStart, s)
}

// SetUserInfo sets the user-info, bytes outside the user-info set are percent-encoded.
func (u *URI) SetUserInfo(s string) {
	s = grammar.Escape(s, grammar.UserInfoChars)

	b, o := u.snapshot(phaseUserInfo)
	switch {
	case o.hasUserInfo(b):
		u.replace(o.authStart, o.userInfoEnd, s)
	case o.hasAuthority(b):
		u.replace(o.authStart, o.authStart, s+"@")
	default:
		u.insertAuthority(b, o, s+"@")
	}
}

// ClearUserInfo removes the user-info and its "@".
func (u *URI) ClearUserInfo() {
	b, o := u.snapshot(phaseUserInfo)
	if o.hasUserInfo(b) {
		u.replace(o.authStart, o.userInfoEnd+1, "")
	}
}

// SetHost sets the host.
// A bare IPv6 address is put in square brackets, IP literals are kept as is,
// other bytes outside the reg-name set are percent-encoded.
// A reference without authority gets "//" in front of the host.
func (u *URI) SetHost(s string) {
	switch {
	case grammar.IsIPv6Address(s):
		s = "[" + s + "]"
	case grammar.IsIPLiteral(s):
	default:
		s = grammar.Escape(s, grammar.RegNameChars)
	}

	b, o := u.snapshot(phasePort)
	if o.hasAuthority(b) {
		u.replace(o.hostStart(b), o.portStart, s)
	} else {
		u.insertAuthority(b, o, s)
	}
}

// ClearHost empties the host and keeps the rest of the authority.
func (u *URI) ClearHost() {
	b, o := u.snapshot(phasePort)
	if o.hasAuthority(b) {
		u.replace(o.hostStart(b), o.portStart, "")
	}
}

// SetPort sets the port.
// It fails with [ErrInvalidComponent] unless s is one or more digits.
func (u *URI) SetPort(s string) error {
	if s == "" || !grammar.Digit.ContainsAll(s) {
		return errtrace.Wrap(newInvalidComponentErr("port", s))
	}

	b, o := u.snapshot(phasePort)
	switch {
	case o.hasPort():
		u.replace(o.portStart+1, o.authEnd, s)
	case o.hasAuthority(b):
		u.replace(o.authEnd, o.authEnd, ":"+s)
	default:
		u.insertAuthority(b, o, ":"+s)
	}
	return nil
}

// SetPortUint16 sets the port from a number.
func (u *URI) SetPortUint16(p uint16) {
	u.SetPort(strconv.FormatUint(uint64(p), 10)) //nolint:errcheck
}

// ClearPort removes the port and its ":".
func (u *URI) ClearPort() {
	_, o := u.snapshot(phasePort)
	if o.hasPort() {
		u.replace(o.portStart, o.authEnd, "")
	}
}

// ClearAuthority removes the authority with its "//".
// A path starting with "//" gets a "/." prefix.
func (u *URI) ClearAuthority() {
	b, o := u.snapshot(phaseAuthorityEnd)
	if !o.hasAuthority(b) {
		return
	}

	repl := ""
	if strings.HasPrefix(b[o.authEnd:o.queryStart], "//") {
		repl = "/."
	}
	u.replace(o.authStart-2, o.authEnd, repl)
}

// SetPath sets the path, bytes outside the path set are percent-encoded.
func (u *URI) SetPath(s string) { u.setRawPath(grammar.Escape(s, grammar.PathChars)) }

// SetPathSegments sets the path from segments, each one is percent-encoded
// with the pchar set, so "/" inside a segment is kept as data.
func (u *URI) SetPathSegments(segs []string) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, seg := range segs {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(grammar.Escape(seg, grammar.PChar))
	}
	u.setRawPath(sb.String())
}

// ClearPath removes the path.
func (u *URI) ClearPath() { u.setRawPath("") }

// NormalizePath applies [RemoveDotSegments] to the path.
func (u *URI) NormalizePath() { u.setRawPath(RemoveDotSegments(u.Path())) }

// setRawPath replaces the path with already encoded p,
// adjusting it so the reference keeps its structure.
func (u *URI) setRawPath(p string) {
	b, o := u.snapshot(phaseAuthorityEnd)
	switch {
	case o.hasAuthority(b):
		if p != "" && p[0] != '/' {
			p = "/" + p
		}
	case strings.HasPrefix(p, "//"):
		p = "/." + p
	case !o.hasScheme():
		if seg, _, _ := strings.Cut(p, "/"); strings.IndexByte(seg, ':') >= 0 {
			p = "./" + p
		}
	}
	u.replace(o.authEnd, o.queryStart, p)
}

// SetQuery sets the query, bytes outside the query set are percent-encoded.
func (u *URI) SetQuery(s string) { u.setRawQuery(grammar.Escape(s, grammar.QueryOrFragmentChars)) }

func (u *URI) setRawQuery(q string) {
	_, o := u.snapshot(phaseQuery)
	if o.hasQuery() {
		u.replace(o.queryStart+1, o.fragmentStart, q)
	} else {
		u.replace(o.queryStart, o.queryStart, "?"+q)
	}
}

// ClearQuery removes the query and its "?".
func (u *URI) ClearQuery() {
	_, o := u.snapshot(phaseQuery)
	if o.hasQuery() {
		u.replace(o.queryStart, o.fragmentStart, "")
	}
}

// SetFragment sets the fragment, bytes outside the fragment set are percent-encoded.
func (u *URI) SetFragment(s string) {
	s = grammar.Escape(s, grammar.QueryOrFragmentChars)

	b, o := u.snapshot(phaseFragment)
	if o.hasFragment(b) {
		u.replace(o.fragmentStart+1, len(b), s)
	} else {
		u.replace(len(b), len(b), "#"+s)
	}
}

// ClearFragment removes the fragment and its "#".
func (u *URI) ClearFragment() {
	b, o := u.snapshot(phaseFragment)
	if o.hasFragment(b) {
		u.replace(o.fragmentStart, len(b), "")
	}
}
