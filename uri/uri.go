package uri

import (
	"fmt"
	"strconv"
	"sync"
	"unsafe"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/types"
)

var (
	_ Reader                 = (*URI)(nil)
	_ Reader                 = (*View)(nil)
	_ types.ValidFlag        = (*URI)(nil)
	_ types.Validatable      = (*URI)(nil)
	_ types.Equalable        = (*URI)(nil)
	_ types.Cloneable[*URI]  = (*URI)(nil)
	_ types.Cloneable[*View] = (*View)(nil)
)

// Reader is the read side shared by [URI] and [View].
// Getters return raw text, a component that is absent yields an empty string
// and a false Has* result.
type Reader interface {
	fmt.Stringer

	Scheme() string
	HasScheme() bool
	Authority() string
	HasAuthority() bool
	UserInfo() string
	HasUserInfo() bool
	Host() string
	HasHost() bool
	Port() string
	HasPort() bool
	Path() string
	Query() string
	HasQuery() bool
	Fragment() string
	HasFragment() bool
}

// core is the text of a reference and its lazily derived component offsets.
// The offsets are the only state changed by reads, mu guards them.
type core struct {
	mu  sync.Mutex
	buf string
	off offsets
}

// snapshot derives the phases p if needed and returns the buffer with its offsets.
func (c *core) snapshot(p phase) (string, offsets) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.off.derived&p != p {
		c.off.derive(c.buf, p)
	}
	return c.buf, c.off
}

// replace rewrites buf[lo:hi] with s and drops every derived offset.
func (c *core) replace(lo, hi int, s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf = c.buf[:lo] + s + c.buf[hi:]
	c.off.reset()
}

func (c *core) assign(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf = s
	c.off.reset()
}

func (c *core) text() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf
}

// String returns the reference text.
func (c *core) String() string { return c.text() }

// Bytes returns a copy of the reference text.
func (c *core) Bytes() []byte { return []byte(c.text()) }

// Len returns the length of the reference text in bytes.
func (c *core) Len() int { return len(c.text()) }

// IsEmpty reports whether the reference text is empty.
func (c *core) IsEmpty() bool { return c.Len() == 0 }

// EncodedURI returns the text with every byte outside [AllowedInURI] percent-encoded,
// the way JavaScript encodeURI does.
func (c *core) EncodedURI() string { return grammar.Escape(c.text(), grammar.AllowedInURI) }

// DecodedURI returns the percent-decoded text.
// It returns false if the text holds a malformed escape or a byte outside [AllowedInURI].
func (c *core) DecodedURI() (string, bool) { return grammar.Unescape(c.text(), grammar.AllowedInURI) }

// IsValid reports whether the text is non-empty and matches the RFC 3986 URI-reference rule.
func (c *core) IsValid() bool {
	s := c.text()
	return len(s) > 0 && grammar.IsURIReference(s)
}

// Validate checks every present component against its grammar.
// All failures are returned joined, each one wraps [ErrInvalidComponent].
func (c *core) Validate() error {
	b, o := c.snapshot(phaseAll)
	if len(b) == 0 {
		return errtrace.Wrap(grammar.ErrEmptyInput)
	}

	var errs []error
	check := func(name, val string, ok bool) {
		if !ok {
			errs = append(errs, newInvalidComponentErr(name, val))
		}
	}

	if o.hasScheme() {
		s := b[:o.schemeEnd]
		check("scheme", s, grammar.IsScheme(s))
	}
	if o.hasAuthority(b) {
		if o.hasUserInfo(b) {
			s := b[o.authStart:o.userInfoEnd]
			check("user-info", s, grammar.IsUserInfo(s))
		}
		s := b[o.hostStart(b):o.portStart]
		check("host", s, grammar.IsHost(s))
		if o.hasPort() {
			s := b[o.portStart+1 : o.authEnd]
			check("port", s, grammar.IsPort(s))
		}
	}
	s := b[o.authEnd:o.queryStart]
	check("path", s, grammar.IsPath(s))
	if o.hasQuery() {
		s := b[o.queryStart+1 : o.fragmentStart]
		check("query", s, grammar.IsQuery(s))
	}
	if o.hasFragment(b) {
		s := b[o.fragmentStart+1:]
		check("fragment", s, grammar.IsFragment(s))
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid URI:", errs...))
}

// Equal reports whether val renders to the same text.
// val can be a *URI, *View, any [Reader], a string or a []byte.
func (c *core) Equal(val any) bool {
	var other string
	switch v := val.(type) {
	case *URI:
		if v == nil {
			return false
		}
		other = v.String()
	case *View:
		if v == nil {
			return false
		}
		other = v.String()
	case Reader:
		other = v.String()
	case string:
		other = v
	case []byte:
		other = string(v)
	default:
		return false
	}
	return c.text() == other
}

// Format implements [fmt.Formatter].
// Verbs 's' and 'v' print the text, 'q' prints it quoted,
// other verbs are applied to the text as a string.
func (c *core) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, c.text())
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.text()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.text())
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c *core) MarshalText() ([]byte, error) { return c.Bytes(), nil }

// URI is a mutable URI reference.
// The zero value is an empty reference ready to use.
// A URI must not be copied after first use.
type URI struct {
	core
}

// New returns a URI holding a copy of s. The text is not validated.
func New[T constraints.Byteseq](s T) *URI {
	u := &URI{}
	u.buf = string(s)
	return u
}

// Parse returns a URI holding a copy of s
// if s is a syntactically valid URI reference.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	if _, err := grammar.ParseURIReference(s); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return New(s), nil
}

// Assign replaces the whole text of the URI.
func (u *URI) Assign(s string) { u.assign(s) }

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	return New(u.text())
}

// View returns a read only view of the current text.
// Later changes of u are not visible through the view.
func (u *URI) View() *View { return NewView(u.text()) }

// UnmarshalText implements [encoding.TextUnmarshaler].
// Unlike [Parse] it accepts any text, use [URI.Validate] to check it.
func (u *URI) UnmarshalText(text []byte) error {
	u.assign(string(text))
	return nil
}

// View is a read only URI reference over borrowed text.
// A View must not be copied after first use.
type View struct {
	core
}

// NewView returns a view over s.
func NewView(s string) *View {
	v := &View{}
	v.buf = s
	return v
}

// NewViewBytes returns a view over b without copying it.
// b must not be modified while the view is in use.
func NewViewBytes(b []byte) *View {
	if len(b) == 0 {
		return NewView("")
	}
	return NewView(unsafe.String(&b[0], len(b)))
}

// Clone returns a view over the same text.
func (v *View) Clone() *View {
	if v == nil {
		return nil
	}
	return NewView(v.text())
}

// URI returns an owning copy of the view.
func (v *View) URI() *URI { return New(v.text()) }
