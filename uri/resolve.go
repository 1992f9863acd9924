package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/util"
)

// Resolve returns the target of ref resolved against the receiver as the base URI
// per RFC 3986 section 5.2.2. Components are taken raw, without re-encoding.
// It fails with [ErrRelativeBase] if the base has no scheme.
func (c *core) Resolve(ref Reader) (*URI, error) {
	if !c.HasScheme() {
		return nil, errtrace.Wrap(ErrRelativeBase)
	}

	var t target
	switch {
	case ref.HasScheme():
		t.scheme = ref.Scheme()
		t.setAuthority(ref)
		t.path = RemoveDotSegments(ref.Path())
		t.setQuery(ref)
	case ref.HasAuthority():
		t.scheme = c.Scheme()
		t.setAuthority(ref)
		t.path = RemoveDotSegments(ref.Path())
		t.setQuery(ref)
	default:
		t.scheme = c.Scheme()
		t.setAuthority(c)
		switch rp := ref.Path(); {
		case rp == "":
			t.path = c.Path()
			if ref.HasQuery() {
				t.setQuery(ref)
			} else {
				t.setQuery(c)
			}
		case rp[0] == '/':
			t.path = RemoveDotSegments(rp)
			t.setQuery(ref)
		default:
			t.path = RemoveDotSegments(mergePaths(c.HasAuthority(), c.Path(), rp))
			t.setQuery(ref)
		}
	}
	t.hasFragment, t.fragment = ref.HasFragment(), ref.Fragment()

	return New(t.String()), nil
}

// ResolveString is like [URI.Resolve] with ref given as text.
func (c *core) ResolveString(ref string) (*URI, error) {
	return errtrace.Wrap2(c.Resolve(NewView(ref)))
}

// target holds the components of a resolved reference.
type target struct {
	scheme       string
	authority    string
	hasAuthority bool
	path         string
	query        string
	hasQuery     bool
	fragment     string
	hasFragment  bool
}

func (t *target) setAuthority(r Reader) {
	t.hasAuthority, t.authority = r.HasAuthority(), r.Authority()
}

func (t *target) setQuery(r Reader) {
	t.hasQuery, t.query = r.HasQuery(), r.Query()
}

// String recomposes the components, RFC 3986 section 5.3.
func (t *target) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(t.scheme)
	sb.WriteByte(':')
	if t.hasAuthority {
		sb.WriteString("//")
		sb.WriteString(t.authority)
	} else if strings.HasPrefix(t.path, "//") {
		sb.WriteString("/.")
	}
	sb.WriteString(t.path)
	if t.hasQuery {
		sb.WriteByte('?')
		sb.WriteString(t.query)
	}
	if t.hasFragment {
		sb.WriteByte('#')
		sb.WriteString(t.fragment)
	}
	return sb.String()
}
