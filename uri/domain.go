package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
)

// Domains returns the labels of a name host split on ".", nil for IP and empty hosts.
// Splitting stops at the first empty label, so a trailing "." is dropped.
// Backslashes are plain bytes, there is no DNS escaping.
func (c *core) Domains() []string {
	h := c.HostStructured()
	if h.Kind() != HostName || h.Name() == "" || strings.HasPrefix(h.Name(), "[") {
		return nil
	}
	labels := strings.Split(h.Name(), ".")
	for i, l := range labels {
		if l == "" {
			labels = labels[:i]
			break
		}
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}

// IsDomainName reports whether the host is a syntactically valid domain name.
func (c *core) IsDomainName() bool {
	h := c.HostStructured()
	if h.Kind() != HostName || h.Name() == "" {
		return false
	}
	_, ok := dns.IsDomainName(h.Name())
	return ok
}

// TopLevelDomain returns the last label of the host.
// Multi-label public suffixes are not recognised: "example.co.uk" yields "uk".
func (c *core) TopLevelDomain() string {
	if ls := c.Domains(); len(ls) > 0 {
		return ls[len(ls)-1]
	}
	return ""
}

func (c *core) HasTopLevelDomain() bool { return c.TopLevelDomain() != "" }

// SecondLevelDomain returns the label before the top-level domain.
func (c *core) SecondLevelDomain() string {
	if ls := c.Domains(); len(ls) > 1 {
		return ls[len(ls)-2]
	}
	return ""
}

func (c *core) HasSecondLevelDomain() bool { return c.SecondLevelDomain() != "" }

// Subdomains returns the labels before the second-level domain joined with ".".
func (c *core) Subdomains() string {
	if ls := c.Domains(); len(ls) > 2 {
		return strings.Join(ls[:len(ls)-2], ".")
	}
	return ""
}

func (c *core) HasSubdomains() bool { return c.Subdomains() != "" }

// domainsForUpdate returns the labels of a host that domain setters may change.
func (u *URI) domainsForUpdate() ([]string, error) {
	h := u.HostStructured()
	if h.Kind() != HostName {
		return nil, errtrace.Wrap(newInvalidComponentErr("host", u.Host()))
	}
	return u.Domains(), nil
}

func checkLabel(name, label string) error {
	if label == "" || strings.IndexByte(label, '.') >= 0 {
		return errtrace.Wrap(newInvalidComponentErr(name, label))
	}
	return nil
}

// SetTopLevelDomain replaces the last label of the host, or sets the host to tld if it is empty.
// It fails with [ErrInvalidComponent] for an IP host or a tld that is not a single label.
func (u *URI) SetTopLevelDomain(tld string) error {
	if err := checkLabel("top-level domain", tld); err != nil {
		return errtrace.Wrap(err)
	}
	ls, err := u.domainsForUpdate()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if len(ls) == 0 {
		ls = []string{tld}
	} else {
		ls[len(ls)-1] = tld
	}
	u.SetHost(strings.Join(ls, "."))
	return nil
}

// ClearTopLevelDomain removes the last label of the host.
func (u *URI) ClearTopLevelDomain() {
	ls, err := u.domainsForUpdate()
	if err != nil || len(ls) == 0 {
		return
	}
	u.SetHost(strings.Join(ls[:len(ls)-1], "."))
}

// SetSecondLevelDomain replaces the label before the top-level domain,
// a single-label host gets sld in front of it.
// It fails with [ErrInvalidComponent] for an IP or empty host or an sld that is not a single label.
func (u *URI) SetSecondLevelDomain(sld string) error {
	if err := checkLabel("second-level domain", sld); err != nil {
		return errtrace.Wrap(err)
	}
	ls, err := u.domainsForUpdate()
	if err != nil {
		return errtrace.Wrap(err)
	}
	switch len(ls) {
	case 0:
		return errtrace.Wrap(newInvalidComponentErr("host", u.Host()))
	case 1:
		ls = []string{sld, ls[0]}
	default:
		ls[len(ls)-2] = sld
	}
	u.SetHost(strings.Join(ls, "."))
	return nil
}

// ClearSecondLevelDomain removes the label before the top-level domain.
func (u *URI) ClearSecondLevelDomain() {
	ls, err := u.domainsForUpdate()
	if err != nil || len(ls) < 2 {
		return
	}
	ls = append(ls[:len(ls)-2], ls[len(ls)-1])
	u.SetHost(strings.Join(ls, "."))
}

// SetSubdomains replaces everything before the second-level domain with sub,
// which may hold several labels. An empty sub clears the subdomains.
// It fails with [ErrInvalidComponent] unless the host has both top and second level domains.
func (u *URI) SetSubdomains(sub string) error {
	ls, err := u.domainsForUpdate()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if len(ls) < 2 {
		return errtrace.Wrap(newInvalidComponentErr("host", u.Host()))
	}
	if _, ok := dns.IsDomainName(sub); sub != "" && (!ok || strings.HasSuffix(sub, ".")) {
		return errtrace.Wrap(newInvalidComponentErr("subdomains", sub))
	}

	base := strings.Join(ls[len(ls)-2:], ".")
	if sub == "" {
		u.SetHost(base)
	} else {
		u.SetHost(sub + "." + base)
	}
	return nil
}

// ClearSubdomains keeps only the second and top level domains.
func (u *URI) ClearSubdomains() {
	if ls, err := u.domainsForUpdate(); err == nil && len(ls) > 2 {
		u.SetHost(strings.Join(ls[len(ls)-2:], "."))
	}
}
