package uri

import (
	"net/netip"
	"strings"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// HostKind is the kind of a [Host].
type HostKind uint8

const (
	// HostName is a registered name, it is also used for IPvFuture literals.
	HostName HostKind = iota
	HostIPv4
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	default:
		return "name"
	}
}

// Host is a classified host: an IPv4 address, an IPv6 address or a name.
type Host struct {
	kind HostKind
	addr netip.Addr
	name string
}

// Kind returns the kind of the host.
func (h Host) Kind() HostKind { return h.kind }

// Addr returns the address of an IPv4 or IPv6 host.
func (h Host) Addr() (netip.Addr, bool) { return h.addr, h.kind != HostName }

// Name returns the decoded name of a [HostName] host.
func (h Host) Name() string { return h.name }

// IsZero reports whether the host is an empty name.
func (h Host) IsZero() bool { return h.kind == HostName && h.name == "" }

// String returns the host as it is written in a URI, IPv6 addresses are put in square brackets.
func (h Host) String() string {
	switch h.kind {
	case HostIPv4:
		return h.addr.String()
	case HostIPv6:
		return "[" + h.addr.String() + "]"
	default:
		return h.name
	}
}

// classifyHost checks raw against IPv4address, then IP-literal with IPv6address.
// Everything else is a name, percent-decoded when possible.
func classifyHost(raw string) Host {
	if grammar.IsIPv4Address(raw) {
		if a, err := netip.ParseAddr(raw); err == nil {
			return Host{kind: HostIPv4, addr: a}
		}
	}
	if inner, ok := strings.CutPrefix(raw, "["); ok {
		if inner, ok := strings.CutSuffix(inner, "]"); ok && grammar.IsIPv6Address(inner) {
			if a, err := netip.ParseAddr(inner); err == nil {
				return Host{kind: HostIPv6, addr: a}
			}
		}
		return Host{kind: HostName, name: raw}
	}
	if name, ok := grammar.Unescape(raw, grammar.RegNameChars); ok {
		return Host{kind: HostName, name: name}
	}
	return Host{kind: HostName, name: raw}
}

// HostStructured returns the classified host.
func (c *core) HostStructured() Host { return classifyHost(c.Host()) }

// IsIP reports whether the host is an IPv4 or IPv6 address.
func (c *core) IsIP() bool { return c.HostStructured().Kind() != HostName }
