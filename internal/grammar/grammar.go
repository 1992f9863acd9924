// Package grammar implements the RFC 3986 URI grammar:
// character classes, the percent-encoding codec and ABNF rules.
package grammar

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(4 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// matchAll reports whether op consumes the whole s.
func matchAll[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsURIReference checks s against the URI-reference rule.
// The empty string is a valid same-document reference.
func IsURIReference[T constraints.Byteseq](s T) bool {
	return len(s) == 0 || matchAll(uriReference, s)
}

// IsAbsoluteURI checks s against the absolute-URI rule.
func IsAbsoluteURI[T constraints.Byteseq](s T) bool { return matchAll(absoluteURI, s) }

func IsScheme[T constraints.Byteseq](s T) bool { return matchAll(scheme, s) }

func IsUserInfo[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(userinfo, s) }

// IsHost checks s against the host rule (IP-literal, IPv4address or reg-name).
func IsHost[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(host, s) }

func IsIPv4Address[T constraints.Byteseq](s T) bool { return matchAll(ipv4Address, s) }

// IsIPv6Address checks the bare address, without square brackets.
func IsIPv6Address[T constraints.Byteseq](s T) bool { return matchAll(ipv6Address, s) }

// IsIPLiteral checks a bracketed IPv6 or IPvFuture address.
func IsIPLiteral[T constraints.Byteseq](s T) bool { return matchAll(ipLiteral, s) }

func IsRegName[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(regName, s) }

func IsPort[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(port, s) }

// IsPath checks s against any of the path rules.
func IsPath[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(path, s) }

func IsQuery[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(query, s) }

func IsFragment[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(fragment, s) }
