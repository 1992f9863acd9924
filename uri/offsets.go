package uri

import (
	"strings"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// phase is a bit of the derivation mask. Phases run in declaration order,
// each one reads only the buffer and the offsets of earlier phases.
type phase uint8

const (
	phaseScheme phase = 1 << iota
	phaseFragment
	phaseQuery
	phaseAuthorityEnd
	phaseUserInfo
	phasePort

	phaseAll = phaseScheme | phaseFragment | phaseQuery | phaseAuthorityEnd | phaseUserInfo | phasePort
)

// deps lists the phases each phase needs before it can run.
var deps = map[phase]phase{
	phaseScheme:       0,
	phaseFragment:     0,
	phaseQuery:        phaseFragment,
	phaseAuthorityEnd: phaseScheme | phaseQuery,
	phaseUserInfo:     phaseAuthorityEnd,
	phasePort:         phaseUserInfo,
}

var phaseOrder = [...]phase{
	phaseScheme,
	phaseFragment,
	phaseQuery,
	phaseAuthorityEnd,
	phaseUserInfo,
	phasePort,
}

// offsets holds the component boundaries of a buffer.
//
// An absent component collapses onto the boundary that follows it,
// so resolved offsets never decrease:
//
//	schemeEnd <= authStart <= userInfoEnd <= portStart <= authEnd <= queryStart <= fragmentStart <= len(buf)
//
// Without an authority, authStart and authEnd both point to the first path byte.
// Without a user-info, userInfoEnd equals authStart.
type offsets struct {
	derived phase
	runs    int

	schemeEnd     int
	authStart     int
	userInfoEnd   int
	portStart     int
	authEnd       int
	queryStart    int
	fragmentStart int
}

func (o *offsets) reset() {
	*o = offsets{runs: o.runs}
}

// derive runs every phase from want that is not derived yet, dependencies first.
func (o *offsets) derive(buf string, want phase) {
	for i := len(phaseOrder) - 1; i >= 0; i-- {
		if p := phaseOrder[i]; want&p != 0 {
			want |= deps[p]
		}
	}
	for _, p := range phaseOrder {
		if want&p == 0 || o.derived&p != 0 {
			continue
		}
		switch p {
		case phaseScheme:
			o.deriveScheme(buf)
		case phaseFragment:
			o.deriveFragment(buf)
		case phaseQuery:
			o.deriveQuery(buf)
		case phaseAuthorityEnd:
			o.deriveAuthorityEnd(buf)
		case phaseUserInfo:
			o.deriveUserInfo(buf)
		case phasePort:
			o.derivePort(buf)
		}
		o.derived |= p
		o.runs++
	}
}

func (o *offsets) deriveScheme(buf string) {
	o.schemeEnd, o.authStart = 0, 0
	if strings.HasPrefix(buf, "//") {
		o.authStart = 2
		return
	}
	i := strings.IndexByte(buf, ':')
	if i <= 0 || !isSchemeText(buf[:i]) {
		return
	}
	o.schemeEnd = i
	if strings.HasPrefix(buf[i+1:], "//") {
		o.authStart = i + 3
	} else {
		o.authStart = i + 1
	}
}

func (o *offsets) deriveFragment(buf string) {
	if i := strings.IndexByte(buf, '#'); i >= 0 {
		o.fragmentStart = i
	} else {
		o.fragmentStart = len(buf)
	}
}

func (o *offsets) deriveQuery(buf string) {
	if i := strings.IndexByte(buf[:o.fragmentStart], '?'); i >= 0 {
		o.queryStart = i
	} else {
		o.queryStart = o.fragmentStart
	}
}

func (o *offsets) deriveAuthorityEnd(buf string) {
	if !o.hasAuthority(buf) {
		o.authEnd = o.authStart
		return
	}
	if i := strings.IndexByte(buf[o.authStart:o.queryStart], '/'); i >= 0 {
		o.authEnd = o.authStart + i
	} else {
		o.authEnd = o.queryStart
	}
}

func (o *offsets) deriveUserInfo(buf string) {
	if i := strings.IndexByte(buf[o.authStart:o.authEnd], '@'); i >= 0 {
		o.userInfoEnd = o.authStart + i
	} else {
		o.userInfoEnd = o.authStart
	}
}

func (o *offsets) derivePort(buf string) {
	o.portStart = o.authEnd

	hs := o.hostStart(buf)
	i := o.authEnd - 1
	for i >= hs && grammar.Digit.Contains(buf[i]) {
		i--
	}
	if i < hs || buf[i] != ':' {
		return
	}
	// "[::1]" ends with a digit group, the port colon must follow the bracket.
	if buf[hs] == '[' && (i == hs || buf[i-1] != ']') {
		return
	}
	o.portStart = i
}

func (o *offsets) hasScheme() bool { return o.schemeEnd > 0 }

func (o *offsets) hasAuthority(buf string) bool {
	return o.authStart >= 2 && buf[o.authStart-2:o.authStart] == "//"
}

func (o *offsets) hasUserInfo(buf string) bool {
	return o.userInfoEnd < o.authEnd && buf[o.userInfoEnd] == '@'
}

func (o *offsets) hostStart(buf string) int {
	if o.hasUserInfo(buf) {
		return o.userInfoEnd + 1
	}
	return o.userInfoEnd
}

func (o *offsets) hasPort() bool { return o.portStart < o.authEnd }

func (o *offsets) hasQuery() bool { return o.queryStart < o.fragmentStart }

func (o *offsets) hasFragment(buf string) bool { return o.fragmentStart < len(buf) }

func isSchemeText(s string) bool {
	return len(s) > 0 && grammar.Alpha.Contains(s[0]) && grammar.SchemeTail.ContainsAll(s[1:])
}
