package uri

import (
	"strings"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// PathSegments splits the raw path on "/".
// An absolute path yields an empty first segment, an empty path yields nil.
func (c *core) PathSegments() []string {
	p := c.Path()
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// PathSegmentsDecoded is like [URI.PathSegments] with every segment percent-decoded.
// A segment that fails to decode is returned raw.
func (c *core) PathSegmentsDecoded() []string {
	segs := c.PathSegments()
	for i, seg := range segs {
		if d, ok := grammar.Unescape(seg, grammar.PChar); ok {
			segs[i] = d
		}
	}
	return segs
}

// RemoveDotSegments removes "." and ".." segments from path
// as described in RFC 3986 section 5.2.4.
func RemoveDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	out := util.GetStringBuilder()
	defer util.FreeStringBuilder(out)

	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			popSegment(out)
		case in == "/..":
			in = "/"
			popSegment(out)
		case in == "." || in == "..":
			in = ""
		default:
			i := strings.IndexByte(in[1:], '/')
			if i < 0 {
				i = len(in)
			} else {
				i++
			}
			out.WriteString(in[:i])
			in = in[i:]
		}
	}
	return out.String()
}

// popSegment removes the last segment and its preceding "/" from sb.
func popSegment(sb *strings.Builder) {
	s := sb.String()
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		i = 0
	}
	sb.Reset()
	sb.WriteString(s[:i])
}

// mergePaths merges a relative reference path with the base path, RFC 3986 section 5.2.3.
func mergePaths(baseHasAuthority bool, basePath, refPath string) string {
	if baseHasAuthority && basePath == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		return basePath[:i+1] + refPath
	}
	return refPath
}
