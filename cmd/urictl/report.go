package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"braces.dev/errtrace"
	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/uri"
)

// component is a present URI component.
type component struct {
	Raw     string `json:"raw"               msgpack:"raw"`
	Decoded string `json:"decoded,omitempty" msgpack:"decoded,omitempty"`
}

// decodable is the set of literal bytes accepted in a component when it is decoded for display.
var decodable = uri.AllowedInURI.Union(grammar.NewCharset("[]"))

// report describes one URI reference.
type report struct {
	Input     string            `json:"input"                msgpack:"input"`
	Kind      string            `json:"kind"                 msgpack:"kind"`
	Valid     bool              `json:"valid"                msgpack:"valid"`
	Problems  []string          `json:"problems,omitempty"   msgpack:"problems,omitempty"`
	Scheme    *component        `json:"scheme,omitempty"     msgpack:"scheme,omitempty"`
	Authority *component        `json:"authority,omitempty"  msgpack:"authority,omitempty"`
	UserInfo  *component        `json:"user_info,omitempty"  msgpack:"user_info,omitempty"`
	Host      *component        `json:"host,omitempty"       msgpack:"host,omitempty"`
	HostKind  string            `json:"host_kind,omitempty"  msgpack:"host_kind,omitempty"`
	Domains   []string          `json:"domains,omitempty"    msgpack:"domains,omitempty"`
	Port      *component        `json:"port,omitempty"       msgpack:"port,omitempty"`
	PortNum   uint16            `json:"port_number,omitempty" msgpack:"port_number,omitempty"`
	Path      component         `json:"path"                 msgpack:"path"`
	Segments  []string          `json:"segments,omitempty"   msgpack:"segments,omitempty"`
	Query     *component        `json:"query,omitempty"      msgpack:"query,omitempty"`
	Params    map[string]string `json:"params,omitempty"     msgpack:"params,omitempty"`
	Fragment  *component        `json:"fragment,omitempty"   msgpack:"fragment,omitempty"`
	Error     string            `json:"error,omitempty"      msgpack:"error,omitempty"`
}

// inspector is implemented by *uri.URI and *uri.View on top of [uri.Reader].
type inspector interface {
	uri.Reader
	IsValid() bool
	Validate() error
	IsURN() bool
	IsURL() bool
	HostStructured() uri.Host
	PortUint16() uint16
	Domains() []string
	PathSegmentsDecoded() []string
	QueryValues() map[string]string
}

// newReport describes r. Plain readers get the raw components only,
// readers implementing the full URI API get the derived details too.
func newReport(r uri.Reader, logger *slog.Logger) *report {
	rep := &report{Input: r.String(), Kind: "relative"}
	if r.HasScheme() {
		rep.Kind = "absolute"
	}

	decode := func(name, raw string) string {
		s, ok := uri.Decode(raw, decodable)
		if !ok {
			logger.Warn("component is not decodable, keeping raw text",
				slog.String("component", name),
				slog.String("raw", raw),
			)
			return ""
		}
		if s == raw {
			return ""
		}
		return s
	}
	optional := func(name string, has bool, raw string) *component {
		if !has {
			return nil
		}
		return &component{Raw: raw, Decoded: decode(name, raw)}
	}

	rep.Scheme = optional("scheme", r.HasScheme(), r.Scheme())
	rep.Authority = optional("authority", r.HasAuthority(), r.Authority())
	rep.UserInfo = optional("user-info", r.HasUserInfo(), r.UserInfo())
	rep.Host = optional("host", r.HasAuthority(), r.Host())
	rep.Port = optional("port", r.HasPort(), r.Port())
	rep.Path = component{Raw: r.Path(), Decoded: decode("path", r.Path())}
	rep.Query = optional("query", r.HasQuery(), r.Query())
	rep.Fragment = optional("fragment", r.HasFragment(), r.Fragment())

	ins, ok := r.(inspector)
	if !ok {
		rep.Valid = rep.Input != ""
		return rep
	}

	switch {
	case ins.IsURN():
		rep.Kind = "urn"
	case ins.IsURL():
		rep.Kind = "url"
	}
	rep.Valid = ins.IsValid()
	if err := ins.Validate(); err != nil {
		rep.Problems = problems(err)
	}
	if ins.HasAuthority() {
		rep.HostKind = ins.HostStructured().Kind().String()
		rep.Domains = ins.Domains()
	}
	rep.PortNum = ins.PortUint16()
	if segs := ins.PathSegmentsDecoded(); len(segs) > 0 {
		rep.Segments = segs
	}
	if vals := ins.QueryValues(); len(vals) > 0 {
		rep.Params = vals
	}
	return rep
}

// problems flattens joined validation errors into messages.
func problems(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, problems(e)...)
		}
		return msgs
	}
	var cerr *errorutil.ComponentError
	if errors.As(err, &cerr) {
		return []string{cerr.Error()}
	}
	return []string{err.Error()}
}

// palette colors the pretty output.
type palette struct {
	key, value, absent, good, bad *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		key:    color.New(color.FgCyan),
		value:  color.New(color.FgWhite, color.Bold),
		absent: color.New(color.Faint),
		good:   color.New(color.FgGreen, color.Bold),
		bad:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.key, p.value, p.absent, p.good, p.bad} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// renderer writes a report to w and returns the number of bytes written.
type renderer func(w io.Writer, rep *report) (int, error)

func newRenderer(format string, pal palette) (renderer, error) {
	switch format {
	case formatPretty:
		return func(w io.Writer, rep *report) (int, error) {
			return errtrace.Wrap2(renderPretty(w, rep, pal))
		}, nil
	case formatJSON:
		return renderJSON, nil
	case formatMsgpack:
		return renderMsgpack, nil
	default:
		return nil, errtrace.Wrap(fmt.Errorf("unknown format: %s", format))
	}
}

func renderPretty(w io.Writer, rep *report, pal palette) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprintf("%s\n", pal.value.Sprint(rep.Input))
	if rep.Error != "" {
		cw.Fprintf("  %s %s\n", pal.key.Sprint("error:"), pal.bad.Sprint(rep.Error))
		return errtrace.Wrap2(cw.Result())
	}

	if rep.Valid {
		cw.Fprintf("  %-10s %s (%s)\n", pal.key.Sprint("kind:"), rep.Kind, pal.good.Sprint("valid"))
	} else {
		cw.Fprintf("  %-10s %s (%s)\n", pal.key.Sprint("kind:"), rep.Kind, pal.bad.Sprint("invalid"))
	}
	field := func(name string, c *component) {
		cw.Fprintf("  %-10s ", pal.key.Sprint(name+":"))
		switch {
		case c == nil:
			cw.Fprintf("%s\n", pal.absent.Sprint("<absent>"))
		case c.Decoded != "":
			cw.Fprintf("%s %s\n", pal.value.Sprintf("%q", c.Raw), pal.absent.Sprintf("(%q)", c.Decoded))
		default:
			cw.Fprintf("%s\n", pal.value.Sprintf("%q", c.Raw))
		}
	}
	field("scheme", rep.Scheme)
	field("authority", rep.Authority)
	field("user-info", rep.UserInfo)
	field("host", rep.Host)
	if rep.HostKind != "" {
		cw.Fprintf("  %-10s %s\n", pal.key.Sprint("host kind:"), rep.HostKind)
	}
	if len(rep.Domains) > 0 {
		cw.Fprintf("  %-10s %v\n", pal.key.Sprint("domains:"), rep.Domains)
	}
	field("port", rep.Port)
	field("path", &rep.Path)
	if len(rep.Segments) > 0 {
		cw.Fprintf("  %-10s %q\n", pal.key.Sprint("segments:"), rep.Segments)
	}
	field("query", rep.Query)
	cw.Call(func(w io.Writer) (int, error) { return renderParams(w, rep.Params, pal) })
	field("fragment", rep.Fragment)
	for _, p := range rep.Problems {
		cw.Fprintf("  %s %s\n", pal.bad.Sprint("!"), p)
	}
	return errtrace.Wrap2(cw.Result())
}

// renderParams lists query parameters in key order.
func renderParams(w io.Writer, params map[string]string, pal palette) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	for _, k := range slices.Sorted(maps.Keys(params)) {
		cw.Fprintf("    %s = %q\n", pal.key.Sprint(k), params[k])
	}
	return errtrace.Wrap2(cw.Result())
}

// renderJSON writes rep as one JSON line.
func renderJSON(w io.Writer, rep *report) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if err := json.NewEncoder(cw).Encode(rep); err != nil {
		return cw.Count(), errtrace.Wrap(err)
	}
	return errtrace.Wrap2(cw.Result())
}

// renderMsgpack writes rep as one value of a msgpack stream.
func renderMsgpack(w io.Writer, rep *report) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	enc := msgpack.NewEncoder(cw)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(rep); err != nil {
		return cw.Count(), errtrace.Wrap(err)
	}
	return errtrace.Wrap2(cw.Result())
}

// output renders reports with the configured format and color.
type output struct {
	w      io.Writer
	render renderer
}

func newOutput(w io.Writer) (*output, error) {
	r, err := newRenderer(cfg.Output.Format, newPalette(cfg.useColor(w)))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &output{w: w, render: r}, nil
}

func (o *output) write(rep *report) error {
	n, err := o.render(o.w, rep)
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.Debug("report written", slog.String("input", rep.Input), slog.Int("bytes", n))
	return nil
}
