package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/testutil/urimock"
	"github.com/ghettovoice/gouri/uri"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want *report
	}{
		{
			"url",
			"http://us%20er@example.com:8080/a/b%20c?x=1&y=2#top",
			&report{
				Input:     "http://us%20er@example.com:8080/a/b%20c?x=1&y=2#top",
				Kind:      "url",
				Valid:     true,
				Scheme:    &component{Raw: "http"},
				Authority: &component{Raw: "us%20er@example.com:8080", Decoded: "us er@example.com:8080"},
				UserInfo:  &component{Raw: "us%20er", Decoded: "us er"},
				Host:      &component{Raw: "example.com"},
				HostKind:  "name",
				Domains:   []string{"example", "com"},
				Port:      &component{Raw: "8080"},
				PortNum:   8080,
				Path:      component{Raw: "/a/b%20c", Decoded: "/a/b c"},
				Segments:  []string{"", "a", "b c"},
				Query:     &component{Raw: "x=1&y=2"},
				Params:    map[string]string{"x": "1", "y": "2"},
				Fragment:  &component{Raw: "top"},
			},
		},
		{
			"urn",
			"urn:isbn:0451450523",
			&report{
				Input:    "urn:isbn:0451450523",
				Kind:     "urn",
				Valid:    true,
				Scheme:   &component{Raw: "urn"},
				Path:     component{Raw: "isbn:0451450523"},
				Segments: []string{"isbn:0451450523"},
			},
		},
		{
			"ipv6",
			"//[::1]",
			&report{
				Input:     "//[::1]",
				Kind:      "relative",
				Valid:     true,
				Authority: &component{Raw: "[::1]"},
				Host:      &component{Raw: "[::1]"},
				HostKind:  "IPv6",
			},
		},
		{
			"invalid",
			"a b",
			&report{
				Input:    "a b",
				Kind:     "relative",
				Path:     component{Raw: "a b"},
				Segments: []string{"a b"},
				Problems: []string{`invalid URI component: path "a b"`},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := newReport(uri.NewView(c.in), log.Noop)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("newReport(%q) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestNewReport_PlainReader(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	r := urimock.NewMockReader(ctrl)
	r.EXPECT().String().Return("s://h/%zz").AnyTimes()
	r.EXPECT().HasScheme().Return(true).AnyTimes()
	r.EXPECT().Scheme().Return("s").AnyTimes()
	r.EXPECT().HasAuthority().Return(true).AnyTimes()
	r.EXPECT().Authority().Return("h").AnyTimes()
	r.EXPECT().HasUserInfo().Return(false).AnyTimes()
	r.EXPECT().UserInfo().Return("").AnyTimes()
	r.EXPECT().Host().Return("h").AnyTimes()
	r.EXPECT().HasPort().Return(false).AnyTimes()
	r.EXPECT().Port().Return("").AnyTimes()
	r.EXPECT().Path().Return("/%zz").AnyTimes()
	r.EXPECT().HasQuery().Return(false).AnyTimes()
	r.EXPECT().Query().Return("").AnyTimes()
	r.EXPECT().HasFragment().Return(false).AnyTimes()
	r.EXPECT().Fragment().Return("").AnyTimes()

	want := &report{
		Input:     "s://h/%zz",
		Kind:      "absolute",
		Valid:     true,
		Scheme:    &component{Raw: "s"},
		Authority: &component{Raw: "h"},
		Host:      &component{Raw: "h"},
		Path:      component{Raw: "/%zz"},
	}
	if diff := cmp.Diff(want, newReport(r, log.Noop)); diff != "" {
		t.Errorf("newReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPretty(t *testing.T) {
	t.Parallel()

	rep := newReport(uri.NewView("http://h/p%20q?a=1"), log.Noop)
	var buf bytes.Buffer
	n, err := renderPretty(&buf, rep, newPalette(false))
	if err != nil {
		t.Fatalf("renderPretty() error = %v, want nil", err)
	}
	if n != buf.Len() {
		t.Errorf("renderPretty() = %d, want %d", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		"http://h/p%20q?a=1\n",
		"(valid)",
		`"/p%20q" ("/p q")`,
		`a = "1"`,
		"<absent>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderPretty() output misses %q:\n%s", want, out)
		}
	}
}

func TestRenderPretty_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := renderPretty(&buf, &report{Input: "x", Error: "boom"}, newPalette(false)); err != nil {
		t.Fatalf("renderPretty() error = %v, want nil", err)
	}
	if got, want := buf.String(), "x\n  error: boom\n"; got != want {
		t.Errorf("renderPretty() = %q, want %q", got, want)
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	rep := newReport(uri.NewView("mailto:joe@example.com"), log.Noop)
	var buf bytes.Buffer
	n, err := renderJSON(&buf, rep)
	if err != nil {
		t.Fatalf("renderJSON() error = %v, want nil", err)
	}
	if n != buf.Len() || !strings.HasSuffix(buf.String(), "}\n") {
		t.Errorf("renderJSON() = %d, %q, want one line of %d bytes", n, buf.String(), buf.Len())
	}

	var got report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	if diff := cmp.Diff(rep, &got); diff != "" {
		t.Errorf("decoded JSON report mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMsgpack(t *testing.T) {
	t.Parallel()

	reps := []*report{
		newReport(uri.NewView("http://a/b?c=d"), log.Noop),
		{Input: "x", Error: "boom"},
	}
	var buf bytes.Buffer
	for _, rep := range reps {
		if _, err := renderMsgpack(&buf, rep); err != nil {
			t.Fatalf("renderMsgpack() error = %v, want nil", err)
		}
	}

	dec := msgpack.NewDecoder(&buf)
	for i, want := range reps {
		var got report
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("msgpack decode #%d error = %v, want nil", i, err)
		}
		if diff := cmp.Diff(want, &got); diff != "" {
			t.Errorf("decoded msgpack report #%d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := newRenderer("xml", newPalette(false)); err == nil {
		t.Error("newRenderer(\"xml\") error = nil, want error")
	}
}
