package uri_test

import (
	"testing"

	"github.com/ghettovoice/gouri/uri"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		in     string
		set    uri.Charset
		want   string
		wantOK bool
	}{
		{"truncated", "%2", uri.AllowedInURI, "", false},
		{"non hex", "%G1", uri.AllowedInURI, "", false},
		{"plain", "abc", uri.AllowedInURI, "abc", true},
		{"escape", "a%2Fb", uri.PChar, "a/b", true},
		{"literal outside set", "a/b", uri.PChar, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := uri.Decode(c.in, c.set)
			if got != c.want || ok != c.wantOK {
				t.Errorf("uri.Decode(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"http://example.com/a/b?c=d#e",
		"mailto:joe@example.com",
		"~user/$(x)*!';,+&=",
	}
	for _, in := range inputs {
		enc := uri.Encode(in, uri.AllowedInURI)
		if enc != in {
			t.Errorf("uri.Encode(%q) = %q, want it unchanged", in, enc)
		}
		if got, ok := uri.Decode(enc, uri.AllowedInURI); !ok || got != in {
			t.Errorf("uri.Decode(uri.Encode(%q)) = (%q, %v), want (%q, true)", in, got, ok, in)
		}
	}

	if got, want := uri.Encode("a b%", uri.Unreserved), "a%20b%25"; got != want {
		t.Errorf("uri.Encode(\"a b%%\") = %q, want %q", got, want)
	}
}
