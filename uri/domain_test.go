package uri_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/uri"
)

func TestURI_Domains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    []string
		wantTLD string
		wantSLD string
		wantSub string
		wantDN  bool
	}{
		{"http://www.example.com/", []string{"www", "example", "com"}, "com", "example", "www", true},
		// Public suffixes are not recognised.
		{"http://www.example.co.uk/", []string{"www", "example", "co", "uk"}, "uk", "co", "www.example", true},
		{"http://example.com./", []string{"example", "com"}, "com", "example", "", true},
		{"http://localhost/", []string{"localhost"}, "localhost", "", "", true},
		{"http://127.0.0.1/", nil, "", "", "", false},
		{"http://[::1]/", nil, "", "", "", false},
		{"urn:a:b", nil, "", "", "", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			u := uri.New(c.in)
			if diff := cmp.Diff(u.Domains(), c.want); diff != "" {
				t.Errorf("u.Domains() mismatch\ndiff (-got +want):\n%v", diff)
			}
			if got := u.TopLevelDomain(); got != c.wantTLD {
				t.Errorf("u.TopLevelDomain() = %q, want %q", got, c.wantTLD)
			}
			if got := u.SecondLevelDomain(); got != c.wantSLD {
				t.Errorf("u.SecondLevelDomain() = %q, want %q", got, c.wantSLD)
			}
			if got := u.Subdomains(); got != c.wantSub {
				t.Errorf("u.Subdomains() = %q, want %q", got, c.wantSub)
			}
			if got := u.HasSubdomains(); got != (c.wantSub != "") {
				t.Errorf("u.HasSubdomains() = %v, want %v", got, c.wantSub != "")
			}
			if got := u.IsDomainName(); got != c.wantDN {
				t.Errorf("u.IsDomainName() = %v, want %v", got, c.wantDN)
			}
		})
	}
}

func TestURI_Domains_PlainSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    []string
		wantSLD string
	}{
		{"http://a%5C.b.com/", []string{`a\`, "b", "com"}, "b"},
		{"http://a..b.com/", []string{"a"}, ""},
		{"http://.com/", nil, ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			u := uri.New(c.in)
			if diff := cmp.Diff(u.Domains(), c.want); diff != "" {
				t.Errorf("u.Domains() mismatch\ndiff (-got +want):\n%v", diff)
			}
			if got := u.SecondLevelDomain(); got != c.wantSLD {
				t.Errorf("u.SecondLevelDomain() = %q, want %q", got, c.wantSLD)
			}
		})
	}
}

func TestURI_DomainSetters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		fn      func(u *uri.URI) error
		want    string
		wantErr error
	}{
		{"tld", "http://www.example.com/", func(u *uri.URI) error { return u.SetTopLevelDomain("org") }, "http://www.example.org/", nil},
		{"tld on empty host", "http:///p", func(u *uri.URI) error { return u.SetTopLevelDomain("org") }, "http://org/p", nil},
		{"tld with dot", "http://a.com/", func(u *uri.URI) error { return u.SetTopLevelDomain("a.b") }, "http://a.com/", uri.ErrInvalidComponent},
		{"tld on ip", "http://1.2.3.4/", func(u *uri.URI) error { return u.SetTopLevelDomain("com") }, "http://1.2.3.4/", uri.ErrInvalidComponent},
		{"clear tld", "http://a.example.com/", func(u *uri.URI) error { u.ClearTopLevelDomain(); return nil }, "http://a.example/", nil},
		{"sld", "http://www.example.com/", func(u *uri.URI) error { return u.SetSecondLevelDomain("test") }, "http://www.test.com/", nil},
		{"sld on single label", "http://com/", func(u *uri.URI) error { return u.SetSecondLevelDomain("x") }, "http://x.com/", nil},
		{"sld on empty host", "http:///", func(u *uri.URI) error { return u.SetSecondLevelDomain("x") }, "http:///", uri.ErrInvalidComponent},
		{"clear sld", "http://www.example.com/", func(u *uri.URI) error { u.ClearSecondLevelDomain(); return nil }, "http://www.com/", nil},
		{"subdomains", "http://www.example.com/", func(u *uri.URI) error { return u.SetSubdomains("a.b") }, "http://a.b.example.com/", nil},
		{"empty subdomains", "http://www.example.com/", func(u *uri.URI) error { return u.SetSubdomains("") }, "http://example.com/", nil},
		{"subdomains on tld", "http://com/", func(u *uri.URI) error { return u.SetSubdomains("www") }, "http://com/", uri.ErrInvalidComponent},
		{"bad subdomains", "http://a.com/", func(u *uri.URI) error { return u.SetSubdomains("x..y") }, "http://a.com/", uri.ErrInvalidComponent},
		{"clear subdomains", "http://x.y.example.com:8/", func(u *uri.URI) error { u.ClearSubdomains(); return nil }, "http://example.com:8/", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.New(c.in)
			err := c.fn(u)
			if !errors.Is(err, c.wantErr) || (err == nil) != (c.wantErr == nil) {
				t.Errorf("setter error = %v, want %v", err, c.wantErr)
			}
			if got := u.String(); got != c.want {
				t.Errorf("u.String() = %q, want %q", got, c.want)
			}
		})
	}
}
