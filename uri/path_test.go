package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/uri"
)

func TestURI_PathSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in          string
		want        []string
		wantDecoded []string
	}{
		{"", nil, nil},
		{"http://h", nil, nil},
		{"http://h/", []string{"", ""}, []string{"", ""}},
		{"/a/b", []string{"", "a", "b"}, []string{"", "a", "b"}},
		{"a/b", []string{"a", "b"}, []string{"a", "b"}},
		{"/a%2Fb/%zz", []string{"", "a%2Fb", "%zz"}, []string{"", "a/b", "%zz"}},
	}

	for _, c := range cases {
		u := uri.New(c.in)
		if diff := cmp.Diff(u.PathSegments(), c.want); diff != "" {
			t.Errorf("uri.New(%q).PathSegments() mismatch\ndiff (-got +want):\n%v", c.in, diff)
		}
		if diff := cmp.Diff(u.PathSegmentsDecoded(), c.wantDecoded); diff != "" {
			t.Errorf("uri.New(%q).PathSegmentsDecoded() mismatch\ndiff (-got +want):\n%v", c.in, diff)
		}
	}
}

func TestRemoveDotSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"/", "/"},
		{"/a/b/c", "/a/b/c"},
		{"/a/b/c/./../../g", "/a/g"},
		{"mid/content=5/../6", "mid/6"},
		{".", ""},
		{"..", ""},
		{"./a", "a"},
		{"../a", "a"},
		{"/.", "/"},
		{"/..", "/"},
		{"/a/..", "/"},
		{"/a/.", "/a/"},
		{"/../../g", "/g"},
		{"a/./b/../../c", "/c"},
		{"/a/b/../../../c/", "/c/"},
		{"/a.b/..c/d.", "/a.b/..c/d."},
	}

	for _, c := range cases {
		if got := uri.RemoveDotSegments(c.in); got != c.want {
			t.Errorf("uri.RemoveDotSegments(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
