package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ghettovoice/gouri/uri"
)

// resetFlags restores the defaults of string, bool and slice flags set by a previous run.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// Commands share the package level command tree, so these tests are not parallel.
func TestCommands(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"encode segment", []string{"encode", "--set", "segment", "a b/c"}, "a%20b%2Fc\n", false},
		{"encode uri", []string{"encode", "http://h/a b?x=ü"}, "http://h/a%20b?x=%C3%BC\n", false},
		{"encode unknown set", []string{"encode", "--set", "nope", "x"}, "", true},
		{"decode", []string{"decode", "a%20b", "%C3%BC"}, "a b\nü\n", false},
		{"decode malformed", []string{"decode", "%zz"}, "", true},
		{"normalize", []string{"normalize", "http://h/a/./b/../c", "/x/y"}, "http://h/a/c\n/x/y\n", false},
		{
			"resolve",
			[]string{"resolve", "http://a/b/c/d;p?q", "../g", "?y", "g:h"},
			"http://a/b/g\nhttp://a/b/c/d;p?y\ng:h\n",
			false,
		},
		{"resolve relative base", []string{"resolve", "rel/path", "x"}, "", true},
		{"resolve malformed base", []string{"resolve", "http://a b", "x"}, "", true},
		{
			"edit",
			[]string{"edit", "--scheme", "https", "--port", "8443", "--clear", "query", "--query-param", "k=v", "--normalize", "http://a/./x?q"},
			"https://a:8443/x?k=v\n",
			false,
		},
		{"edit host and validate", []string{"edit", "--host", "h", "--validate", "/x"}, "//h/x\n", false},
		{"edit path after scheme", []string{"edit", "--validate", "--path", "a", "http:"}, "http:a\n", false},
		{"edit bad port", []string{"edit", "--port", "8x", "http://a/"}, "", true},
		{"edit unknown clear", []string{"edit", "--clear", "bogus", "http://a/"}, "", true},
		{"edit exclusive query flags", []string{"edit", "--query", "a", "--query-param", "b=c", "http://a/"}, "", true},
		{"inspect strict", []string{"inspect", "--strict", "a b"}, "", true},
		{"bad format", []string{"inspect", "--format", "xml", "x"}, "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := execute(t, "", c.args...)
			if (err != nil) != c.wantErr {
				t.Fatalf("execute(%q) error = %v, want error %v", c.args, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("execute(%q) = %q, want %q", c.args, got, c.want)
			}
		})
	}
}

func TestInspectCommand_JSON(t *testing.T) {
	got, err := execute(t, "", "inspect", "--format", "json", "http://a/b", "urn:x:y")
	if err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("execute() printed %d lines, want 2:\n%s", len(lines), got)
	}
	for i, want := range []string{`"kind":"url"`, `"kind":"urn"`} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %s, want it to contain %s", i, lines[i], want)
		}
	}
}

func TestBatchCommand(t *testing.T) {
	in := "# refs\ng\n\n../h?x\n"
	got, err := execute(t, in, "batch", "--format", "json", "--jobs", "2", "--base", "http://a/b/c")
	if err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("execute() printed %d lines, want 2:\n%s", len(lines), got)
	}
	for i, want := range []string{`"input":"http://a/b/g"`, `"input":"http://a/h?x"`} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %s, want it to contain %s", i, lines[i], want)
		}
	}
}

func TestBatchCommand_Pretty(t *testing.T) {
	got, err := execute(t, "mailto:joe@example.com\n", "batch", "-", "--color", "off")
	if err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}
	if !strings.HasPrefix(got, "mailto:joe@example.com\n") || !strings.Contains(got, "urn (valid)") {
		t.Errorf("execute() = %q, want a pretty report of the reference", got)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	_, parseErr := uri.Parse("a b")
	validateErr := uri.New("http://a:8x/").Validate()
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"malformed", parseErr, 2},
		{"invalid component", validateErr, 2},
		{"other", errors.New("boom"), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCode(c.err); got != c.want {
				t.Errorf("exitCode(%v) = %d, want %d", c.err, got, c.want)
			}
		})
	}
}
