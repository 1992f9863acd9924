package errorutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gouri/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error", []any{inner}, "sentinel: inner", []error{errSentinel, inner}},
		{"wrapped error", []any{errorutil.NewWrapperError(errSentinel, "x")}, "sentinel: x", []error{errSentinel}},
		{"message", []any{"bad host"}, "sentinel: bad host", []error{errSentinel}},
		{"format", []any{"port %d", 70000}, "sentinel: port 70000", []error{errSentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, target := range c.wantIs {
				if !errors.Is(err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", err, target)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("nil reader")
	if !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("errors.Is(%v, ErrInvalidArgument) = false, want true", err)
	}
	if got, want := err.Error(), "invalid argument: nil reader"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}

func TestComponentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewComponentError(errSentinel, "port", "8x")
	if got, want := err.Error(), `sentinel: port "8x"`; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, errSentinel) {
		t.Errorf("errors.Is(%v, sentinel) = false, want true", err)
	}
	if !errorutil.IsComponentErr(err) {
		t.Errorf("errorutil.IsComponentErr(%v) = false, want true", err)
	}
	if errorutil.IsComponentErr(errSentinel) {
		t.Errorf("errorutil.IsComponentErr(%v) = true, want false", errSentinel)
	}
}

type grammarErr string

func (e grammarErr) Error() string { return string(e) }

func (grammarErr) Grammar() bool { return true }

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	if !errorutil.IsGrammarErr(errorutil.NewWrapperError(grammarErr("malformed"), "x")) {
		t.Error("errorutil.IsGrammarErr(wrapped grammar error) = false, want true")
	}
	if errorutil.IsGrammarErr(errSentinel) {
		t.Error("errorutil.IsGrammarErr(sentinel) = true, want false")
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	e1 := errorutil.NewComponentError(errSentinel, "host", "a b")
	e2 := errorutil.NewComponentError(errSentinel, "port", "x")

	if err := errorutil.JoinPrefix("invalid URI:", nil, nil); err != nil {
		t.Errorf("JoinPrefix(nil, nil) = %v, want nil", err)
	}

	one := errorutil.JoinPrefix("invalid URI:", nil, e1)
	if got, want := one.Error(), `invalid URI: sentinel: host "a b"`; got != want {
		t.Errorf("JoinPrefix(e1).Error() = %q, want %q", got, want)
	}
	if !errors.Is(one, e1) {
		t.Errorf("errors.Is(%v, e1) = false, want true", one)
	}

	both := errorutil.JoinPrefix("invalid URI:", e1, e2)
	want := "invalid URI:\n  - sentinel: host \"a b\"\n  - sentinel: port \"x\""
	if got := both.Error(); got != want {
		t.Errorf("JoinPrefix(e1, e2).Error() = %q, want %q", got, want)
	}
	if !errors.Is(both, e1) || !errors.Is(both, e2) {
		t.Errorf("errors.Is(%v, e1|e2) = false, want true", both)
	}

	nested := errorutil.JoinPrefix("outer:", both, errSentinel)
	wantNested := "outer:\n  - invalid URI:\n    - sentinel: host \"a b\"\n    - sentinel: port \"x\"\n  - sentinel"
	if got := nested.Error(); got != wantNested {
		t.Errorf("nested Error() = %q, want %q", got, wantNested)
	}
}
