package uri

import "github.com/ghettovoice/gouri/internal/errorutil"

const (
	// ErrInvalidComponent is returned when a component value violates its grammar.
	ErrInvalidComponent errorutil.Error = "invalid URI component"
	// ErrRelativeBase is returned when a reference is resolved against a base without a scheme.
	ErrRelativeBase errorutil.Error = "base URI is not absolute"
)

func newInvalidComponentErr(name, value string) error {
	return errorutil.NewComponentError(ErrInvalidComponent, name, value) //errtrace:skip
}
