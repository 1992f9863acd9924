package errorutil

import "errors"

// IsGrammarErr returns true if the error is a grammar error.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// IsComponentErr returns true if the error reports an invalid URI component.
func IsComponentErr(err error) bool {
	var e interface{ Component() string }
	return errors.As(err, &e) && e.Component() != ""
}
