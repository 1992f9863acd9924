// Package uri implements RFC 3986 URI references as lazily parsed values.
//
// A value keeps the reference text as is and derives component boundaries
// on first access. Two types share the read side:
//   - [URI] owns its text and can be changed with the Set*/Clear* methods;
//   - [View] borrows text and is read only.
//
// Both implement [Reader].
//
// Parsing never fails. Malformed text yields well-defined, possibly empty components,
// use [URI.IsValid] or [URI.Validate] to check the grammar.
// Getters return raw (percent-encoded) text, the *Decoded variants report
// decode failures with false so callers can fall back to the raw form.
//
// Reads of the same value are safe from multiple goroutines.
// Mutation needs exclusive access: a URI must not be read or changed
// by other goroutines while a Set*/Clear* call is running.
//
// Reference resolution follows RFC 3986 section 5.2, see [URI.Resolve] and [RemoveDotSegments].
package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/urimock/reader.go -package=urimock . Reader
