package jsonbody

import "errors"

// Extraction failure classes. Policy and parse failures wrap these
// sentinels so callers can classify with errors.Is; validation failures
// are reported as FieldErrors instead.
var (
	// ErrTooLarge rejects payloads over Config.MaxBodySize before they
	// are parsed.
	ErrTooLarge = errors.New("request body too large")
	// ErrUnsupportedMediaType rejects declared media types the policy
	// predicate does not accept.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrMissingContentType rejects requests that declare no media type
	// at all.
	ErrMissingContentType = errors.New("missing content type")
	// ErrInvalidJSON marks bodies that do not decode into the target
	// type: malformed syntax, type mismatches, or trailing data.
	ErrInvalidJSON = errors.New("invalid JSON")
)
