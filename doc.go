// Package jsonbody extracts typed values from JSON request bodies and
// reports validation failures in a REST-friendly error shape.
//
// A body flows through a fixed pipeline: media-type policy, size
// policy, JSON decoding, then declarative validation. The first failure
// wins, nothing later runs, and the outcome is always one of three
// terminal classes:
//
//   - policy violations (ErrTooLarge, ErrUnsupportedMediaType,
//     ErrMissingContentType) rejected before the body is parsed
//   - parse failures (ErrInvalidJSON) when the body does not decode
//     into the target type
//   - validation failures (FieldErrors) when the decoded value breaks
//     its declared rules
//
// Validation failures are normalized into a flat map of field name to
// messages, with object-level messages collected under the reserved
// non_field_errors key. Messages from nested objects and array elements
// merge under the top-level field they belong to, so the wire payload
// is always a flat JSON object with string-array values.
//
// Basic Usage:
//
//	type CreateFood struct {
//		Name   string `json:"name" validate:"min=3"`
//		Rating int    `json:"rating" validate:"gte=1,lte=10"`
//	}
//
//	http.Handle("/foods", jsonbody.Handler(jsonbody.Config{},
//		func(w http.ResponseWriter, r *http.Request, req CreateFood) {
//			// req is decoded and validated
//		},
//	))
//
// An invalid rating produces a 400 response with a body like:
//
//	{"rating": ["The number must be <= 10."]}
//
// The core is free of shared mutable state: every call receives its
// Config explicitly and distinct requests may be extracted concurrently.
package jsonbody
