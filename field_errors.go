package jsonbody

import (
	"net/url"
	"sort"
	"strings"

	"github.com/restkit/jsonbody/errtree"
)

// NonFieldErrors is the reserved response key for messages that apply
// to the whole object rather than a single field.
const NonFieldErrors = errtree.NonFieldKey

// FieldErrors maps field names to their validation messages.
// It's based on url.Values to leverage built-in string slice handling
// and serializes directly as the response body: a flat JSON object
// whose values are arrays of strings.
type FieldErrors url.Values

// Normalize flattens a validation error tree into FieldErrors.
func Normalize(tree *errtree.Node) FieldErrors {
	return FieldErrors(errtree.Normalize(tree))
}

// NewFieldErrors creates an empty FieldErrors map.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Error implements the error interface. It summarizes the first message
// of each field in a stable order.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, field+": "+messages[0])
		}
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
