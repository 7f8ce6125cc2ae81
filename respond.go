package jsonbody

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorBody is the single-message envelope for policy and parse
// failures.
type errorBody struct {
	Error string `json:"error"`
}

// StatusOf maps an extraction failure to its HTTP status code: 413 for
// oversized bodies, 415 for media-type rejections, 400 for parse and
// validation failures. Anything else is not a request error but a
// defect, reported as 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// WriteError writes an extraction failure as its JSON response.
// Validation failures serialize the normalized field map directly as
// the body; policy and parse failures produce {"error": "<message>"}.
// The wire payload is always a flat object with no nesting.
func WriteError(w http.ResponseWriter, err error) error {
	status := StatusOf(err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return json.NewEncoder(w).Encode(fieldErrs)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Defects are logged by the caller, not leaked to the client.
		message = "internal error"
	}
	return json.NewEncoder(w).Encode(errorBody{Error: message})
}
