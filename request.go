package jsonbody

import (
	"fmt"
	"io"
	"net/http"
)

// FromRequest buffers the request body and extracts a value of type T
// from it.
//
// The media type is checked before the body is touched, and reading is
// capped at the size limit, so an oversized body is never fully
// buffered or parsed. Cancelling the request context aborts the read;
// the partial buffer is discarded with the error.
func FromRequest[T any](r *http.Request, cfg Config) (T, error) {
	var out T
	cfg = cfg.withDefaults()

	contentType := r.Header.Get("Content-Type")
	mt := mediaType(contentType)
	if mt == "" {
		return out, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	if !cfg.ContentType(mt) {
		return out, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mt)
	}

	// A declared length over the limit fails without reading anything.
	if r.ContentLength > cfg.MaxBodySize {
		return out, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLarge, r.ContentLength, cfg.MaxBodySize)
	}

	// Read one byte past the limit so undeclared oversized bodies are
	// caught without buffering the rest.
	body, err := io.ReadAll(io.LimitReader(r.Body, cfg.MaxBodySize+1))
	if err != nil {
		return out, fmt.Errorf("read request body: %w", err)
	}
	if int64(len(body)) > cfg.MaxBodySize {
		return out, fmt.Errorf("%w: body exceeds limit of %d", ErrTooLarge, cfg.MaxBodySize)
	}

	return Extract[T](Payload{Body: body, ContentType: contentType}, cfg)
}
