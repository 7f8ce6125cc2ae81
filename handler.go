package jsonbody

import (
	"log/slog"
	"net/http"
)

// HandlerOption configures Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	log        *slog.Logger
	writeError func(w http.ResponseWriter, r *http.Request, err error)
}

// WithLogger sets the logger used for rejected requests. Defaults to
// slog.Default().
func WithLogger(log *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithErrorWriter replaces the default error response writer.
func WithErrorWriter(f func(w http.ResponseWriter, r *http.Request, err error)) HandlerOption {
	return func(c *handlerConfig) {
		if f != nil {
			c.writeError = f
		}
	}
}

// Handler wraps fn with body extraction. The request body is decoded
// and validated before fn runs; failures are written as their JSON
// error responses without invoking fn. The success response is entirely
// up to fn.
//
// Example:
//
//	http.Handle("/foods", jsonbody.Handler(cfg,
//		func(w http.ResponseWriter, r *http.Request, req CreateFood) {
//			// req passed all checks
//		},
//		jsonbody.WithLogger(log),
//	))
func Handler[T any](cfg Config, fn func(w http.ResponseWriter, r *http.Request, req T), opts ...HandlerOption) http.HandlerFunc {
	hc := handlerConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(&hc)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		req, err := FromRequest[T](r, cfg)
		if err != nil {
			status := StatusOf(err)
			level := slog.LevelWarn
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			hc.log.LogAttrs(r.Context(), level, "request body rejected",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status_code", status),
				slog.Any("error", err),
			)

			if hc.writeError != nil {
				hc.writeError(w, r, err)
				return
			}
			if werr := WriteError(w, err); werr != nil {
				hc.log.LogAttrs(r.Context(), slog.LevelError, "failed to write error response",
					slog.Any("error", werr),
				)
			}
			return
		}

		fn(w, r, req)
	}
}
