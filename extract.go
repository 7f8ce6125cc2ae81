package jsonbody

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/restkit/jsonbody/validate"
)

// DefaultMaxBodySize caps request bodies at 32KB unless overridden.
const DefaultMaxBodySize = 32 << 10

// Payload is one request body with its declared media type. It lives
// for a single extraction and is not retained afterwards.
type Payload struct {
	Body        []byte
	ContentType string
}

// Config controls a single extraction. Pass it explicitly per route;
// the package keeps no ambient settings.
type Config struct {
	// MaxBodySize rejects larger payloads before parsing.
	// Defaults to DefaultMaxBodySize.
	MaxBodySize int64 `env:"JSONBODY_MAX_BODY_SIZE" envDefault:"32768"`

	// AllowUnknownFields accepts JSON members the target type does not
	// declare. Off by default.
	AllowUnknownFields bool `env:"JSONBODY_ALLOW_UNKNOWN_FIELDS" envDefault:"false"`

	// ContentType accepts or rejects the declared media type, already
	// lowercased and stripped of parameters. Defaults to IsJSON.
	ContentType func(mediaType string) bool

	// Engine runs validation rules against the decoded value.
	// Defaults to validate.Tags().
	Engine validate.Engine
}

// defaultEngine is built once; the underlying validator caches struct
// metadata and is safe for concurrent use.
var defaultEngine = sync.OnceValue(func() validate.Engine {
	return validate.Tags()
})

func (c Config) withDefaults() Config {
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.ContentType == nil {
		c.ContentType = IsJSON
	}
	if c.Engine == nil {
		c.Engine = defaultEngine()
	}
	return c
}

// IsJSON is the default media-type predicate. It accepts
// application/json and +json suffixed types such as
// application/vnd.api+json.
func IsJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// mediaType strips parameters such as charset from a Content-Type value
// and lowercases what remains.
func mediaType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// Extract decodes and validates payload into a value of type T.
//
// Checks run in a fixed order: media type, size, JSON syntax, rules.
// The first failure wins and nothing later runs; the parser never sees
// an oversized body and the rule engine never sees a value that failed
// to decode. Extraction is deterministic, so a failure is reported once
// and never retried.
//
// Example:
//
//	food, err := jsonbody.Extract[CreateFood](jsonbody.Payload{
//		Body:        body,
//		ContentType: "application/json",
//	}, jsonbody.Config{MaxBodySize: 1 << 20})
func Extract[T any](payload Payload, cfg Config) (T, error) {
	var out T
	cfg = cfg.withDefaults()

	mt := mediaType(payload.ContentType)
	if mt == "" {
		return out, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	if !cfg.ContentType(mt) {
		return out, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mt)
	}

	if int64(len(payload.Body)) > cfg.MaxBodySize {
		return out, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLarge, len(payload.Body), cfg.MaxBodySize)
	}

	if err := decode(payload.Body, &out, cfg.AllowUnknownFields); err != nil {
		return out, err
	}

	tree, err := cfg.Engine.Validate(&out)
	if err != nil {
		return out, fmt.Errorf("rule engine: %w", err)
	}
	if !tree.Empty() {
		return out, Normalize(tree)
	}

	return out, nil
}

func decode(body []byte, v any, allowUnknown bool) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	if !allowUnknown {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Ensure the entire body was consumed.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return nil
}
