package jsonbody_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restkit/jsonbody"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("JSONBODY_MAX_BODY_SIZE", "128")
		t.Setenv("JSONBODY_ALLOW_UNKNOWN_FIELDS", "true")

		cfg, err := jsonbody.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(128), cfg.MaxBodySize)
		assert.True(t, cfg.AllowUnknownFields)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		t.Setenv("JSONBODY_MAX_BODY_SIZE", "")
		t.Setenv("JSONBODY_ALLOW_UNKNOWN_FIELDS", "")

		cfg, err := jsonbody.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(jsonbody.DefaultMaxBodySize), cfg.MaxBodySize)
		assert.False(t, cfg.AllowUnknownFields)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("JSONBODY_MAX_BODY_SIZE", "not-a-number")

		_, err := jsonbody.LoadConfig()
		assert.ErrorIs(t, err, jsonbody.ErrParsingConfig)
	})
}
