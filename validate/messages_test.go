package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restkit/jsonbody/errtree"
	"github.com/restkit/jsonbody/validate"
)

func TestMessagePhrasing(t *testing.T) {
	t.Parallel()

	engine := validate.Tags()

	firstMessage := func(t *testing.T, v any, field string) string {
		t.Helper()
		tree, err := engine.Validate(v)
		require.NoError(t, err)
		messages := tree.Child(field).Messages()
		require.NotEmpty(t, messages, "expected a message for field %q", field)
		return messages[0]
	}

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Name string `json:"name" validate:"required"`
		}
		assert.Equal(t, "This field is required.", firstMessage(t, &req{}, "name"))
	})

	t.Run("string min is a length constraint", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Name string `json:"name" validate:"min=3"`
		}
		assert.Equal(t, "The length of the value must be >= 3.", firstMessage(t, &req{Name: "ab"}, "name"))
	})

	t.Run("numeric max is a value constraint", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Rating int `json:"rating" validate:"max=10"`
		}
		assert.Equal(t, "The number must be <= 10.", firstMessage(t, &req{Rating: 11}, "rating"))
	})

	t.Run("slice min counts items", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Items []string `json:"items" validate:"min=2"`
		}
		assert.Equal(t, "The length of the items must be >= 2.", firstMessage(t, &req{Items: []string{"one"}}, "items"))
	})

	t.Run("oneof lists choices", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Color string `json:"color" validate:"oneof=red green"`
		}
		assert.Equal(t, "The value must be one of: red green.", firstMessage(t, &req{Color: "blue"}, "color"))
	})

	t.Run("unknown tag falls back to naming the rule", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Code string `json:"code" validate:"startswith=ab"`
		}
		assert.Equal(t, "The value failed the startswith=ab rule.", firstMessage(t, &req{Code: "zz"}, "code"))
	})

	t.Run("only the violated rule reports", func(t *testing.T) {
		t.Parallel()
		type req struct {
			Rating int `json:"rating" validate:"gte=1,lte=10"`
		}
		tree, err := engine.Validate(&req{Rating: 0})
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			"rating": {"The number must be >= 1."},
		}, errtree.Normalize(tree))
	})
}
