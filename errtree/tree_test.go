package errtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restkit/jsonbody/errtree"
)

func TestNode(t *testing.T) {
	t.Parallel()

	t.Run("new tree is empty", func(t *testing.T) {
		t.Parallel()
		root := errtree.New()
		assert.True(t, root.Empty())
		assert.Zero(t, root.Len())
		assert.Empty(t, root.Messages())
		assert.Empty(t, root.Keys())
	})

	t.Run("nil node is empty", func(t *testing.T) {
		t.Parallel()
		var n *errtree.Node
		assert.True(t, n.Empty())
		assert.Zero(t, n.Len())
	})

	t.Run("child keys keep insertion order", func(t *testing.T) {
		t.Parallel()
		root := errtree.New()
		root.Child("b").Add("msg b")
		root.Child("a").Add("msg a")
		root.Child("b").Add("msg b2")

		assert.Equal(t, []string{"b", "a"}, root.Keys())
		assert.Equal(t, []string{"msg b", "msg b2"}, root.Child("b").Messages())
	})

	t.Run("At walks and creates a nested path", func(t *testing.T) {
		t.Parallel()
		root := errtree.New()
		root.At("profile", "address", "zip").Add("invalid zip")

		assert.Equal(t, []string{"invalid zip"}, root.Child("profile").Child("address").Child("zip").Messages())
		assert.Same(t, root, root.At())
	})

	t.Run("Index addresses array elements", func(t *testing.T) {
		t.Parallel()
		root := errtree.New()
		root.Child("items").Index(2).Add("bad item")

		assert.Equal(t, []string{"2"}, root.Child("items").Keys())
		assert.Equal(t, []string{"bad item"}, root.At("items", "2").Messages())
	})

	t.Run("Len counts the whole subtree", func(t *testing.T) {
		t.Parallel()
		root := errtree.New()
		root.Add("root msg")
		root.Child("a").Add("one", "two")
		root.At("a", "nested").Add("three")
		root.Child("b").Add("four")

		assert.Equal(t, 5, root.Len())
		assert.False(t, root.Empty())
	})

	t.Run("Merge preserves both trees", func(t *testing.T) {
		t.Parallel()
		left := errtree.New()
		left.Child("name").Add("too short")

		right := errtree.New()
		right.Add("object invalid")
		right.Child("name").Add("reserved word")
		right.Child("rating").Add("too high")

		left.Merge(right)

		assert.Equal(t, []string{"object invalid"}, left.Messages())
		assert.Equal(t, []string{"name", "rating"}, left.Keys())
		assert.Equal(t, []string{"too short", "reserved word"}, left.Child("name").Messages())
		assert.Equal(t, 4, left.Len())
	})

	t.Run("Merge with nil is a no-op", func(t *testing.T) {
		t.Parallel()
		root := errtree.New()
		root.Child("a").Add("msg")
		root.Merge(nil)
		assert.Equal(t, 1, root.Len())
	})
}
