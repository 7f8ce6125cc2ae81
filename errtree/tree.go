// Package errtree models validation failures as a recursive tree of
// messages and flattens that tree into the client-facing error map.
//
// A Node carries the messages reported at its own position plus named
// children for nested fields or array elements. The tree mirrors the
// shape of the value that was validated: the root stands for the whole
// object, children for its fields, grandchildren for fields of nested
// objects, and so on. Child insertion order is preserved so the
// flattened output is stable across runs.
package errtree

import "strconv"

// Node is one location in a validation error tree.
type Node struct {
	messages []string
	children map[string]*Node
	order    []string
}

// New returns an empty tree root.
func New() *Node {
	return &Node{}
}

// Add appends messages reported at this node's position and returns the
// node for chaining.
func (n *Node) Add(messages ...string) *Node {
	n.messages = append(n.messages, messages...)
	return n
}

// Child returns the child node for key, creating it on first use.
func (n *Node) Child(key string) *Node {
	if c, ok := n.children[key]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := New()
	n.children[key] = c
	n.order = append(n.order, key)
	return c
}

// Index returns the child node for array element i.
func (n *Node) Index(i int) *Node {
	return n.Child(strconv.Itoa(i))
}

// At walks the nested path, creating nodes as needed, and returns the
// node at its end. An empty path returns n itself.
func (n *Node) At(path ...string) *Node {
	cur := n
	for _, key := range path {
		cur = cur.Child(key)
	}
	return cur
}

// Messages returns the messages attached directly to this node.
func (n *Node) Messages() []string {
	if n == nil {
		return nil
	}
	return n.messages
}

// Keys returns the child keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return n.order
}

// Empty reports whether the subtree rooted at n carries no messages.
func (n *Node) Empty() bool {
	if n == nil {
		return true
	}
	if len(n.messages) > 0 {
		return false
	}
	for _, key := range n.order {
		if !n.children[key].Empty() {
			return false
		}
	}
	return true
}

// Len returns the total number of messages in the subtree rooted at n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	total := len(n.messages)
	for _, key := range n.order {
		total += n.children[key].Len()
	}
	return total
}

// Merge appends other's messages and children into n. Existing keys
// keep their position; new keys are appended in other's order.
func (n *Node) Merge(other *Node) {
	if other == nil {
		return
	}
	n.Add(other.messages...)
	for _, key := range other.order {
		n.Child(key).Merge(other.children[key])
	}
}
