package errtree

// NonFieldKey is the reserved output key for messages that describe the
// whole object rather than a single field. It is an ordinary string key
// chosen to avoid clashing with real field names; if a target type
// legitimately serializes a field under this name, that field's
// messages share the bucket with the object-level ones.
const NonFieldKey = "non_field_errors"

// Normalize flattens a validation error tree into the response map.
//
// Messages attached to the root describe the whole object and land
// under NonFieldKey, which is absent when the root carries none.
// Every message below a first-level child, however deeply nested,
// merges into the bucket named after that child. Within a bucket,
// messages follow depth-first traversal order: a node's own messages
// come before its descendants', and children are visited in insertion
// order.
//
// Normalizing the same tree always yields the same map. No message is
// dropped or duplicated, and a nil or empty tree yields an empty map.
func Normalize(root *Node) map[string][]string {
	out := make(map[string][]string)
	if root == nil {
		return out
	}
	if len(root.messages) > 0 {
		out[NonFieldKey] = append([]string(nil), root.messages...)
	}
	for _, key := range root.order {
		if bucket := collect(root.children[key], nil); len(bucket) > 0 {
			out[key] = append(out[key], bucket...)
		}
	}
	return out
}

func collect(n *Node, dst []string) []string {
	dst = append(dst, n.messages...)
	for _, key := range n.order {
		dst = collect(n.children[key], dst)
	}
	return dst
}
