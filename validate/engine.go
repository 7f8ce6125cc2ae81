// Package validate bridges declarative rule engines into error trees.
//
// The extractor does not interpret validation rules itself; it hands the
// decoded value to an Engine and consumes the resulting tree. The
// default engine is backed by go-playground/validator struct tags, but
// any implementation producing an errtree can be plugged in.
package validate

import "github.com/restkit/jsonbody/errtree"

// Engine runs validation rules against a decoded value and reports
// failures as an error tree. A nil or empty tree means the value is
// valid. The error return is reserved for engine misuse, such as a
// non-struct value handed to a struct validator; it never describes a
// problem with the request itself.
type Engine interface {
	Validate(v any) (*errtree.Node, error)
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(v any) (*errtree.Node, error)

// Validate implements Engine.
func (f EngineFunc) Validate(v any) (*errtree.Node, error) {
	return f(v)
}

// Validatable adds checks that declarative rules cannot express.
// The Tags engine invokes it after tag validation. Messages added at
// the root surface as object-level errors.
type Validatable interface {
	Validate(root *errtree.Node)
}

// Chain returns an Engine that runs engines in order and merges their
// trees. The first engine misuse error aborts the chain.
func Chain(engines ...Engine) Engine {
	return EngineFunc(func(v any) (*errtree.Node, error) {
		root := errtree.New()
		for _, e := range engines {
			tree, err := e.Validate(v)
			if err != nil {
				return nil, err
			}
			root.Merge(tree)
		}
		return root, nil
	})
}
