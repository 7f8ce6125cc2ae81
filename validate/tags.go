package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/restkit/jsonbody/errtree"
)

// TagsOption customizes the validator instance behind a Tags engine.
type TagsOption func(*validator.Validate)

// WithRule registers a custom validation tag.
//
// Example:
//
//	engine := validate.Tags(validate.WithRule("even", func(fl validator.FieldLevel) bool {
//		return fl.Field().Int()%2 == 0
//	}))
func WithRule(tag string, fn validator.Func) TagsOption {
	return func(v *validator.Validate) {
		// Registration only fails on an empty tag or nil func, which is
		// a programming defect worth failing loud on.
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Tags returns an Engine that evaluates go-playground/validator struct
// tags. Fields are addressed by their json tag names, nested structs
// and slice elements are recursed into, and each constraint failure is
// rendered with Message. If the value implements Validatable, its
// custom checks run after tag validation against the same tree.
func Tags(opts ...TagsOption) Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	for _, opt := range opts {
		opt(v)
	}
	return &tagsEngine{v: v}
}

type tagsEngine struct {
	v *validator.Validate
}

func (e *tagsEngine) Validate(v any) (*errtree.Node, error) {
	root := errtree.New()

	if err := e.v.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		for _, fe := range fieldErrs {
			root.At(fieldPath(fe.Namespace())...).Add(Message(fe))
		}
	}

	if custom, ok := v.(Validatable); ok {
		custom.Validate(root)
	}

	return root, nil
}

// jsonFieldName resolves a struct field to its json tag name so error
// keys match the wire names clients sent.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// fieldPath converts a validator namespace such as
// "CreateFood.specs[2].name" into the tree path below the root struct:
// ["specs", "2", "name"].
func fieldPath(namespace string) []string {
	var path []string
	for _, seg := range strings.Split(namespace, ".") {
		for seg != "" {
			open := strings.IndexByte(seg, '[')
			if open == -1 {
				path = append(path, seg)
				break
			}
			if open > 0 {
				path = append(path, seg[:open])
			}
			rest := seg[open+1:]
			closing := strings.IndexByte(rest, ']')
			if closing == -1 {
				path = append(path, rest)
				break
			}
			path = append(path, rest[:closing])
			seg = rest[closing+1:]
		}
	}
	if len(path) == 0 {
		return nil
	}
	// The first segment is the root struct's own name.
	return path[1:]
}
