package validate

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Message renders a single constraint failure as a stable
// human-readable sentence. Tags without a dedicated phrasing fall back
// to naming the violated rule so the client still learns which
// constraint tripped.
func Message(fe validator.FieldError) string {
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "The value must be a valid email address."
	case "url":
		return "The value must be a valid URL."
	case "uuid", "uuid4":
		return "The value must be a valid UUID."
	case "oneof":
		return fmt.Sprintf("The value must be one of: %s.", fe.Param())
	case "len":
		if kind == reflect.String {
			return fmt.Sprintf("The length of the value must be exactly %s.", fe.Param())
		}
		return fmt.Sprintf("The length of the items must be exactly %s.", fe.Param())
	case "min", "gte":
		return boundMessage(kind, ">=", fe.Param())
	case "max", "lte":
		return boundMessage(kind, "<=", fe.Param())
	case "gt":
		return boundMessage(kind, ">", fe.Param())
	case "lt":
		return boundMessage(kind, "<", fe.Param())
	}

	if fe.Param() != "" {
		return fmt.Sprintf("The value failed the %s=%s rule.", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("The value failed the %s rule.", fe.Tag())
}

// boundMessage phrases min/max style constraints. The min and max tags
// mean length for strings and collections but value for numbers.
func boundMessage(kind reflect.Kind, op, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("The length of the value must be %s %s.", op, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("The length of the items must be %s %s.", op, param)
	default:
		return fmt.Sprintf("The number must be %s %s.", op, param)
	}
}
