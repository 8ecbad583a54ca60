package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"number":   "{field} must be a number",
		"uuid":     "{field} must be a valid identifier",
		"invalid":  "{field} is invalid",
	}
)

func requiredMessage(field, custom string) string {
	return messageOr(custom, field, "required", "")
}

func messageOr(custom, field, tag, param string) string {
	if custom != "" {
		return custom
	}

	errStr := messages[tag]
	errStr = strings.ReplaceAll(errStr, "{field}", field)

	return strings.ReplaceAll(errStr, "{param}", param)
}

// message renders the first validator failure using the field name the rule
// table knows; Var errors carry no struct field of their own.
func message(field string, err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if _, ok := messages[valErr.Tag()]; ok {
				return messageOr("", field, valErr.Tag(), valErr.Param())
			}
		}

		return field + " is invalid"
	}

	return err.Error()
}
