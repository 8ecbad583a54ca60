package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"wehouse/shared/constant"
	"wehouse/shared/dto"
	"wehouse/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Check is a single constraint on a field value. Tag is evaluated with the
// go-playground validator; Predicate covers rules a tag cannot express.
// Message falls back to the tag's default message when empty.
type Check struct {
	Tag       string
	Predicate func(value any) bool
	Message   string
}

// Rule binds a field to the accessor that reads it and the checks it must pass.
// Value reports whether the field was supplied at all; absent optional fields
// are skipped, absent required ones fail with RequiredMessage.
type Rule[T any] struct {
	Field           string
	Value           func(data *T) (value any, present bool)
	Required        bool
	RequiredMessage string
	Checks          []Check
}

// Optional reads a pointer field; nil means the client did not send it.
func Optional[T, V any](get func(data *T) *V) func(data *T) (any, bool) {
	return func(data *T) (any, bool) {
		value := get(data)
		if value == nil {
			return nil, false
		}

		return *value, true
	}
}

// Text reads a plain string field; the empty string means absent.
func Text[T any](get func(data *T) string) func(data *T) (any, bool) {
	return func(data *T) (any, bool) {
		value := get(data)

		return value, value != constant.Empty
	}
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(value any) bool {
	str, ok := value.(string)

	return ok && strings.TrimSpace(str) != constant.Empty
}

// Apply evaluates every rule against data and collects all violations.
func Apply[T any](data *T, rules []Rule[T]) error {
	violations := []failure.Violation{}

	for _, rule := range rules {
		value, present := rule.Value(data)
		if !present {
			if rule.Required {
				violations = append(violations, failure.Violation{
					Field:               rule.Field,
					ConstraintsViolated: []string{requiredMessage(rule.Field, rule.RequiredMessage)},
				})
			}

			continue
		}

		constraints := []string{}

		for _, check := range rule.Checks {
			if ok, msg := evaluate(rule.Field, value, check); !ok {
				constraints = append(constraints, msg)
			}
		}

		if len(constraints) > 0 {
			violations = append(violations, failure.Violation{
				Field:               rule.Field,
				ConstraintsViolated: constraints,
			})
		}
	}

	if len(violations) > 0 {
		return failure.Validation(violations) //nolint:wrapcheck
	}

	return nil
}

// Decode reads a JSON document from r into data and applies the rules.
// An empty body is treated as an empty object so required-field rules report it.
func Decode[T any](r io.Reader, data *T, rules []Rule[T]) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != constant.Empty {
			return failure.Validation([]failure.Violation{{ //nolint:wrapcheck
				Field:               typeErr.Field,
				ConstraintsViolated: []string{fmt.Sprintf("%s must be %s", typeErr.Field, kindName(typeErr.Type))},
			}})
		}

		return failure.BadRequestFromString("Malformed request body") //nolint:wrapcheck
	}

	return Apply(data, rules)
}

// IsIdentifier reports whether id is a syntactically valid store identifier.
func IsIdentifier(id string) bool {
	return validate.Var(id, "required,uuid") == nil
}

// Identifier validates a path parameter holding a store identifier.
func Identifier(field, id string) error {
	if IsIdentifier(id) {
		return nil
	}

	return failure.Validation([]failure.Violation{{ //nolint:wrapcheck
		Field:               field,
		ConstraintsViolated: []string{field + " must be a valid identifier"},
	}})
}

type paginationQuery struct {
	Page  string
	Limit string
}

var paginationRules = []Rule[paginationQuery]{
	{
		Field: constant.RequestParamPage,
		Value: Text(func(q *paginationQuery) string { return q.Page }),
		Checks: []Check{
			{Tag: "number", Message: "page must be an integer number"},
			{Predicate: atLeastOne, Message: "page must not be less than 1"},
		},
	},
	{
		Field: constant.RequestParamLimit,
		Value: Text(func(q *paginationQuery) string { return q.Limit }),
		Checks: []Check{
			{Tag: "number", Message: "limit must be an integer number"},
			{Predicate: atLeastOne, Message: "limit must not be less than 1"},
		},
	},
}

// Pagination validates the page and limit query parameters, applying the
// defaults (page 1, limit 10) for the ones not supplied.
func Pagination(query url.Values) (dto.QueryParams, error) {
	raw := paginationQuery{
		Page:  query.Get(constant.RequestParamPage),
		Limit: query.Get(constant.RequestParamLimit),
	}

	if err := Apply(&raw, paginationRules); err != nil {
		return dto.QueryParams{}, err
	}

	params := dto.QueryParams{
		Page:  constant.DefaultValuePage,
		Limit: constant.DefaultValueLimit,
	}

	if raw.Page != constant.Empty {
		params.Page, _ = strconv.Atoi(raw.Page)
	}

	if raw.Limit != constant.Empty {
		params.Limit, _ = strconv.Atoi(raw.Limit)
	}

	return params, nil
}

func atLeastOne(value any) bool {
	str, _ := value.(string)
	number, err := strconv.Atoi(str)

	return err == nil && number >= 1
}

func evaluate(field string, value any, check Check) (bool, string) {
	if check.Predicate != nil && !check.Predicate(value) {
		return false, messageOr(check.Message, field, "invalid", "")
	}

	if check.Tag == constant.Empty {
		return true, constant.Empty
	}

	if err := validate.Var(value, check.Tag); err != nil {
		if check.Message != constant.Empty {
			return false, check.Message
		}

		return false, message(field, err)
	}

	return true, constant.Empty
}

func kindName(typ reflect.Type) string {
	if typ == nil {
		return "a valid value"
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer number"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid value"
	}
}
