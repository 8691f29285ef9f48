package validator

import (
	"errors"
	"nirvanica/shared/failure"
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
		"email":    "{field} must be a valid email address",
		"phone":    "{field} must be a valid phone number",
	}
)

// collect translates every violation in the error into a field message.
// Unlike a fail-fast validator, nothing is dropped: the caller surfaces the
// whole batch at once.
func collect(err error) []failure.Field {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.Field{{Field: "", Message: err.Error()}}
	}

	fields := make([]failure.Field, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		msg := messages[valErr.Tag()]
		if msg == "" {
			msg = valErr.Error()
		} else {
			msg = strings.ReplaceAll(msg, "{field}", field)
			msg = strings.ReplaceAll(msg, "{param}", param)
		}

		fields = append(fields, failure.Field{Field: field, Message: msg})
	}

	return fields
}
