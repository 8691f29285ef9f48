package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"nirvanica/shared/failure"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// phonePattern allows an optional leading +, then digits and common
// formatting characters (spaces, hyphens, parentheses).
var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

var digitPattern = regexp.MustCompile(`[0-9]`)

const phoneMinDigits = 10

func registerPhoneValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if !phonePattern.MatchString(value) {
		return false
	}

	// At least ten digits must remain once formatting is stripped.
	return len(digitPattern.FindAllString(value, -1)) >= phoneMinDigits
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report violations against the json field name so the client can map
	// them back onto form inputs.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	if err := validate.RegisterValidation("phone", registerPhoneValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Every violation is collected into a single
// failure rather than stopping at the first one.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// Decode reads the request body without validating, for callers that merge
// tag violations with their own cross-field checks in a single batch.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Validation(collect(err)) //nolint:wrapcheck
	}

	return nil
}

// Collect runs struct validation and returns the raw field violations so a
// caller can merge them with its own cross-field checks before surfacing.
func Collect[T any](data *T) []failure.Field {
	err := validate.Struct(data)
	if err != nil {
		return collect(err)
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.Validation(collect(err)) //nolint:wrapcheck
	}

	return nil
}
