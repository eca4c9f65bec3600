package validator

import (
	"errors"
	"praxis/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be at most {param} characters",
		"min":         "{field} must be at least {param} characters",
		"email":       "{field} must be a valid email address",
		"datetime":    "{field} must be a date like 2006-01-02",
		"phone":       "{field} must contain at least 10 digits",
		"slottime":    "{field} must be a time like 09:00",
		"mimetypes":   "{field} must be one of the allowed content types: {param}",
		"maxfilesize": "{field} must be at most {param} MB",
	}

	rules = map[string]string{
		"required":    failure.RuleRequired,
		"gte":         failure.RuleRange,
		"lte":         failure.RuleRange,
		"oneof":       failure.RuleEnum,
		"max":         failure.RuleFormat,
		"min":         failure.RuleFormat,
		"email":       failure.RuleFormat,
		"datetime":    failure.RuleFormat,
		"phone":       failure.RuleFormat,
		"slottime":    failure.RuleFormat,
		"mimetypes":   failure.RuleFormat,
		"maxfilesize": failure.RuleRange,
	}
)

// fieldErrors flattens validator errors into one entry per failing field, so a
// submission with several bad fields reports all of them in a single response.
func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make([]failure.FieldError, 0, len(valErrors))

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

		rule := rules[valErr.Tag()]
		if rule == "" {
			rule = failure.RuleFormat
		}

		fields = append(fields, failure.FieldError{
			Field:   field,
			Rule:    rule,
			Message: msg,
		})
	}

	return fields
}
