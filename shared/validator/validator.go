package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"praxis/shared/base64"
	"praxis/shared/constant"
	"praxis/shared/failure"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if str, ok := field.Field().Interface().(string); ok {
		contentType = base64.GetContentType(str)

		if contentType == "" {
			return false
		}
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0
	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		fileSize = int(file.Size)
	} else if str, ok := field.Field().Interface().(string); ok {
		fileSize = len(str)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// registerPhoneValidation accepts a phone number when it carries at least
// ten digits after stripping separators and country-code punctuation.
func registerPhoneValidation(field val.FieldLevel) bool {
	raw, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	digits := 0

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= 10
}

// registerSlotTimeValidation accepts times shaped like the slot labels of the
// daily schedule ("09:00".."17:00"). Membership in the actual template is
// checked by the appointment service, which knows the configured schedule.
func registerSlotTimeValidation(field val.FieldLevel) bool {
	raw, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if len(raw) != len(constant.SlotTimeFormat) {
		return false
	}

	hour, err := strconv.Atoi(raw[:2])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}

	if raw[2] != ':' {
		return false
	}

	minute, err := strconv.Atoi(raw[3:])

	return err == nil && minute >= 0 && minute <= 59
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("slottime", registerSlotTimeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. A malformed body yields a plain bad-request
// failure; rule violations yield a validation failure listing every failing field.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields := fieldErrors(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		fields := fieldErrors(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}
