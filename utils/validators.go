package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator hooks into gin's binding engine so validation details use
// json field names rather than Go struct field names.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		Validate = v
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidationDetails translates a binding error into per-field messages for
// the 422 body. Non-validator errors (malformed JSON, wrong types) yield a
// single body-level entry.
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		message := "invalid value"
		if fe.Tag() == "required" {
			message = "field is required"
		}
		details = append(details, FieldError{Field: fe.Field(), Message: message})
	}
	return details
}
