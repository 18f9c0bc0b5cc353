package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// One shared validator instance; it caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire (json) field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes a single violated field for the client error body.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Struct validates v against its struct tags and returns the violated fields,
// or nil when the value is valid.
func Struct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Rule: "invalid"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
