package validation

import (
	"fmt"
	"strings"

	"mindflow/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

const assessmentSchemaJSON = `{
  "type": "array",
  "maxItems": 200,
  "items": {
    "type": "object",
    "required": ["question_id", "option_id"],
    "properties": {
      "question_id": {"type": "integer"},
      "option_id": {"type": "string", "minLength": 1, "maxLength": 200},
      "modules": {
        "type": "array",
        "maxItems": 20,
        "items": {"type": "string", "minLength": 1, "maxLength": 64}
      }
    }
  }
}`

// Schema is a compiled JSON schema used to check request bodies before decoding.
type Schema struct {
	schema *gojsonschema.Schema
}

func CompileSchema(source string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		return nil, fmt.Errorf("invalid json schema: %w", err)
	}
	return &Schema{schema: s}, nil
}

func MustCompileSchema(source string) *Schema {
	s, err := CompileSchema(source)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate reports every schema violation as a ValidationError. A body that is not JSON
// yields a single INVALID_FORMAT error for "body".
func (s *Schema) Validate(body []byte) domain.ValidationErrors {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}
	if result.Valid() {
		return nil
	}

	errs := make(domain.ValidationErrors, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, toValidationError(desc))
	}
	return errs
}

func toValidationError(desc gojsonschema.ResultError) domain.ValidationError {
	field := desc.Field()
	if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
		field = "body"
	}
	// gojsonschema reports array positions as "0.modules.1"
	field = strings.TrimPrefix(field, "(root).")

	switch desc.Type() {
	case "required":
		if prop, ok := desc.Details()["property"].(string); ok {
			if field == "body" {
				field = prop
			} else {
				field = field + "." + prop
			}
		}
		return domain.NewMissingFieldError(field)
	case "invalid_type":
		return domain.NewInvalidFormatError(field, desc.Value())
	default:
		return domain.NewInvalidValueError(field, desc.Description())
	}
}
