package schemas

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `{
	"type": "object",
	"required": ["greeting"],
	"properties": {
		"greeting": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"greeting": "Welcome!"}`)
	if err != nil {
		t.Errorf("Expected valid document, got: %v", err)
	}
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{}`)
	if err == nil {
		t.Fatal("Expected validation error for missing required field")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(validationErr.Errors) == 0 {
		t.Fatal("Expected at least one field error")
	}
	if !strings.Contains(validationErr.Error(), "greeting") {
		t.Errorf("Error should name the missing field: %s", validationErr.Error())
	}
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"greeting": 42}`)
	if err == nil {
		t.Fatal("Expected validation error for wrong type")
	}
}

func TestValidateJSONString_AdditionalProperty(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"greeting": "hi", "extra": true}`)
	if err == nil {
		t.Fatal("Expected validation error for additional property")
	}
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": [broken`, `{}`)
	if err == nil {
		t.Fatal("Expected error for malformed schema")
	}

	var loadErr *SchemaLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *SchemaLoadError, got %T", err)
	}
}
