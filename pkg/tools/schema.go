package tools

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidateInput validates tool input against the tool's schema map before
// any network call happens. It covers the subset of JSON Schema the tool
// schemas actually use: required, type (including type unions), items,
// properties, additionalProperties, and the custom format keywords
// "datetime" (ISO-8601 or 10/13-digit unix string), "timezone", "date"
// (YYYY-MM-DD) and "uuid".
func ValidateInput(input map[string]any, schema map[string]any) error {
	if schema == nil {
		return nil
	}

	if required, ok := schema["required"].([]string); ok {
		for _, name := range required {
			if _, exists := input[name]; !exists {
				return fmt.Errorf("missing required parameter: %s", name)
			}
		}
	}

	properties, _ := schema["properties"].(map[string]any)
	for name, value := range input {
		propSchema, ok := properties[name].(map[string]any)
		if !ok {
			if extra, ok := schema["additionalProperties"].(map[string]any); ok {
				if err := validateValue(name, value, extra); err != nil {
					return err
				}
			}
			continue
		}
		if err := validateValue(name, value, propSchema); err != nil {
			return err
		}
	}
	return nil
}

// validateValue validates a single value against its schema, recursing
// into arrays and objects.
func validateValue(name string, value any, schema map[string]any) error {
	if value == nil {
		return nil
	}

	actualType := jsonType(value)
	if err := checkType(name, actualType, schema["type"]); err != nil {
		return err
	}

	if format, ok := schema["format"].(string); ok && actualType == "string" {
		if err := checkFormat(name, value.(string), format); err != nil {
			return err
		}
	}

	switch actualType {
	case "array":
		if itemSchema, ok := schema["items"].(map[string]any); ok {
			for i, item := range value.([]any) {
				if err := validateValue(fmt.Sprintf("%s[%d]", name, i), item, itemSchema); err != nil {
					return err
				}
			}
		}
	case "object":
		nested, _ := value.(map[string]any)
		if err := ValidateInput(nested, schema); err != nil {
			return fmt.Errorf("parameter %s: %w", name, err)
		}
	}
	return nil
}

// checkType matches a JSON type name against a schema type, which may be
// a single string or a union of strings.
func checkType(name, actualType string, schemaType any) error {
	switch expected := schemaType.(type) {
	case nil:
		return nil
	case string:
		if !typeMatches(actualType, expected) {
			return fmt.Errorf("parameter %s: expected %s, got %s", name, expected, actualType)
		}
	case []string:
		for _, t := range expected {
			if typeMatches(actualType, t) {
				return nil
			}
		}
		return fmt.Errorf("parameter %s: expected one of %v, got %s", name, expected, actualType)
	}
	return nil
}

func typeMatches(actual, expected string) bool {
	if expected == "integer" {
		return actual == "number"
	}
	return actual == expected
}

func checkFormat(name, value, format string) error {
	switch format {
	case "datetime":
		if !IsDateTime(value) {
			return fmt.Errorf("parameter %s: must be a valid ISO 8601 date or UNIX timestamp", name)
		}
	case "timezone":
		if !IsTimezone(value) {
			return fmt.Errorf("parameter %s: must be a valid region-format timezone string", name)
		}
	case "date":
		if !IsDate(value) {
			return fmt.Errorf("parameter %s: must be in YYYY-MM-DD format", name)
		}
	case "uuid":
		if _, err := uuid.Parse(value); err != nil {
			return fmt.Errorf("parameter %s: must be a valid UUID", name)
		}
	}
	return nil
}

// jsonType returns the JSON type name for a decoded Go value.
func jsonType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, float32, int, int64, int32:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}
