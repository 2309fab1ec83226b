package tools

import (
	"encoding/json"
	"fmt"
)

// TextResult creates a successful text result.
func TextResult(text string) *Result {
	return &Result{
		Status:  ResultSuccess,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// JSONResult renders payload as JSON text.
func JSONResult(payload any) *Result {
	return TextResult(mustJSON(payload))
}

// ErrorResult creates an error-flagged result.
func ErrorResult(message string) *Result {
	return &Result{
		Status:  ResultError,
		Content: []ContentBlock{{Type: "text", Text: message}},
		Error:   message,
	}
}

// mustJSON marshals payload to JSON, returning an error document on
// failure rather than propagating it.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal: %s"}`, err.Error())
	}
	return string(data)
}
