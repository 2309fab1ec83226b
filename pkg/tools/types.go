// Package tools defines the Mailmodo capabilities exposed over MCP: their
// input schemas, the registry that dispatches invocations, and the text
// rendering of API responses.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool declaration with its execution logic. Execute
// runs after the input has been validated against the tool's schema.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Result standardizes tool output before it is converted to an MCP call
// result.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ContentBlock is one piece of rendered output. Only text blocks are
// produced here; the type field exists so the MCP conversion stays
// mechanical.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of a tool invocation.
type ResultStatus string

const (
	// ResultSuccess indicates the tool completed and rendered a response.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates the invocation failed; Error carries the message.
	ResultError ResultStatus = "error"
)

// Text returns the rendered text of the result, or the error message for
// failed invocations.
func (r *Result) Text() string {
	if r.Status == ResultError && r.Error != "" {
		return r.Error
	}
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}

// IsError reports whether the result is an error-flagged message.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}
