package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mau.fi/util/ptr"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// EventTools returns the custom-event tool and the date/time helper tool.
func EventTools(client Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "sendEvent",
				Description: "Send custom events with email, event name and event properties",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"email":      map[string]any{"type": "string", "description": "Email address of the contact"},
						"event_name": map[string]any{"type": "string", "description": "Name of the custom event"},
						"ts":         map[string]any{"type": "integer", "description": "Optional event timestamp in unix seconds, defaults to now"},
						"event_properties": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type": []string{"string", "number", "boolean"},
							},
							"description": "Optional event property bag",
						},
					},
					"required": []string{"email", "event_name"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				email, _ := ReadString(args, "email", false)
				eventName, _ := ReadString(args, "event_name", false)
				event := mailmodo.Event{
					Email:           email,
					EventName:       eventName,
					EventProperties: mailmodo.Properties(ReadMap(args, "event_properties")),
				}
				if _, ok := args["ts"]; ok {
					ts, err := ReadNumber(args, "ts", false)
					if err != nil {
						return ErrorResult(err.Error()), nil
					}
					event.TS = ptr.Ptr(int64(ts))
				}
				resp, err := client.SendEvent(ctx, event)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderEvent(resp, eventName, email, mustJSON(event.EventProperties))), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "currentDateTime",
				Description: "Get Current Date and time",
				InputSchema: map[string]any{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				return TextResult(time.Now().UTC().Format(time.RFC3339)), nil
			},
		},
	}
}
