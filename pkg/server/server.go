// Package server assembles the Mailmodo MCP server: the per-API-key tool
// registry, the read-only resources, and the manager that keeps one
// isolated server per credential.
package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailmodo/mailmodo-mcp/pkg/tools"
)

const (
	serverName    = "mailmodo-mcp"
	serverVersion = "1.0.0"
)

// New assembles an MCP server exposing every Mailmodo tool and resource
// backed by the given client. One server per API key; the client carries
// the credential, so servers are never shared across keys.
func New(client tools.Client) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	registry := tools.NewRegistry()
	for _, tool := range tools.All(client) {
		registry.Register(tool)
	}
	for _, tool := range registry.All() {
		addTool(srv, registry, tool)
	}

	addResource(srv, "Mailmodo Templates", "mailmodo://templates", func(ctx context.Context) (any, error) {
		resp, err := client.GetAllTemplates(ctx)
		if err != nil {
			return nil, err
		}
		return resp.TemplateDetails, nil
	})
	addResource(srv, "Mailmodo Campaigns", "mailmodo://campaigns", func(ctx context.Context) (any, error) {
		resp, err := client.GetAllCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		return resp.Campaigns, nil
	})
	addResource(srv, "Mailmodo Contact Lists", "mailmodo://contact-lists", func(ctx context.Context) (any, error) {
		resp, err := client.GetAllContactLists(ctx)
		if err != nil {
			return nil, err
		}
		return resp.ListDetails, nil
	})

	return srv
}

// addTool registers one tool with the SDK, routing its invocations
// through the registry's validate-execute-render dispatch.
func addTool(srv *mcp.Server, registry *tools.Registry, tool *tools.Tool) {
	mcp.AddTool(srv, &tool.Tool, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		result := registry.Call(ctx, tool.Name, args)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text()}},
			IsError: result.IsError(),
		}, nil, nil
	})
}

// addResource registers a JSON resource whose content is fetched on every
// read.
func addResource(srv *mcp.Server, name, uri string, fetch func(ctx context.Context) (any, error)) {
	srv.AddResource(&mcp.Resource{
		Name:     name,
		URI:      uri,
		MIMEType: "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		payload, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	})
}
