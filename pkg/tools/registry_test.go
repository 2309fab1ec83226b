package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestRegistryRegistersAllCapabilities(t *testing.T) {
	registry := newTestRegistry(&fakeClient{})
	expected := []string{
		"MailmodoCampainReportTool",
		"addBulkContactToList",
		"addContactToList",
		"archiveContact",
		"broadcastCampaignToList",
		"currentDateTime",
		"removeContactFromList",
		"resubscribeContact",
		"sendEmailToCampaign",
		"sendEvent",
		"unsubscribeContact",
		"userDetails",
	}
	all := registry.All()
	if len(all) != len(expected) {
		t.Fatalf("expected %d tools, got %d", len(expected), len(all))
	}
	for i, tool := range all {
		if tool.Name != expected[i] {
			t.Fatalf("tool %d: expected %q, got %q", i, expected[i], tool.Name)
		}
	}
}

func TestCallUnknownTool(t *testing.T) {
	registry := newTestRegistry(&fakeClient{})
	result := registry.Call(context.Background(), "noSuchTool", nil)
	if !result.IsError() {
		t.Fatalf("expected unknown tool call to be error-flagged")
	}
}

func TestCallValidationFailureSkipsClient(t *testing.T) {
	client := &fakeClient{}
	registry := newTestRegistry(client)

	result := registry.Call(context.Background(), "addContactToList", map[string]any{"email": "a@b.com"})
	if !result.IsError() {
		t.Fatalf("expected missing listName to be rejected")
	}
	if client.calls != 0 {
		t.Fatalf("expected zero client calls, got %d", client.calls)
	}
}

func TestCallRecoversFromPanickingHandler(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&Tool{
		Tool: mcp.Tool{Name: "explode", InputSchema: map[string]any{"type": "object"}},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			panic("boom")
		},
	})

	result := registry.Call(context.Background(), "explode", nil)
	if !result.IsError() {
		t.Fatalf("expected panic to surface as error result")
	}
	if !strings.Contains(result.Text(), "boom") {
		t.Fatalf("expected panic message in result, got %q", result.Text())
	}
}
