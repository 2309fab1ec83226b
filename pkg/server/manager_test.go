package server

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestManagerReusesServerPerKey(t *testing.T) {
	builds := 0
	mgr := NewManager(func(apiKey string) *mcp.Server {
		builds++
		return mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	})

	first := mgr.ServerFor("key-a")
	second := mgr.ServerFor("key-a")
	if first != second {
		t.Fatalf("expected the same server instance for a repeated key")
	}
	if builds != 1 {
		t.Fatalf("expected one build for a repeated key, got %d", builds)
	}
}

func TestManagerIsolatesKeys(t *testing.T) {
	mgr := NewManager(func(apiKey string) *mcp.Server {
		return mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	})

	if mgr.ServerFor("key-a") == mgr.ServerFor("key-b") {
		t.Fatalf("expected distinct servers for distinct keys")
	}
}
