package server

import (
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Manager hands out one assembled MCP server per API key. Construction is
// idempotent, so the lock only exists to keep the map consistent; a
// rebuilt server for a seen key would behave identically.
type Manager struct {
	mu      sync.Mutex
	servers map[string]*mcp.Server
	build   func(apiKey string) *mcp.Server
}

// NewManager creates a Manager that assembles servers with build.
func NewManager(build func(apiKey string) *mcp.Server) *Manager {
	return &Manager{
		servers: make(map[string]*mcp.Server),
		build:   build,
	}
}

// ServerFor returns the server for apiKey, assembling it on first use.
func (m *Manager) ServerFor(apiKey string) *mcp.Server {
	m.mu.Lock()
	defer m.mu.Unlock()
	srv, ok := m.servers[apiKey]
	if !ok {
		srv = m.build(apiKey)
		m.servers[apiKey] = srv
	}
	return srv
}
