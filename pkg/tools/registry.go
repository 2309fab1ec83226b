package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Registry maps capability names to tools. One registry is built per API
// key and reused for every invocation under that key.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = tool
}

// Get retrieves a tool by exact name, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// All returns all registered tools sorted by name.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]*Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// Call dispatches one invocation: validate the input against the tool's
// schema, execute, and return the rendered result. Validation failures
// never reach the network. A panicking handler is caught here and turned
// into an error-flagged result instead of killing the process.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (result *Result) {
	tool := r.Get(name)
	if tool == nil {
		return ErrorResult(fmt.Sprintf("unknown tool: %s", name))
	}

	log := zerolog.Ctx(ctx).With().
		Str("tool", name).
		Str("invocation_id", xid.New().String()).
		Logger()
	ctx = log.WithContext(ctx)

	defer func() {
		if panicked := recover(); panicked != nil {
			log.Error().Any("panic", panicked).Msg("Tool handler panicked")
			result = ErrorResult(fmt.Sprintf("%s failed: %v", name, panicked))
		}
	}()

	if args == nil {
		args = map[string]any{}
	}
	schema, _ := tool.InputSchema.(map[string]any)
	if err := ValidateInput(args, schema); err != nil {
		log.Debug().Err(err).Msg("Tool input rejected")
		return ErrorResult(err.Error())
	}

	log.Debug().Msg("Executing tool")
	res, err := tool.Execute(ctx, args)
	if err != nil {
		return ErrorResult(err.Error())
	}
	return res
}
