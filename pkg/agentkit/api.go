package agentkit

import (
	"context"
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"
)

// AgentAPI dispatches tool invocations by method name. It is the surface the
// framework adapters and the CLI build on.
type AgentAPI struct {
	client *hedera.Client
	kit    *Context
	tools  map[string]Tool
	order  []string
}

// NewAgentAPI assembles the API from a client, a configuration, and the
// plugin set to fall back on when the configuration names none.
func NewAgentAPI(
	client *hedera.Client,
	configuration Configuration,
	corePlugins []Plugin,
	logger *zap.Logger,
) *AgentAPI {
	plugins := configuration.Plugins
	if len(plugins) == 0 {
		plugins = corePlugins
	}

	discovery := NewToolDiscovery(plugins, logger)
	tools := discovery.Tools(configuration.Context, configuration.Tools)

	api := &AgentAPI{
		client: client,
		kit:    configuration.Context,
		tools:  make(map[string]Tool, len(tools)),
	}
	for _, tool := range tools {
		api.tools[tool.Method] = tool
		api.order = append(api.order, tool.Method)
	}

	return api
}

// Tools returns the discovered tools in plugin order.
func (a *AgentAPI) Tools() []Tool {
	result := make([]Tool, 0, len(a.order))
	for _, method := range a.order {
		result = append(result, a.tools[method])
	}
	return result
}

// Tool looks up a tool by method.
func (a *AgentAPI) Tool(method string) (Tool, bool) {
	tool, ok := a.tools[method]
	return tool, ok
}

// Context returns the agent context the API was built with.
func (a *AgentAPI) Context() *Context {
	return a.kit
}

// Run executes the named tool with the raw JSON parameters. An unknown
// method is a Go error; tool-level failures come back inside the
// ToolResponse.
func (a *AgentAPI) Run(
	ctx context.Context,
	method string,
	params json.RawMessage,
) (response ToolResponse, err error) {
	tool, ok := a.tools[method]
	if !ok {
		return ToolResponse{}, fmt.Errorf("unknown tool method %q", method)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			response = ErrorResponse("tool %s panicked: %v", method, recovered)
			err = nil
		}
	}()

	if len(params) == 0 {
		params = json.RawMessage("{}")
	}
	return tool.Execute(ctx, a.client, a.kit, params), nil
}
