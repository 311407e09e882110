package langchaingo

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// AgentTool is a langchaingo compatible Tool backed by one kit tool.
type AgentTool struct {
	api       *agentkit.AgentAPI
	method    string
	name      string
	describe  string
	Callbacks callbacks.Handler
}

// Ensure AgentTool implements tools.Tool
var _ tools.Tool = &AgentTool{}

// NewAgentTool wraps the named kit tool for langchaingo. It returns an error
// when the method is not registered on the API.
func NewAgentTool(api *agentkit.AgentAPI, method string) (*AgentTool, error) {
	tool, ok := api.Tool(method)
	if !ok {
		return nil, fmt.Errorf("tool %q is not registered", method)
	}

	description := tool.Description
	if tool.Parameters != nil {
		description += " Input must be a JSON object matching this schema: " + tool.Parameters.JSON()
	}

	return &AgentTool{
		api:      api,
		method:   method,
		name:     method,
		describe: description,
	}, nil
}

// Name returns the tool's method identifier.
func (t *AgentTool) Name() string {
	return t.name
}

// Description returns the tool description plus its parameter schema so the
// language model can produce valid input.
func (t *AgentTool) Description() string {
	return t.describe
}

// Call executes the tool. Input is the JSON parameter object; an empty input
// runs the tool with defaults. Failures come back as observations rather
// than Go errors so the agent loop keeps going.
func (t *AgentTool) Call(ctx context.Context, input string) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}

	params := []byte(strings.TrimSpace(input))
	response, err := t.api.Run(ctx, t.method, params)
	if err != nil {
		return "", err
	}

	if response.Failed() {
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, fmt.Errorf("%s", response.Error))
		}
		return fmt.Sprintf("Tool failed: %s", response.Error), nil
	}

	output := response.JSON()

	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}

	return output, nil
}

// Toolkit exposes every tool of an AgentAPI as langchaingo tools.
type Toolkit struct {
	api       *agentkit.AgentAPI
	Callbacks callbacks.Handler
}

// NewToolkit creates a new Toolkit.
func NewToolkit(api *agentkit.AgentAPI) *Toolkit {
	return &Toolkit{api: api}
}

// Tools returns one langchaingo tool per registered kit tool, in
// registration order.
func (k *Toolkit) Tools() []tools.Tool {
	kitTools := k.api.Tools()
	wrapped := make([]tools.Tool, 0, len(kitTools))
	for _, tool := range kitTools {
		agentTool, err := NewAgentTool(k.api, tool.Method)
		if err != nil {
			continue
		}
		agentTool.Callbacks = k.Callbacks
		wrapped = append(wrapped, agentTool)
	}
	return wrapped
}
