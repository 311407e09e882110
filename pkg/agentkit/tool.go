package agentkit

import (
	"context"
	"encoding/json"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ExecuteFunc runs a tool invocation. Raw parameters arrive as the JSON
// object produced by the calling agent framework. Failures are reported in
// the ToolResponse, never by panicking.
type ExecuteFunc func(
	ctx context.Context,
	client *hedera.Client,
	kit *Context,
	params json.RawMessage,
) ToolResponse

// Tool is one agent-callable operation.
type Tool struct {
	// Method is the stable identifier used for dispatch and allowlists.
	Method string

	// Name is the human-readable title.
	Name string

	// Description is the LLM-facing prompt text.
	Description string

	// Parameters describes the tool's JSON parameter object.
	Parameters *Schema

	// Execute runs the tool.
	Execute ExecuteFunc
}

// Plugin groups related tools. The factory receives the agent context so
// tool descriptions and defaults can reflect the connected account.
type Plugin struct {
	Name        string
	Version     string
	Description string
	Tools       func(kit *Context) []Tool
}
