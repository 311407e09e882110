package adk

import (
	"context"
	"encoding/json"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"google.golang.org/genai"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

func testAPI(t *testing.T) *agentkit.AgentAPI {
	t.Helper()
	echo := agentkit.Plugin{
		Name:    "echo",
		Version: "1.0.0",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				{
					Method:      "echo_message",
					Name:        "Echo",
					Description: "Echoes the message back.",
					Parameters: agentkit.Object(map[string]*agentkit.Schema{
						"message": agentkit.String("Message to echo."),
						"tags":    agentkit.Array("Optional tags.", agentkit.String("Tag.")),
					}, "message"),
					Execute: func(
						ctx context.Context,
						client *hedera.Client,
						kit *agentkit.Context,
						raw json.RawMessage,
					) agentkit.ToolResponse {
						var params struct {
							Message string `json:"message"`
						}
						if err := json.Unmarshal(raw, &params); err != nil {
							return agentkit.ErrorResponse("invalid parameters: %v", err)
						}
						return agentkit.ToolResponse{HumanMessage: params.Message}
					},
				},
			}
		},
	}

	configuration := agentkit.Configuration{Context: &agentkit.Context{}}
	return agentkit.NewAgentAPI(nil, configuration, []agentkit.Plugin{echo}, nil)
}

func TestDeclarations(t *testing.T) {
	declarations := Declarations(testAPI(t))
	if len(declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(declarations))
	}

	declaration := declarations[0]
	if declaration.Name != "echo_message" {
		t.Fatalf("unexpected name %q", declaration.Name)
	}
	if declaration.Parameters == nil || declaration.Parameters.Type != genai.TypeObject {
		t.Fatalf("unexpected parameter schema: %+v", declaration.Parameters)
	}
	message, ok := declaration.Parameters.Properties["message"]
	if !ok || message.Type != genai.TypeString {
		t.Fatalf("unexpected message property: %+v", message)
	}
	tags, ok := declaration.Parameters.Properties["tags"]
	if !ok || tags.Type != genai.TypeArray || tags.Items == nil {
		t.Fatalf("unexpected tags property: %+v", tags)
	}
	if len(declaration.Parameters.Required) != 1 || declaration.Parameters.Required[0] != "message" {
		t.Fatalf("unexpected required list: %v", declaration.Parameters.Required)
	}
}

func TestDispatcherCall(t *testing.T) {
	dispatcher := NewDispatcher(testAPI(t))

	result, err := dispatcher.Call(context.Background(), "echo_message", map[string]any{
		"message": "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["human_message"] != "hello" {
		t.Fatalf("unexpected result: %v", result)
	}
}

func TestDispatcherCallUnknownTool(t *testing.T) {
	dispatcher := NewDispatcher(testAPI(t))
	if _, err := dispatcher.Call(context.Background(), "missing", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestToGenaiSchemaNil(t *testing.T) {
	if toGenaiSchema(nil) != nil {
		t.Fatal("expected nil for nil input")
	}
}
