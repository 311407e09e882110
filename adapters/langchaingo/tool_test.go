package langchaingo

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

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
						if params.Message == "" {
							return agentkit.ErrorResponse("message is required")
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

func TestNewAgentToolUnknownMethod(t *testing.T) {
	if _, err := NewAgentTool(testAPI(t), "missing"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestAgentToolDescriptionCarriesSchema(t *testing.T) {
	tool, err := NewAgentTool(testAPI(t), "echo_message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tool.Name() != "echo_message" {
		t.Fatalf("unexpected name %q", tool.Name())
	}
	if !strings.Contains(tool.Description(), `"message"`) {
		t.Fatalf("description is missing the schema: %s", tool.Description())
	}
}

func TestAgentToolCall(t *testing.T) {
	tool, err := NewAgentTool(testAPI(t), "echo_message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := tool.Call(context.Background(), `{"message":"hello"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "hello") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestAgentToolCallFailureIsObservation(t *testing.T) {
	tool, err := NewAgentTool(testAPI(t), "echo_message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := tool.Call(context.Background(), `{}`)
	if err != nil {
		t.Fatalf("failures must not surface as Go errors: %v", err)
	}
	if !strings.Contains(output, "Tool failed") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestToolkitWrapsEveryTool(t *testing.T) {
	toolkit := NewToolkit(testAPI(t))
	wrapped := toolkit.Tools()
	if len(wrapped) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(wrapped))
	}
	if wrapped[0].Name() != "echo_message" {
		t.Fatalf("unexpected tool %q", wrapped[0].Name())
	}
}
