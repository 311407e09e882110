package agentkit

import (
	"context"
	"encoding/json"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestAgentAPIRun(t *testing.T) {
	api := NewAgentAPI(nil, Configuration{
		Plugins: []Plugin{staticPlugin("core", "greet")},
	}, nil, nil)

	response, err := api.Run(context.Background(), "greet", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.HumanMessage != "greet ran" {
		t.Fatalf("unexpected response: %+v", response)
	}
}

func TestAgentAPIRunUnknownMethod(t *testing.T) {
	api := NewAgentAPI(nil, Configuration{}, []Plugin{staticPlugin("core", "greet")}, nil)

	if _, err := api.Run(context.Background(), "missing", nil); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestAgentAPIFallsBackToCorePlugins(t *testing.T) {
	api := NewAgentAPI(nil, Configuration{}, []Plugin{staticPlugin("core", "a", "b")}, nil)

	if len(api.Tools()) != 2 {
		t.Fatalf("expected 2 core tools, got %d", len(api.Tools()))
	}
}

func TestAgentAPIConfiguredPluginsReplaceCore(t *testing.T) {
	api := NewAgentAPI(nil, Configuration{
		Plugins: []Plugin{staticPlugin("custom", "x")},
	}, []Plugin{staticPlugin("core", "a", "b")}, nil)

	tools := api.Tools()
	if len(tools) != 1 || tools[0].Method != "x" {
		t.Fatalf("expected only the configured plugin's tools, got %+v", tools)
	}
}

func TestAgentAPIAllowlist(t *testing.T) {
	api := NewAgentAPI(nil, Configuration{
		Tools: []string{"b"},
	}, []Plugin{staticPlugin("core", "a", "b")}, nil)

	tools := api.Tools()
	if len(tools) != 1 || tools[0].Method != "b" {
		t.Fatalf("expected allowlisted tool only, got %+v", tools)
	}
}

func TestAgentAPIRunRecoversPanic(t *testing.T) {
	panicking := Plugin{
		Name: "panicker",
		Tools: func(kit *Context) []Tool {
			return []Tool{{
				Method: "explode",
				Execute: func(context.Context, *hedera.Client, *Context, json.RawMessage) ToolResponse {
					panic("kaboom")
				},
			}}
		},
	}

	api := NewAgentAPI(nil, Configuration{Plugins: []Plugin{panicking}}, nil, nil)
	response, err := api.Run(context.Background(), "explode", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !response.Failed() {
		t.Fatalf("expected failed response, got %+v", response)
	}
}

func TestAgentAPIToolLookup(t *testing.T) {
	api := NewAgentAPI(nil, Configuration{}, []Plugin{staticPlugin("core", "a")}, nil)

	if _, ok := api.Tool("a"); !ok {
		t.Fatal("expected tool a to be present")
	}
	if _, ok := api.Tool("z"); ok {
		t.Fatal("expected tool z to be absent")
	}
}
