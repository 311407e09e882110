package agentkit

import (
	"context"
	"encoding/json"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func staticTool(method string) Tool {
	return Tool{
		Method:      method,
		Name:        method,
		Description: "test tool " + method,
		Parameters:  Object(map[string]*Schema{}),
		Execute: func(context.Context, *hedera.Client, *Context, json.RawMessage) ToolResponse {
			return ToolResponse{HumanMessage: method + " ran"}
		},
	}
}

func staticPlugin(name string, methods ...string) Plugin {
	return Plugin{
		Name:    name,
		Version: "1.0.0",
		Tools: func(kit *Context) []Tool {
			tools := make([]Tool, 0, len(methods))
			for _, method := range methods {
				tools = append(tools, staticTool(method))
			}
			return tools
		},
	}
}

func TestToolDiscoveryCollectsAll(t *testing.T) {
	discovery := NewToolDiscovery([]Plugin{
		staticPlugin("one", "a", "b"),
		staticPlugin("two", "c"),
	}, nil)

	tools := discovery.Tools(nil, nil)
	if len(tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(tools))
	}
	if tools[0].Method != "a" || tools[2].Method != "c" {
		t.Fatalf("unexpected tool order: %+v", tools)
	}
}

func TestToolDiscoveryFirstMethodWins(t *testing.T) {
	discovery := NewToolDiscovery([]Plugin{
		staticPlugin("one", "dup"),
		staticPlugin("two", "dup", "other"),
	}, nil)

	tools := discovery.Tools(nil, nil)
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
}

func TestToolDiscoveryAllowlist(t *testing.T) {
	discovery := NewToolDiscovery([]Plugin{
		staticPlugin("one", "a", "b", "c"),
	}, nil)

	tools := discovery.Tools(nil, []string{"b"})
	if len(tools) != 1 || tools[0].Method != "b" {
		t.Fatalf("expected only b, got %+v", tools)
	}
}

func TestToolDiscoveryPanickingPluginSkipped(t *testing.T) {
	discovery := NewToolDiscovery([]Plugin{
		{Name: "broken", Tools: func(kit *Context) []Tool { panic("boom") }},
		staticPlugin("ok", "works"),
	}, nil)

	tools := discovery.Tools(nil, nil)
	if len(tools) != 1 || tools[0].Method != "works" {
		t.Fatalf("expected the healthy plugin only, got %+v", tools)
	}
}

func TestToolDiscoveryNilFactory(t *testing.T) {
	discovery := NewToolDiscovery([]Plugin{{Name: "empty"}}, nil)
	if tools := discovery.Tools(nil, nil); len(tools) != 0 {
		t.Fatalf("expected no tools, got %+v", tools)
	}
}

func TestPluginRegistryRegisterAndList(t *testing.T) {
	registry := NewPluginRegistry(nil)
	registry.Register(staticPlugin("one", "a"))
	registry.Register(staticPlugin("two", "b"))

	plugins := registry.Plugins()
	if len(plugins) != 2 {
		t.Fatalf("expected 2 plugins, got %d", len(plugins))
	}
	if plugins[0].Name != "one" || plugins[1].Name != "two" {
		t.Fatalf("unexpected plugin order: %+v", plugins)
	}
}

func TestPluginRegistryOverwriteKeepsOrder(t *testing.T) {
	registry := NewPluginRegistry(nil)
	registry.Register(staticPlugin("one", "a"))
	registry.Register(staticPlugin("two", "b"))
	registry.Register(Plugin{Name: "one", Version: "2.0.0"})

	plugins := registry.Plugins()
	if registry.Len() != 2 {
		t.Fatalf("expected 2 plugins, got %d", registry.Len())
	}
	if plugins[0].Name != "one" || plugins[0].Version != "2.0.0" {
		t.Fatalf("expected overwritten plugin first, got %+v", plugins[0])
	}
}
