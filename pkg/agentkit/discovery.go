package agentkit

import (
	"go.uber.org/zap"
)

// ToolDiscovery flattens a plugin set into the tool list an agent is given.
type ToolDiscovery struct {
	plugins []Plugin
	logger  *zap.Logger
}

// NewToolDiscovery creates a new ToolDiscovery over the given plugins. A nil
// logger disables diagnostics.
func NewToolDiscovery(plugins []Plugin, logger *zap.Logger) *ToolDiscovery {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToolDiscovery{plugins: plugins, logger: logger}
}

// Tools collects the plugins' tools for the given context. Duplicate methods
// keep the first tool seen; when an allowlist is given only listed methods
// are returned. A plugin whose factory panics is skipped, not fatal.
func (d *ToolDiscovery) Tools(kit *Context, allowlist []string) []Tool {
	allowed := make(map[string]bool, len(allowlist))
	for _, method := range allowlist {
		allowed[method] = true
	}

	seen := make(map[string]string)
	result := make([]Tool, 0)

	for _, plugin := range d.plugins {
		for _, tool := range d.collect(plugin, kit) {
			if owner, duplicate := seen[tool.Method]; duplicate {
				d.logger.Warn("duplicate tool method, keeping first registration",
					zap.String("method", tool.Method),
					zap.String("kept", owner),
					zap.String("dropped", plugin.Name),
				)
				continue
			}
			seen[tool.Method] = plugin.Name

			if len(allowed) > 0 && !allowed[tool.Method] {
				continue
			}
			result = append(result, tool)
		}
	}

	return result
}

func (d *ToolDiscovery) collect(plugin Plugin, kit *Context) (tools []Tool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			d.logger.Warn("plugin tool factory panicked, skipping plugin",
				zap.String("plugin", plugin.Name),
				zap.Any("panic", recovered),
			)
			tools = nil
		}
	}()

	if plugin.Tools == nil {
		return nil
	}
	return plugin.Tools(kit)
}
