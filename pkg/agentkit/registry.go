package agentkit

import (
	"sync"

	"go.uber.org/zap"
)

// PluginRegistry collects plugins by name. Registering a name twice
// overwrites the earlier plugin and logs a warning.
type PluginRegistry struct {
	logger *zap.Logger

	mutex   sync.Mutex
	plugins map[string]Plugin
	order   []string
}

// NewPluginRegistry creates a new PluginRegistry. A nil logger disables
// diagnostics.
func NewPluginRegistry(logger *zap.Logger) *PluginRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PluginRegistry{
		logger:  logger,
		plugins: make(map[string]Plugin),
	}
}

// Register adds the plugin under its name.
func (r *PluginRegistry) Register(plugin Plugin) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.plugins[plugin.Name]; exists {
		r.logger.Warn("plugin already registered, overwriting",
			zap.String("plugin", plugin.Name),
		)
	} else {
		r.order = append(r.order, plugin.Name)
	}
	r.plugins[plugin.Name] = plugin
}

// Plugins returns the registered plugins in registration order.
func (r *PluginRegistry) Plugins() []Plugin {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	result := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.plugins[name])
	}
	return result
}

// Len returns the number of registered plugins.
func (r *PluginRegistry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.order)
}
