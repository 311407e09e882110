package adk

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// toGenaiSchema converts a kit parameter schema into the genai form.
func toGenaiSchema(schema *agentkit.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	converted := &genai.Schema{
		Description: schema.Description,
		Required:    schema.Required,
		Enum:        schema.Enum,
	}

	switch schema.Type {
	case agentkit.TypeObject:
		converted.Type = genai.TypeObject
	case agentkit.TypeString:
		converted.Type = genai.TypeString
	case agentkit.TypeNumber:
		converted.Type = genai.TypeNumber
	case agentkit.TypeInteger:
		converted.Type = genai.TypeInteger
	case agentkit.TypeBoolean:
		converted.Type = genai.TypeBoolean
	case agentkit.TypeArray:
		converted.Type = genai.TypeArray
	}

	if len(schema.Properties) > 0 {
		converted.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, property := range schema.Properties {
			converted.Properties[name] = toGenaiSchema(property)
		}
	}
	if schema.Items != nil {
		converted.Items = toGenaiSchema(schema.Items)
	}

	return converted
}

// Declarations returns one function declaration per registered kit tool.
func Declarations(api *agentkit.AgentAPI) []*genai.FunctionDeclaration {
	kitTools := api.Tools()
	declarations := make([]*genai.FunctionDeclaration, 0, len(kitTools))
	for _, tool := range kitTools {
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        tool.Method,
			Description: tool.Description,
			Parameters:  toGenaiSchema(tool.Parameters),
		})
	}
	return declarations
}

// Dispatcher routes model function calls to kit tools.
type Dispatcher struct {
	api *agentkit.AgentAPI
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(api *agentkit.AgentAPI) *Dispatcher {
	return &Dispatcher{api: api}
}

// Call executes the named tool with the model's arguments and returns the
// response as a map suitable for a function response part. Tool-level
// failures come back in the map under "error".
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	params, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode function call arguments: %w", err)
	}

	response, err := d.api.Run(ctx, name, params)
	if err != nil {
		return nil, err
	}

	result := make(map[string]any)
	if err := json.Unmarshal([]byte(response.JSON()), &result); err != nil {
		return nil, fmt.Errorf("failed to decode tool response: %w", err)
	}
	return result, nil
}
