package agentkit

import "encoding/json"

// DataType is a JSON-schema primitive type name.
type DataType string

const (
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeInteger DataType = "integer"
	TypeBoolean DataType = "boolean"
	TypeArray   DataType = "array"
	TypeObject  DataType = "object"
)

// Schema is a framework-neutral subset of JSON schema, rich enough to
// describe tool parameters to any of the supported agent frameworks.
type Schema struct {
	Type        DataType           `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

// Object builds an object schema from its properties and required names.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}

// String builds a string property.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Number builds a number property.
func Number(description string) *Schema {
	return &Schema{Type: TypeNumber, Description: description}
}

// Integer builds an integer property.
func Integer(description string) *Schema {
	return &Schema{Type: TypeInteger, Description: description}
}

// Boolean builds a boolean property.
func Boolean(description string) *Schema {
	return &Schema{Type: TypeBoolean, Description: description}
}

// Array builds an array property with the given item schema.
func Array(description string, items *Schema) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: items}
}

// JSON renders the schema for inclusion in prompts.
func (s *Schema) JSON() string {
	if s == nil {
		return "{}"
	}
	encoded, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
