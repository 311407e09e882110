package agentkit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestErrorResponse(t *testing.T) {
	response := ErrorResponse("bad thing: %d", 42)
	if !response.Failed() {
		t.Fatal("expected failed response")
	}
	if response.Error != "bad thing: 42" || response.HumanMessage != response.Error {
		t.Fatalf("unexpected response: %+v", response)
	}
}

func TestToolResponseJSON(t *testing.T) {
	response := ToolResponse{
		HumanMessage: "done",
		Raw:          &RawTransactionResponse{Status: "SUCCESS", TransactionID: "0.0.1@2.3"},
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(response.JSON()), &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["human_message"] != "done" {
		t.Fatalf("unexpected JSON: %v", decoded)
	}
	if _, hasError := decoded["error"]; hasError {
		t.Fatal("expected error field to be omitted on success")
	}
}

func TestToolResponseBytesBase64(t *testing.T) {
	response := ToolResponse{HumanMessage: "bytes", Bytes: []byte{0xde, 0xad}}
	encoded := response.JSON()
	if !strings.Contains(encoded, `"bytes":"`) {
		t.Fatalf("expected base64 bytes field, got %s", encoded)
	}
}

func TestSchemaJSON(t *testing.T) {
	schema := Object(map[string]*Schema{
		"amount": Number("Amount in display units."),
		"memo":   String("Optional memo."),
	}, "amount")

	encoded := schema.JSON()
	var decoded map[string]any
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("schema JSON does not parse: %v", err)
	}
	if decoded["type"] != "object" {
		t.Fatalf("unexpected schema type: %v", decoded["type"])
	}

	var nilSchema *Schema
	if nilSchema.JSON() != "{}" {
		t.Fatalf("expected {} for nil schema, got %s", nilSchema.JSON())
	}
}

func TestSchemaHelpers(t *testing.T) {
	array := Array("serial numbers", Integer("one serial"))
	if array.Type != TypeArray || array.Items == nil || array.Items.Type != TypeInteger {
		t.Fatalf("unexpected array schema: %+v", array)
	}
	if Boolean("flag").Type != TypeBoolean {
		t.Fatal("unexpected boolean schema type")
	}
}
