package evm

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

func testContext() *agentkit.Context {
	return &agentkit.Context{AccountID: "0.0.5005"}
}

func TestAccountToEvmAddress(t *testing.T) {
	accountID, err := hedera.AccountIDFromString("0.0.5005")
	if err != nil {
		t.Fatalf("failed to parse account ID: %v", err)
	}

	address := accountToEvmAddress(accountID)
	if address.Hex() != "0x000000000000000000000000000000000000138d" {
		t.Fatalf("unexpected address %s", address.Hex())
	}
}

func TestResolveEvmAddress(t *testing.T) {
	kit := testContext()

	hex, err := resolveEvmAddress("0x000000000000000000000000000000000000138D", kit, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hex.Hex() != "0x000000000000000000000000000000000000138d" {
		t.Fatalf("unexpected address %s", hex.Hex())
	}

	fromAccount, err := resolveEvmAddress("0.0.5005", kit, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromAccount != hex {
		t.Fatalf("account and hex forms disagree: %s vs %s", fromAccount.Hex(), hex.Hex())
	}

	fallback, err := resolveEvmAddress("", kit, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback != hex {
		t.Fatalf("expected fallback to the connected account, got %s", fallback.Hex())
	}

	if _, err := resolveEvmAddress("0xnothex", kit, nil); err == nil {
		t.Fatal("expected error for malformed hex address")
	}
}

func TestParseContractID(t *testing.T) {
	contractID, err := parseContractID("0.0.6471814")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contractID.Contract != 6471814 {
		t.Fatalf("unexpected contract %s", contractID.String())
	}

	if _, err := parseContractID(""); err == nil {
		t.Fatal("expected error for empty contract ID")
	}
	if _, err := parseContractID("garbage"); err == nil {
		t.Fatal("expected error for malformed contract ID")
	}
}

func TestPackDeployERC20(t *testing.T) {
	calldata, err := packDeployERC20("Demo", "DMO", 18, big.NewInt(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Four bytes of selector plus four ABI-encoded arguments.
	if len(calldata) < 4+4*32 {
		t.Fatalf("calldata is too short: %d bytes", len(calldata))
	}
}

func TestPackTransferERC20(t *testing.T) {
	to, err := resolveEvmAddress("0.0.1001", testContext(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calldata, err := packTransferERC20(to, big.NewInt(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calldata) != 4+2*32 {
		t.Fatalf("unexpected calldata length %d", len(calldata))
	}
	// transfer(address,uint256) selector.
	if calldata[0] != 0xa9 || calldata[1] != 0x05 || calldata[2] != 0x9c || calldata[3] != 0xbb {
		t.Fatalf("unexpected selector %x", calldata[:4])
	}
}

func TestPackTransferERC721(t *testing.T) {
	kit := testContext()
	from, _ := resolveEvmAddress("0.0.5005", kit, nil)
	to, _ := resolveEvmAddress("0.0.1001", kit, nil)

	calldata, err := packTransferERC721(from, to, big.NewInt(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calldata) != 4+3*32 {
		t.Fatalf("unexpected calldata length %d", len(calldata))
	}
	// transferFrom(address,address,uint256) selector.
	if calldata[0] != 0x23 || calldata[1] != 0xb8 || calldata[2] != 0x72 || calldata[3] != 0xdd {
		t.Fatalf("unexpected selector %x", calldata[:4])
	}
}

func TestBuildContractExecuteTx(t *testing.T) {
	contractID, err := parseContractID(ERC20FactoryContractID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transaction := BuildContractExecuteTx(contractID, DeployGasLimit, []byte{0x01, 0x02})
	if transaction.GetContractID().Contract != 6471814 {
		t.Fatalf("unexpected contract %s", transaction.GetContractID().String())
	}
	if transaction.GetGas() != DeployGasLimit {
		t.Fatalf("unexpected gas %d", transaction.GetGas())
	}
}

func TestPluginToolList(t *testing.T) {
	kit := testContext()
	tools := Plugin().Tools(kit)

	expected := []string{
		MethodCreateERC20,
		MethodTransferERC20,
		MethodCreateERC721,
		MethodMintERC721,
		MethodTransferERC721,
	}
	if len(tools) != len(expected) {
		t.Fatalf("expected %d tools, got %d", len(expected), len(tools))
	}
	for index, method := range expected {
		if tools[index].Method != method {
			t.Fatalf("expected tool %s at %d, got %s", method, index, tools[index].Method)
		}
	}
}

func TestCreateERC20ToolRejectsBadParams(t *testing.T) {
	kit := testContext()
	var tool agentkit.Tool
	for _, candidate := range Plugin().Tools(kit) {
		if candidate.Method == MethodCreateERC20 {
			tool = candidate
		}
	}

	response := tool.Execute(context.Background(), nil, kit, json.RawMessage(`{"token_name":"Demo"}`))
	if !response.Failed() {
		t.Fatal("expected failure for missing symbol")
	}

	response = tool.Execute(context.Background(), nil, kit, json.RawMessage(
		`{"token_name":"Demo","token_symbol":"DMO","decimals":900}`,
	))
	if !response.Failed() {
		t.Fatal("expected failure for oversized decimals")
	}
}
