package evm

import (
	"context"
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// Query tool method identifiers.
const (
	MethodGetContractInfo = "get_contract_info_query"
)

// QueryPlugin returns the EVM query plugin backed by the mirror node.
func QueryPlugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-evm-query",
		Version:     "1.0.0",
		Description: "Mirror-node queries for smart contracts.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				getContractInfoTool(kit),
			}
		},
	}
}

type contractInfoParams struct {
	ContractID string `json:"contract_id"`
}

func getContractInfoTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetContractInfo,
		Name:   "Get Contract Info",
		Description: agentkit.DescribeContext(kit) +
			" Looks up a smart contract's details on the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"contract_id": agentkit.String(
				"Contract to look up, as shard.realm.num or a 0x EVM address.",
			),
		}, "contract_id"),
		Execute: executeGetContractInfo,
	}
}

func executeGetContractInfo(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params contractInfoParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}
	if params.ContractID == "" {
		return agentkit.ErrorResponse("contract ID is required")
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	info, err := mirrorClient.GetContractInfo(ctx, params.ContractID)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch contract %s: %v", params.ContractID, err)
	}

	message := fmt.Sprintf("Contract %s at EVM address %s", info.ContractID, info.EvmAddress)
	if info.Memo != "" {
		message += fmt.Sprintf(" (memo: %s)", info.Memo)
	}
	if info.Deleted {
		message += " is deleted"
	}
	message += "."

	return agentkit.ToolResponse{
		HumanMessage: message,
		Extra:        map[string]any{"contract": info},
	}
}
