package network

import (
	"context"
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// Query tool method identifiers.
const (
	MethodGetExchangeRate = "get_exchange_rate_query"
)

// QueryPlugin returns the network query plugin backed by the mirror node.
func QueryPlugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-network-query",
		Version:     "1.0.0",
		Description: "Network-level mirror-node queries.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				getExchangeRateTool(kit),
			}
		},
	}
}

type exchangeRateParams struct {
	Timestamp string `json:"timestamp,omitempty"`
}

func getExchangeRateTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetExchangeRate,
		Name:   "Get Exchange Rate",
		Description: agentkit.DescribeContext(kit) +
			" Returns the network's HBAR to USD cent exchange rate, now or at a past timestamp. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"timestamp": agentkit.String(
				"Optional consensus timestamp (seconds.nanoseconds) to query a historical rate.",
			),
		}),
		Execute: executeGetExchangeRate,
	}
}

func executeGetExchangeRate(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params exchangeRateParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	rates, err := mirrorClient.GetExchangeRate(ctx, params.Timestamp)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch exchange rate: %v", err)
	}

	current := rates.CurrentRate
	centsPerHbar := 0.0
	if current.HbarEquivalent != 0 {
		centsPerHbar = float64(current.CentEquivalent) / float64(current.HbarEquivalent)
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"1 HBAR is worth %.4f US cents (%d cents per %d hbar).",
			centsPerHbar, current.CentEquivalent, current.HbarEquivalent,
		),
		Extra: map[string]any{"rates": rates},
	}
}
