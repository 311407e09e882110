package token

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/mirror"
)

// Query tool method identifiers.
const (
	MethodGetTokenInfo           = "get_token_info_query"
	MethodGetAccountNfts         = "get_account_nfts_query"
	MethodGetPendingAirdrops     = "get_pending_airdrops_query"
	MethodGetOutstandingAirdrops = "get_outstanding_airdrops_query"
	MethodGetTokenAllowances     = "get_token_allowances_query"
)

// QueryPlugin returns the token query plugin backed by the mirror node.
func QueryPlugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-token-query",
		Version:     "1.0.0",
		Description: "Mirror-node queries for tokens, NFTs, airdrops, and allowances.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				getTokenInfoTool(kit),
				getAccountNftsTool(kit),
				getPendingAirdropsTool(kit),
				getOutstandingAirdropsTool(kit),
				getTokenAllowancesTool(kit),
			}
		},
	}
}

type tokenQueryParams struct {
	TokenID          string `json:"token_id,omitempty"`
	AccountID        string `json:"account_id,omitempty"`
	SpenderAccountID string `json:"spender_account_id,omitempty"`
}

func getTokenInfoTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetTokenInfo,
		Name:   "Get Token Info",
		Description: agentkit.DescribeContext(kit) +
			" Looks up a token's details on the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id": agentkit.String("Token to look up, in shard.realm.num format."),
		}, "token_id"),
		Execute: executeGetTokenInfo,
	}
}

func executeGetTokenInfo(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params tokenQueryParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	info, err := mirrorClient.GetTokenInfo(ctx, tokenID.String())
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch token %s: %v", tokenID, err)
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Token %s (%s, %q) has total supply %s with %s decimals.",
			info.TokenID, info.Symbol, info.Name, info.TotalSupply, info.Decimals,
		),
		Extra: map[string]any{"token": info},
	}
}

func getAccountNftsTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetAccountNfts,
		Name:   "Get Account NFTs",
		Description: agentkit.DescribeContext(kit) +
			" Lists the NFTs an account holds, optionally restricted to one collection. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id": agentkit.String(agentkit.DescribeOptionalAccount("queried", kit)),
			"token_id":   agentkit.String("Optional collection to restrict the result to."),
		}),
		Execute: executeGetAccountNfts,
	}
}

func executeGetAccountNfts(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params tokenQueryParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	accountID, err := agentkit.ResolveAccount(params.AccountID, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	nfts, err := mirrorClient.GetAccountNfts(ctx, accountID, params.TokenID)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch NFTs of %s: %v", accountID, err)
	}

	if len(nfts) == 0 {
		return agentkit.ToolResponse{
			HumanMessage: fmt.Sprintf("Account %s holds no matching NFTs.", accountID),
		}
	}

	lines := make([]string, 0, len(nfts))
	for _, nft := range nfts {
		lines = append(lines, fmt.Sprintf("%s serial %d", nft.TokenID, nft.SerialNumber))
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf("Account %s holds:\n%s", accountID, strings.Join(lines, "\n")),
		Extra:        map[string]any{"nfts": nfts},
	}
}

func getPendingAirdropsTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetPendingAirdrops,
		Name:   "Get Pending Airdrops",
		Description: agentkit.DescribeContext(kit) +
			" Lists airdrops sent to an account that it has not claimed yet. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id": agentkit.String(agentkit.DescribeOptionalAccount("receiving", kit)),
		}),
		Execute: executeAirdropsQuery(true),
	}
}

func getOutstandingAirdropsTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetOutstandingAirdrops,
		Name:   "Get Outstanding Airdrops",
		Description: agentkit.DescribeContext(kit) +
			" Lists airdrops an account has sent that remain unclaimed. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id": agentkit.String(agentkit.DescribeOptionalAccount("sending", kit)),
		}),
		Execute: executeAirdropsQuery(false),
	}
}

func executeAirdropsQuery(pending bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params tokenQueryParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid query parameters: %v", err)
		}

		accountID, err := agentkit.ResolveAccount(params.AccountID, kit, client)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		mirrorClient, err := kit.MirrorClient()
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		var airdrops []mirror.TokenAirdrop
		if pending {
			airdrops, err = mirrorClient.GetPendingAirdrops(ctx, accountID)
		} else {
			airdrops, err = mirrorClient.GetOutstandingAirdrops(ctx, accountID)
		}
		if err != nil {
			return agentkit.ErrorResponse("failed to fetch airdrops of %s: %v", accountID, err)
		}

		kind := "pending"
		if !pending {
			kind = "outstanding"
		}
		if len(airdrops) == 0 {
			return agentkit.ToolResponse{
				HumanMessage: fmt.Sprintf("Account %s has no %s airdrops.", accountID, kind),
			}
		}

		lines := make([]string, 0, len(airdrops))
		for _, airdrop := range airdrops {
			if airdrop.SerialNumber != nil {
				lines = append(lines, fmt.Sprintf(
					"%s serial %d from %s to %s",
					airdrop.TokenID, *airdrop.SerialNumber, airdrop.SenderID, airdrop.ReceiverID,
				))
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"%d base units of %s from %s to %s",
				airdrop.Amount, airdrop.TokenID, airdrop.SenderID, airdrop.ReceiverID,
			))
		}

		return agentkit.ToolResponse{
			HumanMessage: fmt.Sprintf(
				"Account %s has %d %s airdrop(s):\n%s",
				accountID, len(airdrops), kind, strings.Join(lines, "\n"),
			),
			Extra: map[string]any{"airdrops": airdrops},
		}
	}
}

func getTokenAllowancesTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetTokenAllowances,
		Name:   "Get Token Allowances",
		Description: agentkit.DescribeContext(kit) +
			" Lists the fungible token allowances an account has granted. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id":         agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
			"spender_account_id": agentkit.String("Optional spender to restrict the result to."),
		}),
		Execute: executeGetTokenAllowances,
	}
}

func executeGetTokenAllowances(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params tokenQueryParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	accountID, err := agentkit.ResolveAccount(params.AccountID, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	allowances, err := mirrorClient.GetTokenAllowances(ctx, accountID, params.SpenderAccountID)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch allowances of %s: %v", accountID, err)
	}

	if len(allowances) == 0 {
		return agentkit.ToolResponse{
			HumanMessage: fmt.Sprintf("Account %s has granted no matching allowances.", accountID),
		}
	}

	lines := make([]string, 0, len(allowances))
	for _, allowance := range allowances {
		lines = append(lines, fmt.Sprintf(
			"%d base units of %s to %s", allowance.Amount, allowance.TokenID, allowance.Spender,
		))
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Account %s has granted:\n%s", accountID, strings.Join(lines, "\n"),
		),
		Extra: map[string]any{"allowances": allowances},
	}
}
