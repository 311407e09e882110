package account

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

// Query tool method identifiers.
const (
	MethodGetAccount           = "get_account_query"
	MethodGetHbarBalance       = "get_hbar_balance_query"
	MethodGetTokenBalances     = "get_account_token_balances_query"
	MethodGetTransactionRecord = "get_transaction_record_query"
	MethodGetSchedule          = "get_schedule_query"
)

// QueryPlugin returns the account query plugin backed by the mirror node.
func QueryPlugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-account-query",
		Version:     "1.0.0",
		Description: "Mirror-node queries for accounts, balances, and transaction records.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				getAccountTool(kit),
				getHbarBalanceTool(kit),
				getTokenBalancesTool(kit),
				getTransactionRecordTool(kit),
				getScheduleTool(kit),
			}
		},
	}
}

type accountQueryParams struct {
	AccountID string `json:"account_id,omitempty"`
	TokenID   string `json:"token_id,omitempty"`
}

type transactionRecordParams struct {
	TransactionID string `json:"transaction_id"`
	Nonce         *int64 `json:"nonce,omitempty"`
}

func getAccountTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetAccount,
		Name:   "Get Account",
		Description: agentkit.DescribeContext(kit) +
			" Looks up an account's details on the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id": agentkit.String(agentkit.DescribeOptionalAccount("queried", kit)),
		}),
		Execute: executeGetAccount,
	}
}

func executeGetAccount(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params accountQueryParams
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

	accountInfo, err := mirrorClient.GetAccount(ctx, accountID)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch account %s: %v", accountID, err)
	}

	message := fmt.Sprintf("Account %s", accountInfo.Account)
	if accountInfo.Balance != nil {
		message += fmt.Sprintf(" holds %v hbar", shared.TinybarsToHbar(accountInfo.Balance.Balance))
	}
	if accountInfo.Memo != "" {
		message += fmt.Sprintf(" (memo: %s)", accountInfo.Memo)
	}
	message += "."

	return agentkit.ToolResponse{
		HumanMessage: message,
		Extra:        map[string]any{"account": accountInfo},
	}
}

func getHbarBalanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetHbarBalance,
		Name:   "Get HBAR Balance",
		Description: agentkit.DescribeContext(kit) +
			" Returns an account's hbar balance from the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id": agentkit.String(agentkit.DescribeOptionalAccount("queried", kit)),
		}),
		Execute: executeGetHbarBalance,
	}
}

func executeGetHbarBalance(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params accountQueryParams
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

	tinybars, err := mirrorClient.GetAccountHbarBalance(ctx, accountID)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch balance of %s: %v", accountID, err)
	}

	hbar := shared.TinybarsToHbar(tinybars)
	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf("Account %s holds %v hbar.", accountID, hbar),
		Extra: map[string]any{
			"account_id": accountID,
			"hbar":       hbar,
			"tinybars":   tinybars,
		},
	}
}

func getTokenBalancesTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetTokenBalances,
		Name:   "Get Account Token Balances",
		Description: agentkit.DescribeContext(kit) +
			" Lists an account's token balances, optionally restricted to one token. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id": agentkit.String(agentkit.DescribeOptionalAccount("queried", kit)),
			"token_id":   agentkit.String("Optional token to restrict the result to."),
		}),
		Execute: executeGetTokenBalances,
	}
}

func executeGetTokenBalances(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params accountQueryParams
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

	balances, err := mirrorClient.GetAccountTokenBalances(ctx, accountID, params.TokenID)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch token balances of %s: %v", accountID, err)
	}

	if len(balances) == 0 {
		return agentkit.ToolResponse{
			HumanMessage: fmt.Sprintf("Account %s holds no matching tokens.", accountID),
		}
	}

	lines := make([]string, 0, len(balances))
	for _, balance := range balances {
		label := balance.TokenID
		if balance.Symbol != "" {
			label = fmt.Sprintf("%s (%s)", balance.Symbol, balance.TokenID)
		}
		lines = append(lines, fmt.Sprintf("%s: %d base units", label, balance.Balance))
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Account %s token balances:\n%s", accountID, strings.Join(lines, "\n"),
		),
		Extra: map[string]any{"balances": balances},
	}
}

func getTransactionRecordTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetTransactionRecord,
		Name:   "Get Transaction Record",
		Description: agentkit.DescribeContext(kit) +
			" Looks up a transaction by ID on the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"transaction_id": agentkit.String(
				"Transaction ID, in 0.0.x@seconds.nanos or 0.0.x-seconds-nanos form.",
			),
			"nonce": agentkit.Integer("Optional nonce to disambiguate child transactions."),
		}, "transaction_id"),
		Execute: executeGetTransactionRecord,
	}
}

func executeGetTransactionRecord(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params transactionRecordParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	record, err := mirrorClient.GetTransactionRecord(ctx, params.TransactionID, params.Nonce)
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch transaction %s: %v", params.TransactionID, err)
	}
	if record == nil {
		return agentkit.ToolResponse{
			HumanMessage: fmt.Sprintf("Transaction %s was not found.", params.TransactionID),
		}
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Transaction %s (%s) finished with result %s.",
			record.TransactionID, record.Name, record.Result,
		),
		Extra: map[string]any{"transaction": record},
	}
}

type scheduleQueryParams struct {
	ScheduleID string `json:"schedule_id"`
}

func getScheduleTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetSchedule,
		Name:   "Get Scheduled Transaction",
		Description: agentkit.DescribeContext(kit) +
			" Looks up a scheduled transaction's state on the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"schedule_id": agentkit.String("Schedule to look up, in shard.realm.num format."),
		}, "schedule_id"),
		Execute: executeGetSchedule,
	}
}

func executeGetSchedule(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params scheduleQueryParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	scheduleID, err := parseScheduleID(params.ScheduleID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	schedule, err := mirrorClient.GetSchedule(ctx, scheduleID.String())
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch schedule %s: %v", scheduleID, err)
	}

	state := "is waiting for signatures"
	if schedule.Executed != nil {
		state = fmt.Sprintf("executed at %s", *schedule.Executed)
	} else if schedule.Deleted {
		state = "was deleted"
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Schedule %s created by %s %s.", schedule.ScheduleID, schedule.CreatorAccountID, state,
		),
		Extra: map[string]any{"schedule": schedule},
	}
}
