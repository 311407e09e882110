package account

import (
	"context"
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// Tool method identifiers.
const (
	MethodTransferHbar              = "transfer_hbar"
	MethodTransferHbarWithAllowance = "transfer_hbar_with_allowance"
	MethodCreateAccount             = "create_account"
	MethodUpdateAccount             = "update_account"
	MethodDeleteAccount             = "delete_account"
	MethodApproveHbarAllowance      = "approve_hbar_allowance"
	MethodDeleteHbarAllowance       = "delete_hbar_allowance"
	MethodSignSchedule              = "sign_schedule_transaction"
	MethodDeleteSchedule            = "delete_schedule_transaction"
)

// Plugin returns the core account plugin.
func Plugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-account",
		Version:     "1.0.0",
		Description: "Hbar transfers, account lifecycle, allowances, and scheduled transaction management.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				transferHbarTool(kit),
				transferHbarWithAllowanceTool(kit),
				createAccountTool(kit),
				updateAccountTool(kit),
				deleteAccountTool(kit),
				approveHbarAllowanceTool(kit),
				deleteHbarAllowanceTool(kit),
				signScheduleTool(kit),
				deleteScheduleTool(kit),
			}
		},
	}
}

func transferSchema(kit *agentkit.Context) *agentkit.Schema {
	properties := map[string]*agentkit.Schema{
		"transfers": agentkit.Array(
			"Credits to apply. Each entry names a recipient account and a positive hbar amount.",
			agentkit.Object(map[string]*agentkit.Schema{
				"account_id": agentkit.String("Recipient account in shard.realm.num format."),
				"amount":     agentkit.Number("Amount of hbar to credit; must be positive."),
			}, "account_id", "amount"),
		),
		"source_account_id": agentkit.String(agentkit.DescribeOptionalAccount("source", kit)),
		"transaction_memo":  agentkit.String("Optional memo attached to the transaction."),
	}
	for name, property := range agentkit.SchedulingSchema() {
		properties[name] = property
	}
	return agentkit.Object(properties, "transfers")
}

func transferHbarTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferHbar,
		Name:   "Transfer HBAR",
		Description: agentkit.DescribeContext(kit) +
			" Transfers hbar from the source account to one or more recipients. " +
			agentkit.ParameterGuidance(),
		Parameters: transferSchema(kit),
		Execute:    executeTransferHbar(false),
	}
}

func transferHbarWithAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferHbarWithAllowance,
		Name:   "Transfer HBAR with Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Transfers hbar spending an allowance the source account granted to the operator. " +
			agentkit.ParameterGuidance(),
		Parameters: transferSchema(kit),
		Execute:    executeTransferHbar(true),
	}
}

func executeTransferHbar(approved bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params TransferHbarParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid transfer parameters: %v", err)
		}

		normalized, err := normalizeTransferHbar(ctx, params, kit, client, approved)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		transaction := BuildTransferHbarTx(normalized.Tx)

		var prepared *agentkit.PreparedTransaction
		if normalized.Schedule != nil {
			scheduled, wrapErr := agentkit.WrapInSchedule(transaction, normalized.Schedule)
			if wrapErr != nil {
				return agentkit.ErrorResponse("%v", wrapErr)
			}
			prepared = agentkit.Prepare(scheduled)
		} else {
			prepared = agentkit.Prepare(transaction)
		}

		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if raw.ScheduleID != "" {
				return fmt.Sprintf("Scheduled hbar transfer created with schedule ID %s.", raw.ScheduleID)
			}
			return fmt.Sprintf("Hbar transfer %s completed with status %s.", raw.TransactionID, raw.Status)
		})
	}
}

func createAccountTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodCreateAccount,
		Name:   "Create Account",
		Description: agentkit.DescribeContext(kit) +
			" Creates a new Hedera account. When no public key is given the connected account's key is used. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"public_key": agentkit.String(
				"Public key for the new account, or true to use the connected account's key.",
			),
			"initial_balance": agentkit.Number("Initial balance in hbar; defaults to zero."),
			"account_memo":    agentkit.String("Optional memo stored on the account."),
			"max_automatic_token_associations": agentkit.Integer(
				"Number of automatic token association slots; -1 for unlimited.",
			),
		}),
		Execute: executeCreateAccount,
	}
}

func executeCreateAccount(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params CreateAccountParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid create_account parameters: %v", err)
	}

	normalized, err := normalizeCreateAccount(ctx, params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildCreateAccountTx(*normalized))
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		if raw.AccountID != "" {
			return fmt.Sprintf("Account %s created.", raw.AccountID)
		}
		return fmt.Sprintf("Account create transaction %s completed with status %s.", raw.TransactionID, raw.Status)
	})
}

func updateAccountTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodUpdateAccount,
		Name:   "Update Account",
		Description: agentkit.DescribeContext(kit) +
			" Updates account properties; only the provided fields change. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id":   agentkit.String(agentkit.DescribeOptionalAccount("target", kit)),
			"account_memo": agentkit.String("New account memo."),
			"max_automatic_token_associations": agentkit.Integer(
				"New automatic token association limit; -1 for unlimited.",
			),
			"staked_account_id":      agentkit.String("Account to stake to, in shard.realm.num format."),
			"decline_staking_reward": agentkit.Boolean("Whether the account declines staking rewards."),
		}),
		Execute: executeUpdateAccount,
	}
}

func executeUpdateAccount(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params UpdateAccountParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid update_account parameters: %v", err)
	}

	normalized, err := normalizeUpdateAccount(params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildUpdateAccountTx(*normalized))
	accountID := normalized.AccountID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Account %s updated with status %s.", accountID, raw.Status)
	})
}

func deleteAccountTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteAccount,
		Name:   "Delete Account",
		Description: agentkit.DescribeContext(kit) +
			" Deletes an account and sends its remaining balance to the transfer account. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"account_id":          agentkit.String("Account to delete, in shard.realm.num format."),
			"transfer_account_id": agentkit.String(agentkit.DescribeOptionalAccount("balance recipient", kit)),
		}, "account_id"),
		Execute: executeDeleteAccount,
	}
}

func executeDeleteAccount(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params DeleteAccountParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid delete_account parameters: %v", err)
	}

	accountID, transferID, err := normalizeDeleteAccount(params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildDeleteAccountTx(accountID, transferID))
	deleted := accountID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Account %s deleted with status %s.", deleted, raw.Status)
	})
}

func approveHbarAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodApproveHbarAllowance,
		Name:   "Approve HBAR Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Approves an hbar spending allowance for another account. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"spender_account_id": agentkit.String("Account allowed to spend, in shard.realm.num format."),
			"amount":             agentkit.Number("Allowance in hbar; must be positive."),
			"owner_account_id":   agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
			"transaction_memo":   agentkit.String("Optional memo attached to the transaction."),
		}, "spender_account_id", "amount"),
		Execute: executeHbarAllowance(true),
	}
}

func deleteHbarAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteHbarAllowance,
		Name:   "Delete HBAR Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Revokes an hbar spending allowance by setting it to zero. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"spender_account_id": agentkit.String("Account whose allowance is revoked."),
			"owner_account_id":   agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
			"transaction_memo":   agentkit.String("Optional memo attached to the transaction."),
		}, "spender_account_id"),
		Execute: executeHbarAllowance(false),
	}
}

func executeHbarAllowance(approve bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params HbarAllowanceParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid allowance parameters: %v", err)
		}
		if !approve {
			// Revocation is an approval of zero hbar.
			params.Amount = 0
		}

		normalized, err := normalizeHbarAllowance(params, kit, client, approve)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		prepared := agentkit.Prepare(BuildApproveHbarAllowanceTx(*normalized))
		spender := normalized.Spender.String()
		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if approve {
				return fmt.Sprintf("Hbar allowance for %s approved with status %s.", spender, raw.Status)
			}
			return fmt.Sprintf("Hbar allowance for %s revoked with status %s.", spender, raw.Status)
		})
	}
}

func signScheduleTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodSignSchedule,
		Name:   "Sign Scheduled Transaction",
		Description: agentkit.DescribeContext(kit) +
			" Adds the operator's signature to a pending scheduled transaction. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"schedule_id": agentkit.String("Schedule to sign, in shard.realm.num format."),
		}, "schedule_id"),
		Execute: executeSchedule(true),
	}
}

func deleteScheduleTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteSchedule,
		Name:   "Delete Scheduled Transaction",
		Description: agentkit.DescribeContext(kit) +
			" Deletes a pending scheduled transaction; requires its admin key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"schedule_id": agentkit.String("Schedule to delete, in shard.realm.num format."),
		}, "schedule_id"),
		Execute: executeSchedule(false),
	}
}

func executeSchedule(sign bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params ScheduleParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid schedule parameters: %v", err)
		}

		scheduleID, err := parseScheduleID(params.ScheduleID)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		var prepared *agentkit.PreparedTransaction
		if sign {
			prepared = agentkit.Prepare(BuildScheduleSignTx(scheduleID))
		} else {
			prepared = agentkit.Prepare(BuildScheduleDeleteTx(scheduleID))
		}

		schedule := scheduleID.String()
		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if sign {
				return fmt.Sprintf("Schedule %s signed with status %s.", schedule, raw.Status)
			}
			return fmt.Sprintf("Schedule %s deleted with status %s.", schedule, raw.Status)
		})
	}
}
