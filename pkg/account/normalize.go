package account

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

type transferHbarNormalized struct {
	Tx       TransferHbarTxParams
	Schedule *agentkit.ScheduleOptions
}

func normalizeTransferHbar(
	ctx context.Context,
	params TransferHbarParams,
	kit *agentkit.Context,
	client *hedera.Client,
	approved bool,
) (*transferHbarNormalized, error) {
	if len(params.Transfers) == 0 {
		return nil, fmt.Errorf("at least one transfer is required")
	}

	transfers := make([]ResolvedHbarTransfer, 0, len(params.Transfers))
	for _, transfer := range params.Transfers {
		if transfer.Amount <= 0 {
			return nil, fmt.Errorf("transfer amount must be positive, got %v", transfer.Amount)
		}
		accountID, err := hedera.AccountIDFromString(strings.TrimSpace(transfer.AccountID))
		if err != nil {
			return nil, fmt.Errorf("invalid recipient account ID %q: %w", transfer.AccountID, err)
		}
		tinybars, err := shared.HbarToTinybars(transfer.Amount)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, ResolvedHbarTransfer{AccountID: accountID, Tinybars: tinybars})
	}

	source, err := agentkit.ResolveAccountID(params.SourceAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	schedule, err := params.SchedulingParams.Normalize(ctx, kit, client)
	if err != nil {
		return nil, err
	}

	return &transferHbarNormalized{
		Tx: TransferHbarTxParams{
			Transfers: transfers,
			Source:    source,
			Memo:      params.TransactionMemo,
			Approved:  approved,
		},
		Schedule: schedule,
	}, nil
}

func normalizeCreateAccount(
	ctx context.Context,
	params CreateAccountParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*CreateAccountTxParams, error) {
	if params.InitialBalance < 0 {
		return nil, fmt.Errorf("initial balance must not be negative, got %v", params.InitialBalance)
	}

	key, err := params.PublicKey.Resolve(func() (hedera.PublicKey, error) {
		return agentkit.DefaultPublicKey(ctx, kit, client)
	})
	if err != nil {
		return nil, err
	}
	if key == nil {
		// No key provided; the new account gets the connected account's key.
		resolved, keyErr := agentkit.DefaultPublicKey(ctx, kit, client)
		if keyErr != nil {
			return nil, keyErr
		}
		key = &resolved
	}

	tinybars, err := shared.HbarToTinybars(params.InitialBalance)
	if err != nil {
		return nil, err
	}

	return &CreateAccountTxParams{
		Key:                           *key,
		InitialBalanceTinybars:        tinybars,
		Memo:                          params.AccountMemo,
		MaxAutomaticTokenAssociations: params.MaxAutomaticTokenAssociations,
	}, nil
}

func normalizeUpdateAccount(
	params UpdateAccountParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*UpdateAccountTxParams, error) {
	if params.AccountMemo == nil &&
		params.MaxAutomaticTokenAssociations == nil &&
		params.StakedAccountID == nil &&
		params.DeclineStakingReward == nil {
		return nil, fmt.Errorf("at least one field to update is required")
	}

	accountID, err := agentkit.ResolveAccountID(params.AccountID, kit, client)
	if err != nil {
		return nil, err
	}

	normalized := &UpdateAccountTxParams{
		AccountID:                     accountID,
		Memo:                          params.AccountMemo,
		MaxAutomaticTokenAssociations: params.MaxAutomaticTokenAssociations,
		DeclineStakingReward:          params.DeclineStakingReward,
	}

	if params.StakedAccountID != nil {
		stakedID, parseErr := hedera.AccountIDFromString(strings.TrimSpace(*params.StakedAccountID))
		if parseErr != nil {
			return nil, fmt.Errorf("invalid staked account ID %q: %w", *params.StakedAccountID, parseErr)
		}
		normalized.StakedAccountID = &stakedID
	}

	return normalized, nil
}

func normalizeDeleteAccount(
	params DeleteAccountParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (hedera.AccountID, hedera.AccountID, error) {
	if strings.TrimSpace(params.AccountID) == "" {
		return hedera.AccountID{}, hedera.AccountID{}, fmt.Errorf("account ID is required")
	}
	accountID, err := hedera.AccountIDFromString(strings.TrimSpace(params.AccountID))
	if err != nil {
		return hedera.AccountID{}, hedera.AccountID{}, fmt.Errorf(
			"invalid account ID %q: %w", params.AccountID, err,
		)
	}

	transferID, err := agentkit.ResolveAccountID(params.TransferAccountID, kit, client)
	if err != nil {
		return hedera.AccountID{}, hedera.AccountID{}, err
	}

	return accountID, transferID, nil
}

func normalizeHbarAllowance(
	params HbarAllowanceParams,
	kit *agentkit.Context,
	client *hedera.Client,
	requirePositive bool,
) (*HbarAllowanceTxParams, error) {
	if strings.TrimSpace(params.SpenderAccountID) == "" {
		return nil, fmt.Errorf("spender account ID is required")
	}
	spender, err := hedera.AccountIDFromString(strings.TrimSpace(params.SpenderAccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid spender account ID %q: %w", params.SpenderAccountID, err)
	}

	owner, err := agentkit.ResolveAccountID(params.OwnerAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	if requirePositive && params.Amount <= 0 {
		return nil, fmt.Errorf("allowance amount must be positive, got %v", params.Amount)
	}
	tinybars, err := shared.HbarToTinybars(params.Amount)
	if err != nil {
		return nil, err
	}

	return &HbarAllowanceTxParams{
		Owner:    owner,
		Spender:  spender,
		Tinybars: tinybars,
		Memo:     params.TransactionMemo,
	}, nil
}

func parseScheduleID(raw string) (hedera.ScheduleID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.ScheduleID{}, fmt.Errorf("schedule ID is required")
	}
	scheduleID, err := hedera.ScheduleIDFromString(trimmed)
	if err != nil {
		return hedera.ScheduleID{}, fmt.Errorf("invalid schedule ID %q: %w", trimmed, err)
	}
	return scheduleID, nil
}
