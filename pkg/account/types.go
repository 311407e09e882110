package account

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// HbarTransfer is one credit in a transfer request, in display-unit hbar.
type HbarTransfer struct {
	AccountID string  `json:"account_id"`
	Amount    float64 `json:"amount"`
}

// TransferHbarParams are the raw parameters of the transfer_hbar and
// transfer_hbar_with_allowance tools.
type TransferHbarParams struct {
	Transfers       []HbarTransfer `json:"transfers"`
	SourceAccountID string         `json:"source_account_id,omitempty"`
	TransactionMemo string         `json:"transaction_memo,omitempty"`
	agentkit.SchedulingParams
}

// CreateAccountParams are the raw parameters of the create_account tool.
type CreateAccountParams struct {
	PublicKey                     agentkit.KeyInput `json:"public_key,omitempty"`
	InitialBalance                float64           `json:"initial_balance,omitempty"`
	AccountMemo                   string            `json:"account_memo,omitempty"`
	MaxAutomaticTokenAssociations int32             `json:"max_automatic_token_associations,omitempty"`
}

// UpdateAccountParams are the raw parameters of the update_account tool.
// Pointer fields distinguish "leave unchanged" from explicit zero values.
type UpdateAccountParams struct {
	AccountID                     string  `json:"account_id,omitempty"`
	AccountMemo                   *string `json:"account_memo,omitempty"`
	MaxAutomaticTokenAssociations *int32  `json:"max_automatic_token_associations,omitempty"`
	StakedAccountID               *string `json:"staked_account_id,omitempty"`
	DeclineStakingReward          *bool   `json:"decline_staking_reward,omitempty"`
}

// DeleteAccountParams are the raw parameters of the delete_account tool.
type DeleteAccountParams struct {
	AccountID         string `json:"account_id"`
	TransferAccountID string `json:"transfer_account_id,omitempty"`
}

// HbarAllowanceParams are the raw parameters of the hbar allowance tools.
type HbarAllowanceParams struct {
	SpenderAccountID string  `json:"spender_account_id"`
	Amount           float64 `json:"amount,omitempty"`
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
	TransactionMemo  string  `json:"transaction_memo,omitempty"`
}

// ScheduleParams are the raw parameters of the schedule sign/delete tools.
type ScheduleParams struct {
	ScheduleID string `json:"schedule_id"`
}

// ResolvedHbarTransfer is a credit with a parsed account and a tinybar
// amount.
type ResolvedHbarTransfer struct {
	AccountID hedera.AccountID
	Tinybars  int64
}

// TransferHbarTxParams is the normalized input of BuildTransferHbarTx. The
// source account is debited the sum of all credits.
type TransferHbarTxParams struct {
	Transfers []ResolvedHbarTransfer
	Source    hedera.AccountID
	Memo      string

	// Approved marks the debit as spending an hbar allowance granted by
	// Source.
	Approved bool
}

// CreateAccountTxParams is the normalized input of BuildCreateAccountTx.
type CreateAccountTxParams struct {
	Key                           hedera.PublicKey
	InitialBalanceTinybars        int64
	Memo                          string
	MaxAutomaticTokenAssociations int32
}

// UpdateAccountTxParams is the normalized input of BuildUpdateAccountTx.
type UpdateAccountTxParams struct {
	AccountID                     hedera.AccountID
	Memo                          *string
	MaxAutomaticTokenAssociations *int32
	StakedAccountID               *hedera.AccountID
	DeclineStakingReward          *bool
}

// HbarAllowanceTxParams is the normalized input of BuildApproveHbarAllowanceTx.
type HbarAllowanceTxParams struct {
	Owner    hedera.AccountID
	Spender  hedera.AccountID
	Tinybars int64
	Memo     string
}
