package token

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// TokenRecipient is one credit of a fungible token transfer or airdrop.
type TokenRecipient struct {
	AccountID string  `json:"account_id"`
	Amount    float64 `json:"amount"`
}

// CreateFungibleTokenParams are the raw parameters of create_fungible_token.
type CreateFungibleTokenParams struct {
	TokenName         string            `json:"token_name"`
	TokenSymbol       string            `json:"token_symbol"`
	InitialSupply     float64           `json:"initial_supply,omitempty"`
	Decimals          uint32            `json:"decimals,omitempty"`
	MaxSupply         *float64          `json:"max_supply,omitempty"`
	TreasuryAccountID string            `json:"treasury_account_id,omitempty"`
	SupplyKey         agentkit.KeyInput `json:"supply_key,omitempty"`
	AdminKey          agentkit.KeyInput `json:"admin_key,omitempty"`
	TokenMemo         string            `json:"token_memo,omitempty"`
}

// CreateNftParams are the raw parameters of create_non_fungible_token.
type CreateNftParams struct {
	TokenName         string            `json:"token_name"`
	TokenSymbol       string            `json:"token_symbol"`
	MaxSupply         *int64            `json:"max_supply,omitempty"`
	TreasuryAccountID string            `json:"treasury_account_id,omitempty"`
	AdminKey          agentkit.KeyInput `json:"admin_key,omitempty"`
	TokenMemo         string            `json:"token_memo,omitempty"`
}

// MintFungibleTokenParams are the raw parameters of mint_fungible_token.
type MintFungibleTokenParams struct {
	TokenID         string  `json:"token_id"`
	Amount          float64 `json:"amount"`
	TransactionMemo string  `json:"transaction_memo,omitempty"`
}

// MintNftParams are the raw parameters of mint_non_fungible_token.
type MintNftParams struct {
	TokenID string   `json:"token_id"`
	URIs    []string `json:"uris"`
}

// AssociationParams are the raw parameters of associate_token and
// dissociate_token.
type AssociationParams struct {
	TokenIDs  []string `json:"token_ids"`
	AccountID string   `json:"account_id,omitempty"`
}

// UpdateTokenParams are the raw parameters of update_token. Pointer fields
// distinguish "leave unchanged" from an explicit empty value.
type UpdateTokenParams struct {
	TokenID     string  `json:"token_id"`
	TokenName   *string `json:"token_name,omitempty"`
	TokenSymbol *string `json:"token_symbol,omitempty"`
	TokenMemo   *string `json:"token_memo,omitempty"`
}

// DeleteTokenParams are the raw parameters of delete_token.
type DeleteTokenParams struct {
	TokenID string `json:"token_id"`
}

// TransferTokenParams are the raw parameters of the fungible transfer and
// airdrop tools.
type TransferTokenParams struct {
	agentkit.SchedulingParams

	TokenID         string           `json:"token_id"`
	Transfers       []TokenRecipient `json:"transfers"`
	SourceAccountID string           `json:"source_account_id,omitempty"`
	TransactionMemo string           `json:"transaction_memo,omitempty"`
}

// TransferNftParams are the raw parameters of the NFT transfer tools.
type TransferNftParams struct {
	agentkit.SchedulingParams

	TokenID           string `json:"token_id"`
	SerialNumber      int64  `json:"serial_number"`
	ReceiverAccountID string `json:"receiver_account_id"`
	SenderAccountID   string `json:"sender_account_id,omitempty"`
	TransactionMemo   string `json:"transaction_memo,omitempty"`
}

// TokenAllowanceParams are the raw parameters of the fungible allowance tools.
type TokenAllowanceParams struct {
	TokenID          string  `json:"token_id"`
	SpenderAccountID string  `json:"spender_account_id"`
	Amount           float64 `json:"amount,omitempty"`
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
	TransactionMemo  string  `json:"transaction_memo,omitempty"`
}

// NftAllowanceParams are the raw parameters of the NFT allowance tools.
type NftAllowanceParams struct {
	TokenID          string  `json:"token_id"`
	SpenderAccountID string  `json:"spender_account_id"`
	SerialNumbers    []int64 `json:"serial_numbers,omitempty"`
	AllSerials       bool    `json:"all_serials,omitempty"`
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
}

// CreateFungibleTokenTxParams is the normalized form of
// CreateFungibleTokenParams.
type CreateFungibleTokenTxParams struct {
	Name          string
	Symbol        string
	Decimals      uint32
	InitialSupply uint64
	// MaxSupply of zero means infinite supply.
	MaxSupply int64
	Treasury  hedera.AccountID
	SupplyKey hedera.PublicKey
	AdminKey  *hedera.PublicKey
	Memo      string
}

// CreateNftTxParams is the normalized form of CreateNftParams.
type CreateNftTxParams struct {
	Name      string
	Symbol    string
	MaxSupply int64
	Treasury  hedera.AccountID
	SupplyKey hedera.PublicKey
	AdminKey  *hedera.PublicKey
	Memo      string
}

// ResolvedTokenTransfer is one credit in base units.
type ResolvedTokenTransfer struct {
	AccountID hedera.AccountID
	Amount    int64
}

// TransferTokenTxParams is the normalized form of TransferTokenParams.
type TransferTokenTxParams struct {
	TokenID   hedera.TokenID
	Transfers []ResolvedTokenTransfer
	Source    hedera.AccountID
	Memo      string
	Approved  bool
}

// TransferNftTxParams is the normalized form of TransferNftParams.
type TransferNftTxParams struct {
	NftID    hedera.NftID
	Sender   hedera.AccountID
	Receiver hedera.AccountID
	Memo     string
	Approved bool
}

// TokenAllowanceTxParams is the normalized form of TokenAllowanceParams.
type TokenAllowanceTxParams struct {
	TokenID hedera.TokenID
	Owner   hedera.AccountID
	Spender hedera.AccountID
	Amount  int64
	Memo    string
}

// NftAllowanceTxParams is the normalized form of NftAllowanceParams.
type NftAllowanceTxParams struct {
	TokenID    hedera.TokenID
	Serials    []int64
	AllSerials bool
	Owner      hedera.AccountID
	Spender    hedera.AccountID
}
