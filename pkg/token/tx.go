package token

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildCreateFungibleTokenTx builds a fungible token create. A zero max
// supply produces an infinite-supply token.
func BuildCreateFungibleTokenTx(params CreateFungibleTokenTxParams) *hedera.TokenCreateTransaction {
	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(params.Name).
		SetTokenSymbol(params.Symbol).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetDecimals(uint(params.Decimals)).
		SetInitialSupply(params.InitialSupply).
		SetTreasuryAccountID(params.Treasury).
		SetSupplyKey(params.SupplyKey)

	if params.MaxSupply > 0 {
		transaction.SetSupplyType(hedera.TokenSupplyTypeFinite).SetMaxSupply(params.MaxSupply)
	} else {
		transaction.SetSupplyType(hedera.TokenSupplyTypeInfinite)
	}
	if params.AdminKey != nil {
		transaction.SetAdminKey(*params.AdminKey)
	}
	if params.Memo != "" {
		transaction.SetTokenMemo(params.Memo)
	}

	return transaction
}

// BuildCreateNftTx builds a non-fungible collection create. NFT collections
// are always finite and carry a supply key.
func BuildCreateNftTx(params CreateNftTxParams) *hedera.TokenCreateTransaction {
	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(params.Name).
		SetTokenSymbol(params.Symbol).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetSupplyType(hedera.TokenSupplyTypeFinite).
		SetMaxSupply(params.MaxSupply).
		SetTreasuryAccountID(params.Treasury).
		SetSupplyKey(params.SupplyKey)

	if params.AdminKey != nil {
		transaction.SetAdminKey(*params.AdminKey)
	}
	if params.Memo != "" {
		transaction.SetTokenMemo(params.Memo)
	}

	return transaction
}

// BuildMintFungibleTokenTx builds a fungible mint of the given base units.
func BuildMintFungibleTokenTx(tokenID hedera.TokenID, amount uint64) *hedera.TokenMintTransaction {
	return hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetAmount(amount)
}

// BuildMintNftTx builds an NFT mint with one serial per metadata entry.
func BuildMintNftTx(tokenID hedera.TokenID, metadatas [][]byte) *hedera.TokenMintTransaction {
	return hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetMetadatas(metadatas)
}

// BuildAssociateTokenTx builds and returns the configured token associate
// transaction.
func BuildAssociateTokenTx(accountID hedera.AccountID, tokenIDs []hedera.TokenID) *hedera.TokenAssociateTransaction {
	return hedera.NewTokenAssociateTransaction().
		SetAccountID(accountID).
		SetTokenIDs(tokenIDs...)
}

// BuildDissociateTokenTx builds and returns the configured token dissociate
// transaction.
func BuildDissociateTokenTx(accountID hedera.AccountID, tokenIDs []hedera.TokenID) *hedera.TokenDissociateTransaction {
	return hedera.NewTokenDissociateTransaction().
		SetAccountID(accountID).
		SetTokenIDs(tokenIDs...)
}

// BuildUpdateTokenTx builds a token update that only touches the fields
// present in the params.
func BuildUpdateTokenTx(tokenID hedera.TokenID, params UpdateTokenParams) *hedera.TokenUpdateTransaction {
	transaction := hedera.NewTokenUpdateTransaction().SetTokenID(tokenID)

	if params.TokenName != nil {
		transaction.SetTokenName(*params.TokenName)
	}
	if params.TokenSymbol != nil {
		transaction.SetTokenSymbol(*params.TokenSymbol)
	}
	if params.TokenMemo != nil {
		transaction.SetTokenMemo(*params.TokenMemo)
	}

	return transaction
}

// BuildDeleteTokenTx builds and returns the configured token delete
// transaction.
func BuildDeleteTokenTx(tokenID hedera.TokenID) *hedera.TokenDeleteTransaction {
	return hedera.NewTokenDeleteTransaction().SetTokenID(tokenID)
}

// BuildTransferTokenTx builds a balanced fungible transfer: every credit is
// debited from the source account.
func BuildTransferTokenTx(params TransferTokenTxParams) *hedera.TransferTransaction {
	transaction := hedera.NewTransferTransaction()

	total := int64(0)
	for _, transfer := range params.Transfers {
		transaction.AddTokenTransfer(params.TokenID, transfer.AccountID, transfer.Amount)
		total += transfer.Amount
	}

	if params.Approved {
		transaction.AddApprovedTokenTransfer(params.TokenID, params.Source, -total, true)
	} else {
		transaction.AddTokenTransfer(params.TokenID, params.Source, -total)
	}

	if params.Memo != "" {
		transaction.SetTransactionMemo(params.Memo)
	}

	return transaction
}

// BuildTransferNftTx builds a single-serial NFT transfer.
func BuildTransferNftTx(params TransferNftTxParams) *hedera.TransferTransaction {
	transaction := hedera.NewTransferTransaction()

	if params.Approved {
		transaction.AddApprovedNftTransfer(params.NftID, params.Sender, params.Receiver, true)
	} else {
		transaction.AddNftTransfer(params.NftID, params.Sender, params.Receiver)
	}

	if params.Memo != "" {
		transaction.SetTransactionMemo(params.Memo)
	}

	return transaction
}

// BuildAirdropTokenTx builds a fungible airdrop. Unlike a transfer, the
// network holds the credit for unassociated receivers until they claim it.
func BuildAirdropTokenTx(params TransferTokenTxParams) *hedera.TokenAirdropTransaction {
	transaction := hedera.NewTokenAirdropTransaction()

	total := int64(0)
	for _, transfer := range params.Transfers {
		transaction.AddTokenTransfer(params.TokenID, transfer.AccountID, transfer.Amount)
		total += transfer.Amount
	}
	transaction.AddTokenTransfer(params.TokenID, params.Source, -total)

	if params.Memo != "" {
		transaction.SetTransactionMemo(params.Memo)
	}

	return transaction
}

// BuildApproveTokenAllowanceTx builds a fungible allowance approval. A zero
// amount revokes the allowance.
func BuildApproveTokenAllowanceTx(params TokenAllowanceTxParams) *hedera.AccountAllowanceApproveTransaction {
	transaction := hedera.NewAccountAllowanceApproveTransaction().
		ApproveTokenAllowance(params.TokenID, params.Owner, params.Spender, params.Amount)

	if params.Memo != "" {
		transaction.SetTransactionMemo(params.Memo)
	}

	return transaction
}

// BuildApproveNftAllowanceTx builds an NFT allowance approval covering the
// listed serials, or the whole collection when AllSerials is set.
func BuildApproveNftAllowanceTx(params NftAllowanceTxParams) *hedera.AccountAllowanceApproveTransaction {
	transaction := hedera.NewAccountAllowanceApproveTransaction()

	if params.AllSerials {
		transaction.ApproveTokenNftAllowanceAllSerials(params.TokenID, params.Owner, params.Spender)
		return transaction
	}

	for _, serial := range params.Serials {
		nftID := hedera.NftID{TokenID: params.TokenID, SerialNumber: serial}
		transaction.ApproveTokenNftAllowance(nftID, params.Owner, params.Spender)
	}

	return transaction
}

// BuildDeleteNftAllowanceTx builds a removal of all spender approvals on the
// listed serials.
func BuildDeleteNftAllowanceTx(params NftAllowanceTxParams) *hedera.AccountAllowanceDeleteTransaction {
	transaction := hedera.NewAccountAllowanceDeleteTransaction()

	owner := params.Owner
	for _, serial := range params.Serials {
		nftID := hedera.NftID{TokenID: params.TokenID, SerialNumber: serial}
		transaction.DeleteAllTokenNftAllowances(nftID, &owner)
	}

	return transaction
}
