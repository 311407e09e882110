package token

import (
	"context"
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// Tool method identifiers.
const (
	MethodCreateFungibleToken        = "create_fungible_token"
	MethodCreateNonFungibleToken     = "create_non_fungible_token"
	MethodMintFungibleToken          = "mint_fungible_token"
	MethodMintNonFungibleToken       = "mint_non_fungible_token"
	MethodAssociateToken             = "associate_token"
	MethodDissociateToken            = "dissociate_token"
	MethodUpdateToken                = "update_token"
	MethodDeleteToken                = "delete_token"
	MethodAirdropFungibleToken       = "airdrop_fungible_token"
	MethodTransferToken              = "transfer_fungible_token"
	MethodTransferTokenWithAllowance = "transfer_fungible_token_with_allowance"
	MethodTransferNft                = "transfer_non_fungible_token"
	MethodTransferNftWithAllowance   = "transfer_non_fungible_token_with_allowance"
	MethodApproveTokenAllowance      = "approve_token_allowance"
	MethodApproveNftAllowance        = "approve_nft_allowance"
	MethodDeleteTokenAllowance       = "delete_token_allowance"
	MethodDeleteNftAllowance         = "delete_nft_allowance"
)

// Plugin returns the core token plugin.
func Plugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-token",
		Version:     "1.0.0",
		Description: "Token lifecycle, transfers, airdrops, and allowances on the Hedera Token Service.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				createFungibleTokenTool(kit),
				createNftTool(kit),
				mintFungibleTokenTool(kit),
				mintNftTool(kit),
				associateTokenTool(kit),
				dissociateTokenTool(kit),
				updateTokenTool(kit),
				deleteTokenTool(kit),
				airdropTokenTool(kit),
				transferTokenTool(kit),
				transferTokenWithAllowanceTool(kit),
				transferNftTool(kit),
				transferNftWithAllowanceTool(kit),
				approveTokenAllowanceTool(kit),
				approveNftAllowanceTool(kit),
				deleteTokenAllowanceTool(kit),
				deleteNftAllowanceTool(kit),
			}
		},
	}
}

func createFungibleTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodCreateFungibleToken,
		Name:   "Create Fungible Token",
		Description: agentkit.DescribeContext(kit) +
			" Creates a fungible token. The supply key defaults to the connected account's key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_name":     agentkit.String("Name of the token."),
			"token_symbol":   agentkit.String("Symbol of the token."),
			"initial_supply": agentkit.Number("Initial supply in display units; defaults to zero."),
			"decimals":       agentkit.Integer("Number of decimal places; defaults to zero."),
			"max_supply":     agentkit.Number("Optional maximum supply in display units; omit for infinite."),
			"treasury_account_id": agentkit.String(
				agentkit.DescribeOptionalAccount("treasury", kit),
			),
			"supply_key": agentkit.String(
				"Supply key, or true to use the connected account's key; that is also the default.",
			),
			"admin_key": agentkit.String(
				"Optional admin key, or true to use the connected account's key. Omit for an immutable token.",
			),
			"token_memo": agentkit.String("Optional memo stored on the token."),
		}, "token_name", "token_symbol"),
		Execute: executeCreateFungibleToken,
	}
}

func executeCreateFungibleToken(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params CreateFungibleTokenParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid create_fungible_token parameters: %v", err)
	}

	normalized, err := normalizeCreateFungibleToken(ctx, params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildCreateFungibleTokenTx(*normalized))
	symbol := normalized.Symbol
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		if raw.TokenID != "" {
			return fmt.Sprintf("Token %s (%s) created.", raw.TokenID, symbol)
		}
		return fmt.Sprintf("Token create transaction %s completed with status %s.", raw.TransactionID, raw.Status)
	})
}

func createNftTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodCreateNonFungibleToken,
		Name:   "Create Non-Fungible Token",
		Description: agentkit.DescribeContext(kit) +
			" Creates an NFT collection with the connected account's key as supply key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_name":   agentkit.String("Name of the collection."),
			"token_symbol": agentkit.String("Symbol of the collection."),
			"max_supply":   agentkit.Integer("Maximum number of serials; defaults to 100."),
			"treasury_account_id": agentkit.String(
				agentkit.DescribeOptionalAccount("treasury", kit),
			),
			"admin_key": agentkit.String(
				"Optional admin key, or true to use the connected account's key. Omit for an immutable collection.",
			),
			"token_memo": agentkit.String("Optional memo stored on the token."),
		}, "token_name", "token_symbol"),
		Execute: executeCreateNft,
	}
}

func executeCreateNft(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params CreateNftParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid create_non_fungible_token parameters: %v", err)
	}

	normalized, err := normalizeCreateNft(ctx, params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildCreateNftTx(*normalized))
	symbol := normalized.Symbol
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		if raw.TokenID != "" {
			return fmt.Sprintf("NFT collection %s (%s) created.", raw.TokenID, symbol)
		}
		return fmt.Sprintf("Token create transaction %s completed with status %s.", raw.TransactionID, raw.Status)
	})
}

func mintFungibleTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodMintFungibleToken,
		Name:   "Mint Fungible Token",
		Description: agentkit.DescribeContext(kit) +
			" Mints additional supply of a fungible token to its treasury. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id": agentkit.String("Token to mint, in shard.realm.num format."),
			"amount":   agentkit.Number("Amount to mint in display units; must be positive."),
		}, "token_id", "amount"),
		Execute: executeMintFungibleToken,
	}
}

func executeMintFungibleToken(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params MintFungibleTokenParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid mint_fungible_token parameters: %v", err)
	}

	tokenID, amount, err := normalizeMintFungible(ctx, params, kit)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildMintFungibleTokenTx(tokenID, amount))
	token := tokenID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Minted %v of token %s with status %s.", params.Amount, token, raw.Status)
	})
}

func mintNftTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodMintNonFungibleToken,
		Name:   "Mint NFT",
		Description: agentkit.DescribeContext(kit) +
			" Mints new serials of an NFT collection, one per metadata URI. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id": agentkit.String("Collection to mint into, in shard.realm.num format."),
			"uris": agentkit.Array(
				"Metadata URIs, one per serial; each at most 100 bytes.",
				agentkit.String("Metadata URI for one serial."),
			),
		}, "token_id", "uris"),
		Execute: executeMintNft,
	}
}

func executeMintNft(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params MintNftParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid mint_non_fungible_token parameters: %v", err)
	}

	tokenID, metadatas, err := normalizeMintNft(params)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildMintNftTx(tokenID, metadatas))
	count := len(metadatas)
	token := tokenID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Minted %d serial(s) of collection %s with status %s.", count, token, raw.Status)
	})
}

func associationSchema(kit *agentkit.Context) *agentkit.Schema {
	return agentkit.Object(map[string]*agentkit.Schema{
		"token_ids": agentkit.Array(
			"Tokens to operate on, in shard.realm.num format.",
			agentkit.String("Token ID."),
		),
		"account_id": agentkit.String(agentkit.DescribeOptionalAccount("target", kit)),
	}, "token_ids")
}

func associateTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodAssociateToken,
		Name:   "Associate Token",
		Description: agentkit.DescribeContext(kit) +
			" Associates one or more tokens with an account. " +
			agentkit.ParameterGuidance(),
		Parameters: associationSchema(kit),
		Execute:    executeAssociation(true),
	}
}

func dissociateTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDissociateToken,
		Name:   "Dissociate Token",
		Description: agentkit.DescribeContext(kit) +
			" Dissociates one or more tokens from an account. " +
			agentkit.ParameterGuidance(),
		Parameters: associationSchema(kit),
		Execute:    executeAssociation(false),
	}
}

func executeAssociation(associate bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params AssociationParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid association parameters: %v", err)
		}

		accountID, tokenIDs, err := normalizeAssociation(params, kit, client)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		var prepared *agentkit.PreparedTransaction
		if associate {
			prepared = agentkit.Prepare(BuildAssociateTokenTx(accountID, tokenIDs))
		} else {
			prepared = agentkit.Prepare(BuildDissociateTokenTx(accountID, tokenIDs))
		}

		account := accountID.String()
		count := len(tokenIDs)
		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if associate {
				return fmt.Sprintf("Associated %d token(s) with account %s, status %s.", count, account, raw.Status)
			}
			return fmt.Sprintf("Dissociated %d token(s) from account %s, status %s.", count, account, raw.Status)
		})
	}
}

func updateTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodUpdateToken,
		Name:   "Update Token",
		Description: agentkit.DescribeContext(kit) +
			" Updates a token's name, symbol, or memo; the token must have an admin key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id":     agentkit.String("Token to update, in shard.realm.num format."),
			"token_name":   agentkit.String("New token name."),
			"token_symbol": agentkit.String("New token symbol."),
			"token_memo":   agentkit.String("New token memo."),
		}, "token_id"),
		Execute: executeUpdateToken,
	}
}

func executeUpdateToken(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params UpdateTokenParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid update_token parameters: %v", err)
	}

	tokenID, err := normalizeUpdateToken(ctx, params, kit)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildUpdateTokenTx(tokenID, params))
	token := tokenID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Token %s updated with status %s.", token, raw.Status)
	})
}

func deleteTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteToken,
		Name:   "Delete Token",
		Description: agentkit.DescribeContext(kit) +
			" Deletes a token; requires its admin key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id": agentkit.String("Token to delete, in shard.realm.num format."),
		}, "token_id"),
		Execute: executeDeleteToken,
	}
}

func executeDeleteToken(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params DeleteTokenParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid delete_token parameters: %v", err)
	}

	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildDeleteTokenTx(tokenID))
	token := tokenID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Token %s deleted with status %s.", token, raw.Status)
	})
}

func tokenTransferSchema(kit *agentkit.Context, scheduling bool) *agentkit.Schema {
	properties := map[string]*agentkit.Schema{
		"token_id": agentkit.String("Token to transfer, in shard.realm.num format."),
		"transfers": agentkit.Array(
			"Credits to apply. Each entry names a recipient account and a positive amount in display units.",
			agentkit.Object(map[string]*agentkit.Schema{
				"account_id": agentkit.String("Recipient account in shard.realm.num format."),
				"amount":     agentkit.Number("Amount in display units; must be positive."),
			}, "account_id", "amount"),
		),
		"source_account_id": agentkit.String(agentkit.DescribeOptionalAccount("source", kit)),
		"transaction_memo":  agentkit.String("Optional memo attached to the transaction."),
	}
	if scheduling {
		for name, property := range agentkit.SchedulingSchema() {
			properties[name] = property
		}
	}
	return agentkit.Object(properties, "token_id", "transfers")
}

func transferTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferToken,
		Name:   "Transfer Fungible Token",
		Description: agentkit.DescribeContext(kit) +
			" Transfers a fungible token from the source account to one or more recipients. " +
			agentkit.ParameterGuidance(),
		Parameters: tokenTransferSchema(kit, true),
		Execute:    executeTransferToken(false),
	}
}

func transferTokenWithAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferTokenWithAllowance,
		Name:   "Transfer Fungible Token with Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Transfers a fungible token spending an allowance the source account granted to the operator. " +
			agentkit.ParameterGuidance(),
		Parameters: tokenTransferSchema(kit, true),
		Execute:    executeTransferToken(true),
	}
}

func executeTransferToken(approved bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params TransferTokenParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid transfer parameters: %v", err)
		}

		normalized, err := normalizeTransferToken(ctx, params, kit, client, approved)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		transaction := BuildTransferTokenTx(normalized.Tx)

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

		token := normalized.Tx.TokenID.String()
		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if raw.ScheduleID != "" {
				return fmt.Sprintf("Scheduled transfer of token %s created with schedule ID %s.", token, raw.ScheduleID)
			}
			return fmt.Sprintf("Transfer of token %s completed with status %s.", token, raw.Status)
		})
	}
}

func airdropTokenTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodAirdropFungibleToken,
		Name:   "Airdrop Fungible Token",
		Description: agentkit.DescribeContext(kit) +
			" Airdrops a fungible token to one or more recipients; unassociated recipients can claim later. " +
			agentkit.ParameterGuidance(),
		Parameters: tokenTransferSchema(kit, false),
		Execute:    executeAirdropToken,
	}
}

func executeAirdropToken(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params TransferTokenParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid airdrop parameters: %v", err)
	}

	normalized, err := normalizeTransferToken(ctx, params, kit, client, false)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildAirdropTokenTx(normalized.Tx))
	token := normalized.Tx.TokenID.String()
	count := len(normalized.Tx.Transfers)
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Airdropped token %s to %d recipient(s) with status %s.", token, count, raw.Status)
	})
}

func nftTransferSchema(kit *agentkit.Context) *agentkit.Schema {
	properties := map[string]*agentkit.Schema{
		"token_id":            agentkit.String("NFT collection, in shard.realm.num format."),
		"serial_number":       agentkit.Integer("Serial number of the NFT to transfer."),
		"receiver_account_id": agentkit.String("Recipient account in shard.realm.num format."),
		"sender_account_id":   agentkit.String(agentkit.DescribeOptionalAccount("sender", kit)),
		"transaction_memo":    agentkit.String("Optional memo attached to the transaction."),
	}
	for name, property := range agentkit.SchedulingSchema() {
		properties[name] = property
	}
	return agentkit.Object(properties, "token_id", "serial_number", "receiver_account_id")
}

func transferNftTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferNft,
		Name:   "Transfer NFT",
		Description: agentkit.DescribeContext(kit) +
			" Transfers a single NFT serial to a recipient. " +
			agentkit.ParameterGuidance(),
		Parameters: nftTransferSchema(kit),
		Execute:    executeTransferNft(false),
	}
}

func transferNftWithAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferNftWithAllowance,
		Name:   "Transfer NFT with Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Transfers a single NFT serial spending an allowance the owner granted to the operator. " +
			agentkit.ParameterGuidance(),
		Parameters: nftTransferSchema(kit),
		Execute:    executeTransferNft(true),
	}
}

func executeTransferNft(approved bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params TransferNftParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid transfer parameters: %v", err)
		}

		normalized, err := normalizeTransferNft(ctx, params, kit, client, approved)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		transaction := BuildTransferNftTx(normalized.Tx)

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

		nft := normalized.Tx.NftID.String()
		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if raw.ScheduleID != "" {
				return fmt.Sprintf("Scheduled transfer of NFT %s created with schedule ID %s.", nft, raw.ScheduleID)
			}
			return fmt.Sprintf("Transfer of NFT %s completed with status %s.", nft, raw.Status)
		})
	}
}

func approveTokenAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodApproveTokenAllowance,
		Name:   "Approve Token Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Approves a fungible token spending allowance for another account. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id":           agentkit.String("Token the allowance covers, in shard.realm.num format."),
			"spender_account_id": agentkit.String("Account allowed to spend."),
			"amount":             agentkit.Number("Allowance in display units; must be positive."),
			"owner_account_id":   agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
			"transaction_memo":   agentkit.String("Optional memo attached to the transaction."),
		}, "token_id", "spender_account_id", "amount"),
		Execute: executeTokenAllowance(true),
	}
}

func deleteTokenAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteTokenAllowance,
		Name:   "Delete Token Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Revokes a fungible token allowance by setting it to zero. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id":           agentkit.String("Token the allowance covers, in shard.realm.num format."),
			"spender_account_id": agentkit.String("Account whose allowance is revoked."),
			"owner_account_id":   agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
			"transaction_memo":   agentkit.String("Optional memo attached to the transaction."),
		}, "token_id", "spender_account_id"),
		Execute: executeTokenAllowance(false),
	}
}

func executeTokenAllowance(approve bool) agentkit.ExecuteFunc {
	return func(
		ctx context.Context,
		client *hedera.Client,
		kit *agentkit.Context,
		raw json.RawMessage,
	) agentkit.ToolResponse {
		var params TokenAllowanceParams
		if err := json.Unmarshal(raw, &params); err != nil {
			return agentkit.ErrorResponse("invalid allowance parameters: %v", err)
		}
		if !approve {
			// Revocation is an approval of zero.
			params.Amount = 0
		}

		normalized, err := normalizeTokenAllowance(ctx, params, kit, client, approve)
		if err != nil {
			return agentkit.ErrorResponse("%v", err)
		}

		prepared := agentkit.Prepare(BuildApproveTokenAllowanceTx(*normalized))
		spender := normalized.Spender.String()
		token := normalized.TokenID.String()
		return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
			if approve {
				return fmt.Sprintf("Allowance on token %s for %s approved with status %s.", token, spender, raw.Status)
			}
			return fmt.Sprintf("Allowance on token %s for %s revoked with status %s.", token, spender, raw.Status)
		})
	}
}

func approveNftAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodApproveNftAllowance,
		Name:   "Approve NFT Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Approves an NFT transfer allowance for specific serials or a whole collection. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id":           agentkit.String("NFT collection, in shard.realm.num format."),
			"spender_account_id": agentkit.String("Account allowed to transfer the NFTs."),
			"serial_numbers": agentkit.Array(
				"Serials the allowance covers; omit with all_serials for the whole collection.",
				agentkit.Integer("Serial number."),
			),
			"all_serials":      agentkit.Boolean("Approve every current and future serial of the collection."),
			"owner_account_id": agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
		}, "token_id", "spender_account_id"),
		Execute: executeApproveNftAllowance,
	}
}

func executeApproveNftAllowance(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params NftAllowanceParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid allowance parameters: %v", err)
	}

	normalized, err := normalizeNftAllowance(params, kit, client, true)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildApproveNftAllowanceTx(*normalized))
	spender := normalized.Spender.String()
	token := normalized.TokenID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("NFT allowance on collection %s for %s approved with status %s.", token, spender, raw.Status)
	})
}

func deleteNftAllowanceTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteNftAllowance,
		Name:   "Delete NFT Allowance",
		Description: agentkit.DescribeContext(kit) +
			" Removes all spender approvals from the listed NFT serials. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_id": agentkit.String("NFT collection, in shard.realm.num format."),
			"serial_numbers": agentkit.Array(
				"Serials to clear approvals from.",
				agentkit.Integer("Serial number."),
			),
			"owner_account_id": agentkit.String(agentkit.DescribeOptionalAccount("owner", kit)),
		}, "token_id", "serial_numbers"),
		Execute: executeDeleteNftAllowance,
	}
}

func executeDeleteNftAllowance(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params NftAllowanceParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid allowance parameters: %v", err)
	}
	if params.AllSerials {
		return agentkit.ErrorResponse("allowance removal requires explicit serial numbers")
	}

	normalized, err := normalizeNftAllowance(params, kit, client, false)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildDeleteNftAllowanceTx(*normalized))
	token := normalized.TokenID.String()
	count := len(normalized.Serials)
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Cleared approvals on %d serial(s) of collection %s with status %s.", count, token, raw.Status)
	})
}
