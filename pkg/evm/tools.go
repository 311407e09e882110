package evm

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

// Tool method identifiers.
const (
	MethodCreateERC20    = "create_erc20"
	MethodTransferERC20  = "transfer_erc20"
	MethodCreateERC721   = "create_erc721"
	MethodMintERC721     = "mint_erc721"
	MethodTransferERC721 = "transfer_erc721"
)

const defaultERC20Decimals = 18

// Plugin returns the core EVM plugin.
func Plugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-evm",
		Version:     "1.0.0",
		Description: "ERC-20 and ERC-721 deployment and transfers through the network factory contracts.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				createERC20Tool(kit),
				transferERC20Tool(kit),
				createERC721Tool(kit),
				mintERC721Tool(kit),
				transferERC721Tool(kit),
			}
		},
	}
}

type createERC20Params struct {
	TokenName     string  `json:"token_name"`
	TokenSymbol   string  `json:"token_symbol"`
	Decimals      *uint32 `json:"decimals,omitempty"`
	InitialSupply float64 `json:"initial_supply,omitempty"`
}

type transferERC20Params struct {
	ContractID       string  `json:"contract_id"`
	RecipientAddress string  `json:"recipient_address"`
	Amount           float64 `json:"amount"`
	Decimals         *uint32 `json:"decimals,omitempty"`
}

type createERC721Params struct {
	TokenName   string `json:"token_name"`
	TokenSymbol string `json:"token_symbol"`
	BaseURI     string `json:"base_uri,omitempty"`
}

type mintERC721Params struct {
	ContractID string `json:"contract_id"`
	ToAddress  string `json:"to_address,omitempty"`
}

type transferERC721Params struct {
	ContractID  string `json:"contract_id"`
	FromAddress string `json:"from_address,omitempty"`
	ToAddress   string `json:"to_address"`
	TokenID     int64  `json:"token_id"`
}

func createERC20Tool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodCreateERC20,
		Name:   "Create ERC20 Token",
		Description: agentkit.DescribeContext(kit) +
			" Deploys an ERC-20 token through the factory contract; the caller becomes the owner. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_name":     agentkit.String("Name of the token."),
			"token_symbol":   agentkit.String("Symbol of the token."),
			"decimals":       agentkit.Integer("Number of decimal places; defaults to 18."),
			"initial_supply": agentkit.Number("Initial supply in display units; defaults to zero."),
		}, "token_name", "token_symbol"),
		Execute: executeCreateERC20,
	}
}

func executeCreateERC20(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params createERC20Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid create_erc20 parameters: %v", err)
	}
	if params.TokenName == "" || params.TokenSymbol == "" {
		return agentkit.ErrorResponse("token name and symbol are required")
	}
	if params.InitialSupply < 0 {
		return agentkit.ErrorResponse("initial supply must not be negative, got %v", params.InitialSupply)
	}

	decimals := uint32(defaultERC20Decimals)
	if params.Decimals != nil {
		decimals = *params.Decimals
	}
	if decimals > 255 {
		return agentkit.ErrorResponse("decimals must fit in uint8, got %d", decimals)
	}

	initialSupply, err := shared.ToBaseUnits(params.InitialSupply, decimals)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	calldata, err := packDeployERC20(params.TokenName, params.TokenSymbol, uint8(decimals), initialSupply)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	factory, err := parseContractID(ERC20FactoryContractID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildContractExecuteTx(factory, DeployGasLimit, calldata))
	symbol := params.TokenSymbol
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf(
			"ERC-20 token %s deployed in transaction %s; look up the contract address in its record.",
			symbol, raw.TransactionID,
		)
	})
}

func transferERC20Tool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferERC20,
		Name:   "Transfer ERC20 Token",
		Description: agentkit.DescribeContext(kit) +
			" Transfers an ERC-20 token to a recipient, given the token's contract. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"contract_id": agentkit.String(
				"Token contract, as shard.realm.num or a 0x EVM address.",
			),
			"recipient_address": agentkit.String(
				"Recipient, as a 0x EVM address or a Hedera account ID.",
			),
			"amount":   agentkit.Number("Amount in display units; must be positive."),
			"decimals": agentkit.Integer("Token decimals used for conversion; defaults to 18."),
		}, "contract_id", "recipient_address", "amount"),
		Execute: executeTransferERC20,
	}
}

func executeTransferERC20(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params transferERC20Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid transfer_erc20 parameters: %v", err)
	}
	if params.Amount <= 0 {
		return agentkit.ErrorResponse("transfer amount must be positive, got %v", params.Amount)
	}

	contractID, err := parseContractID(params.ContractID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}
	if params.RecipientAddress == "" {
		return agentkit.ErrorResponse("recipient address is required")
	}
	recipient, err := resolveEvmAddress(params.RecipientAddress, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	decimals := uint32(defaultERC20Decimals)
	if params.Decimals != nil {
		decimals = *params.Decimals
	}
	amount, err := shared.ToBaseUnits(params.Amount, decimals)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	calldata, err := packTransferERC20(recipient, amount)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildContractExecuteTx(contractID, TransferGasLimit, calldata))
	contract := contractID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf(
			"Transferred %v of ERC-20 %s to %s with status %s.",
			params.Amount, contract, recipient.Hex(), raw.Status,
		)
	})
}

func createERC721Tool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodCreateERC721,
		Name:   "Create ERC721 Token",
		Description: agentkit.DescribeContext(kit) +
			" Deploys an ERC-721 collection through the factory contract; the caller becomes the owner. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"token_name":   agentkit.String("Name of the collection."),
			"token_symbol": agentkit.String("Symbol of the collection."),
			"base_uri":     agentkit.String("Optional base URI for token metadata."),
		}, "token_name", "token_symbol"),
		Execute: executeCreateERC721,
	}
}

func executeCreateERC721(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params createERC721Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid create_erc721 parameters: %v", err)
	}
	if params.TokenName == "" || params.TokenSymbol == "" {
		return agentkit.ErrorResponse("token name and symbol are required")
	}

	calldata, err := packDeployERC721(params.TokenName, params.TokenSymbol, params.BaseURI)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	factory, err := parseContractID(ERC721FactoryContractID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildContractExecuteTx(factory, DeployGasLimit, calldata))
	symbol := params.TokenSymbol
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf(
			"ERC-721 collection %s deployed in transaction %s; look up the contract address in its record.",
			symbol, raw.TransactionID,
		)
	})
}

func mintERC721Tool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodMintERC721,
		Name:   "Mint ERC721 Token",
		Description: agentkit.DescribeContext(kit) +
			" Mints a new ERC-721 token to a recipient; only the collection owner can mint. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"contract_id": agentkit.String(
				"Collection contract, as shard.realm.num or a 0x EVM address.",
			),
			"to_address": agentkit.String(
				"Recipient, as a 0x EVM address or a Hedera account ID; defaults to the connected account.",
			),
		}, "contract_id"),
		Execute: executeMintERC721,
	}
}

func executeMintERC721(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params mintERC721Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid mint_erc721 parameters: %v", err)
	}

	contractID, err := parseContractID(params.ContractID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}
	to, err := resolveEvmAddress(params.ToAddress, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	calldata, err := packMintERC721(to)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildContractExecuteTx(contractID, MintGasLimit, calldata))
	contract := contractID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf(
			"Minted an ERC-721 token of %s to %s with status %s.", contract, to.Hex(), raw.Status,
		)
	})
}

func transferERC721Tool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodTransferERC721,
		Name:   "Transfer ERC721 Token",
		Description: agentkit.DescribeContext(kit) +
			" Transfers an ERC-721 token to a recipient. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"contract_id": agentkit.String(
				"Collection contract, as shard.realm.num or a 0x EVM address.",
			),
			"from_address": agentkit.String(
				"Current owner, as a 0x EVM address or a Hedera account ID; defaults to the connected account.",
			),
			"to_address": agentkit.String(
				"Recipient, as a 0x EVM address or a Hedera account ID.",
			),
			"token_id": agentkit.Integer("Token ID within the collection."),
		}, "contract_id", "to_address", "token_id"),
		Execute: executeTransferERC721,
	}
}

func executeTransferERC721(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params transferERC721Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid transfer_erc721 parameters: %v", err)
	}
	if params.TokenID < 0 {
		return agentkit.ErrorResponse("token ID must not be negative, got %d", params.TokenID)
	}

	contractID, err := parseContractID(params.ContractID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}
	from, err := resolveEvmAddress(params.FromAddress, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}
	if params.ToAddress == "" {
		return agentkit.ErrorResponse("recipient address is required")
	}
	to, err := resolveEvmAddress(params.ToAddress, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	calldata, err := packTransferERC721(from, to, big.NewInt(params.TokenID))
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildContractExecuteTx(contractID, TransferGasLimit, calldata))
	contract := contractID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf(
			"Transferred token %d of ERC-721 %s to %s with status %s.",
			params.TokenID, contract, to.Hex(), raw.Status,
		)
	})
}
