package token

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

// Metadata for a single NFT serial is capped by the network at 100 bytes.
const maxNftMetadataBytes = 100

const defaultNftMaxSupply = 100

func parseTokenID(raw string) (hedera.TokenID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.TokenID{}, fmt.Errorf("token ID is required")
	}
	tokenID, err := hedera.TokenIDFromString(trimmed)
	if err != nil {
		return hedera.TokenID{}, fmt.Errorf("invalid token ID %q: %w", trimmed, err)
	}
	return tokenID, nil
}

// fetchTokenDecimals looks up a token's decimals on the mirror node so
// display amounts can be converted to base units.
func fetchTokenDecimals(ctx context.Context, kit *agentkit.Context, tokenID string) (uint32, error) {
	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return 0, err
	}
	info, err := mirrorClient.GetTokenInfo(ctx, tokenID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch token %s: %w", tokenID, err)
	}
	decimals, err := strconv.ParseUint(info.Decimals, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("token %s reports invalid decimals %q: %w", tokenID, info.Decimals, err)
	}
	return uint32(decimals), nil
}

func toBaseUnitsInt64(amount float64, decimals uint32) (int64, error) {
	base, err := shared.ToBaseUnits(amount, decimals)
	if err != nil {
		return 0, err
	}
	if !base.IsInt64() {
		return 0, fmt.Errorf("amount %v with %d decimals overflows the transferable range", amount, decimals)
	}
	return base.Int64(), nil
}

func normalizeCreateFungibleToken(
	ctx context.Context,
	params CreateFungibleTokenParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*CreateFungibleTokenTxParams, error) {
	if strings.TrimSpace(params.TokenName) == "" {
		return nil, fmt.Errorf("token name is required")
	}
	if strings.TrimSpace(params.TokenSymbol) == "" {
		return nil, fmt.Errorf("token symbol is required")
	}
	if params.InitialSupply < 0 {
		return nil, fmt.Errorf("initial supply must not be negative, got %v", params.InitialSupply)
	}

	treasury, err := agentkit.ResolveAccountID(params.TreasuryAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	// The supply key defaults to the connected account's key so the token
	// stays mintable.
	supplyKey, err := params.SupplyKey.Resolve(func() (hedera.PublicKey, error) {
		return agentkit.DefaultPublicKey(ctx, kit, client)
	})
	if err != nil {
		return nil, err
	}
	if supplyKey == nil {
		resolved, keyErr := agentkit.DefaultPublicKey(ctx, kit, client)
		if keyErr != nil {
			return nil, keyErr
		}
		supplyKey = &resolved
	}

	adminKey, err := params.AdminKey.Resolve(func() (hedera.PublicKey, error) {
		return agentkit.DefaultPublicKey(ctx, kit, client)
	})
	if err != nil {
		return nil, err
	}

	initialSupply, err := shared.ToBaseUnits(params.InitialSupply, params.Decimals)
	if err != nil {
		return nil, err
	}
	if !initialSupply.IsUint64() {
		return nil, fmt.Errorf("initial supply %v overflows with %d decimals", params.InitialSupply, params.Decimals)
	}

	normalized := &CreateFungibleTokenTxParams{
		Name:          strings.TrimSpace(params.TokenName),
		Symbol:        strings.TrimSpace(params.TokenSymbol),
		Decimals:      params.Decimals,
		InitialSupply: initialSupply.Uint64(),
		Treasury:      treasury,
		SupplyKey:     *supplyKey,
		AdminKey:      adminKey,
		Memo:          params.TokenMemo,
	}

	if params.MaxSupply != nil {
		maxSupply, maxErr := shared.ToBaseUnits(*params.MaxSupply, params.Decimals)
		if maxErr != nil {
			return nil, maxErr
		}
		if !maxSupply.IsInt64() || maxSupply.Sign() <= 0 {
			return nil, fmt.Errorf("max supply %v is out of range", *params.MaxSupply)
		}
		if maxSupply.Cmp(new(big.Int).SetUint64(normalized.InitialSupply)) < 0 {
			return nil, fmt.Errorf(
				"initial supply %v exceeds max supply %v", params.InitialSupply, *params.MaxSupply,
			)
		}
		normalized.MaxSupply = maxSupply.Int64()
	}

	return normalized, nil
}

func normalizeCreateNft(
	ctx context.Context,
	params CreateNftParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*CreateNftTxParams, error) {
	if strings.TrimSpace(params.TokenName) == "" {
		return nil, fmt.Errorf("token name is required")
	}
	if strings.TrimSpace(params.TokenSymbol) == "" {
		return nil, fmt.Errorf("token symbol is required")
	}

	maxSupply := int64(defaultNftMaxSupply)
	if params.MaxSupply != nil {
		if *params.MaxSupply <= 0 {
			return nil, fmt.Errorf("max supply must be positive, got %d", *params.MaxSupply)
		}
		maxSupply = *params.MaxSupply
	}

	treasury, err := agentkit.ResolveAccountID(params.TreasuryAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	// NFT collections always carry a supply key; minting is impossible
	// without one.
	supplyKey, err := agentkit.DefaultPublicKey(ctx, kit, client)
	if err != nil {
		return nil, err
	}

	adminKey, err := params.AdminKey.Resolve(func() (hedera.PublicKey, error) {
		return agentkit.DefaultPublicKey(ctx, kit, client)
	})
	if err != nil {
		return nil, err
	}

	return &CreateNftTxParams{
		Name:      strings.TrimSpace(params.TokenName),
		Symbol:    strings.TrimSpace(params.TokenSymbol),
		MaxSupply: maxSupply,
		Treasury:  treasury,
		SupplyKey: supplyKey,
		AdminKey:  adminKey,
		Memo:      params.TokenMemo,
	}, nil
}

func normalizeMintFungible(
	ctx context.Context,
	params MintFungibleTokenParams,
	kit *agentkit.Context,
) (hedera.TokenID, uint64, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return hedera.TokenID{}, 0, err
	}
	if params.Amount <= 0 {
		return hedera.TokenID{}, 0, fmt.Errorf("mint amount must be positive, got %v", params.Amount)
	}

	decimals, err := fetchTokenDecimals(ctx, kit, tokenID.String())
	if err != nil {
		return hedera.TokenID{}, 0, err
	}
	base, err := shared.ToBaseUnits(params.Amount, decimals)
	if err != nil {
		return hedera.TokenID{}, 0, err
	}
	if !base.IsUint64() {
		return hedera.TokenID{}, 0, fmt.Errorf("mint amount %v overflows with %d decimals", params.Amount, decimals)
	}

	return tokenID, base.Uint64(), nil
}

func normalizeMintNft(params MintNftParams) (hedera.TokenID, [][]byte, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return hedera.TokenID{}, nil, err
	}
	if len(params.URIs) == 0 {
		return hedera.TokenID{}, nil, fmt.Errorf("at least one metadata URI is required")
	}

	metadatas := make([][]byte, 0, len(params.URIs))
	for _, uri := range params.URIs {
		trimmed := strings.TrimSpace(uri)
		if trimmed == "" {
			return hedera.TokenID{}, nil, fmt.Errorf("metadata URIs must not be empty")
		}
		if len(trimmed) > maxNftMetadataBytes {
			return hedera.TokenID{}, nil, fmt.Errorf(
				"metadata URI %q is %d bytes, the limit is %d", trimmed, len(trimmed), maxNftMetadataBytes,
			)
		}
		metadatas = append(metadatas, []byte(trimmed))
	}

	return tokenID, metadatas, nil
}

func normalizeAssociation(
	params AssociationParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (hedera.AccountID, []hedera.TokenID, error) {
	if len(params.TokenIDs) == 0 {
		return hedera.AccountID{}, nil, fmt.Errorf("at least one token ID is required")
	}

	tokenIDs := make([]hedera.TokenID, 0, len(params.TokenIDs))
	for _, raw := range params.TokenIDs {
		tokenID, err := parseTokenID(raw)
		if err != nil {
			return hedera.AccountID{}, nil, err
		}
		tokenIDs = append(tokenIDs, tokenID)
	}

	accountID, err := agentkit.ResolveAccountID(params.AccountID, kit, client)
	if err != nil {
		return hedera.AccountID{}, nil, err
	}

	return accountID, tokenIDs, nil
}

// normalizeUpdateToken checks on the mirror node that the token carries an
// admin key before building an update that would otherwise fail on chain.
func normalizeUpdateToken(
	ctx context.Context,
	params UpdateTokenParams,
	kit *agentkit.Context,
) (hedera.TokenID, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return hedera.TokenID{}, err
	}
	if params.TokenName == nil && params.TokenSymbol == nil && params.TokenMemo == nil {
		return hedera.TokenID{}, fmt.Errorf("at least one field to update is required")
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return hedera.TokenID{}, err
	}
	info, err := mirrorClient.GetTokenInfo(ctx, tokenID.String())
	if err != nil {
		return hedera.TokenID{}, fmt.Errorf("failed to fetch token %s: %w", tokenID, err)
	}
	if info.AdminKey == nil {
		return hedera.TokenID{}, fmt.Errorf("token %s is immutable: it has no admin key", tokenID)
	}

	return tokenID, nil
}

type transferTokenNormalized struct {
	Tx       TransferTokenTxParams
	Schedule *agentkit.ScheduleOptions
}

func normalizeTransferToken(
	ctx context.Context,
	params TransferTokenParams,
	kit *agentkit.Context,
	client *hedera.Client,
	approved bool,
) (*transferTokenNormalized, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	if len(params.Transfers) == 0 {
		return nil, fmt.Errorf("at least one transfer is required")
	}

	decimals, err := fetchTokenDecimals(ctx, kit, tokenID.String())
	if err != nil {
		return nil, err
	}

	transfers := make([]ResolvedTokenTransfer, 0, len(params.Transfers))
	for _, transfer := range params.Transfers {
		if transfer.Amount <= 0 {
			return nil, fmt.Errorf("transfer amount must be positive, got %v", transfer.Amount)
		}
		accountID, parseErr := hedera.AccountIDFromString(strings.TrimSpace(transfer.AccountID))
		if parseErr != nil {
			return nil, fmt.Errorf("invalid recipient account ID %q: %w", transfer.AccountID, parseErr)
		}
		amount, convErr := toBaseUnitsInt64(transfer.Amount, decimals)
		if convErr != nil {
			return nil, convErr
		}
		transfers = append(transfers, ResolvedTokenTransfer{AccountID: accountID, Amount: amount})
	}

	source, err := agentkit.ResolveAccountID(params.SourceAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	schedule, err := params.SchedulingParams.Normalize(ctx, kit, client)
	if err != nil {
		return nil, err
	}

	return &transferTokenNormalized{
		Tx: TransferTokenTxParams{
			TokenID:   tokenID,
			Transfers: transfers,
			Source:    source,
			Memo:      params.TransactionMemo,
			Approved:  approved,
		},
		Schedule: schedule,
	}, nil
}

type transferNftNormalized struct {
	Tx       TransferNftTxParams
	Schedule *agentkit.ScheduleOptions
}

func normalizeTransferNft(
	ctx context.Context,
	params TransferNftParams,
	kit *agentkit.Context,
	client *hedera.Client,
	approved bool,
) (*transferNftNormalized, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	if params.SerialNumber <= 0 {
		return nil, fmt.Errorf("serial number must be positive, got %d", params.SerialNumber)
	}
	if strings.TrimSpace(params.ReceiverAccountID) == "" {
		return nil, fmt.Errorf("receiver account ID is required")
	}
	receiver, err := hedera.AccountIDFromString(strings.TrimSpace(params.ReceiverAccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid receiver account ID %q: %w", params.ReceiverAccountID, err)
	}

	sender, err := agentkit.ResolveAccountID(params.SenderAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	schedule, err := params.SchedulingParams.Normalize(ctx, kit, client)
	if err != nil {
		return nil, err
	}

	return &transferNftNormalized{
		Tx: TransferNftTxParams{
			NftID:    hedera.NftID{TokenID: tokenID, SerialNumber: params.SerialNumber},
			Sender:   sender,
			Receiver: receiver,
			Memo:     params.TransactionMemo,
			Approved: approved,
		},
		Schedule: schedule,
	}, nil
}

func normalizeTokenAllowance(
	ctx context.Context,
	params TokenAllowanceParams,
	kit *agentkit.Context,
	client *hedera.Client,
	requirePositive bool,
) (*TokenAllowanceTxParams, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
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

	amount := int64(0)
	if requirePositive {
		if params.Amount <= 0 {
			return nil, fmt.Errorf("allowance amount must be positive, got %v", params.Amount)
		}
		decimals, decErr := fetchTokenDecimals(ctx, kit, tokenID.String())
		if decErr != nil {
			return nil, decErr
		}
		amount, err = toBaseUnitsInt64(params.Amount, decimals)
		if err != nil {
			return nil, err
		}
	}

	return &TokenAllowanceTxParams{
		TokenID: tokenID,
		Owner:   owner,
		Spender: spender,
		Amount:  amount,
		Memo:    params.TransactionMemo,
	}, nil
}

func normalizeNftAllowance(
	params NftAllowanceParams,
	kit *agentkit.Context,
	client *hedera.Client,
	requireSpender bool,
) (*NftAllowanceTxParams, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	if !params.AllSerials && len(params.SerialNumbers) == 0 {
		return nil, fmt.Errorf("either serial numbers or all_serials is required")
	}
	for _, serial := range params.SerialNumbers {
		if serial <= 0 {
			return nil, fmt.Errorf("serial number must be positive, got %d", serial)
		}
	}

	var spender hedera.AccountID
	if strings.TrimSpace(params.SpenderAccountID) != "" {
		spender, err = hedera.AccountIDFromString(strings.TrimSpace(params.SpenderAccountID))
		if err != nil {
			return nil, fmt.Errorf("invalid spender account ID %q: %w", params.SpenderAccountID, err)
		}
	} else if requireSpender {
		return nil, fmt.Errorf("spender account ID is required")
	}

	owner, err := agentkit.ResolveAccountID(params.OwnerAccountID, kit, client)
	if err != nil {
		return nil, err
	}

	return &NftAllowanceTxParams{
		TokenID:    tokenID,
		Serials:    params.SerialNumbers,
		AllSerials: params.AllSerials,
		Owner:      owner,
		Spender:    spender,
	}, nil
}
