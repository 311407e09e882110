package mirror

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetAccountHbarBalance returns the account's hbar balance in tinybars.
func (c *Client) GetAccountHbarBalance(ctx context.Context, accountID string) (int64, error) {
	accountInfo, err := c.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if accountInfo.Balance == nil {
		return 0, fmt.Errorf("mirror node returned no balance for account %s", accountID)
	}
	return accountInfo.Balance.Balance, nil
}

// GetAccountTokenBalances returns the account's token relationships, enriched
// with each token's symbol. Pass a token ID to restrict the result to one
// token.
func (c *Client) GetAccountTokenBalances(
	ctx context.Context,
	accountID string,
	tokenID string,
) ([]TokenBalance, error) {
	normalized := strings.TrimSpace(accountID)
	if normalized == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	values := url.Values{}
	if trimmed := strings.TrimSpace(tokenID); trimmed != "" {
		values.Set("token.id", trimmed)
	}

	endpoint := fmt.Sprintf("/api/v1/accounts/%s/tokens", normalized)
	if encoded := values.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	balances := make([]TokenBalance, 0)
	next := endpoint
	for page := 0; next != "" && page < maxMessagePages; page++ {
		var response tokenBalancesResponse
		if err := c.getJSON(ctx, next, &response); err != nil {
			return nil, err
		}
		balances = append(balances, response.Tokens...)
		next = response.Links.Next
	}

	for index := range balances {
		tokenInfo, err := c.GetTokenInfo(ctx, balances[index].TokenID)
		if err != nil {
			continue
		}
		balances[index].Symbol = tokenInfo.Symbol
	}

	return balances, nil
}

// GetAccountNfts returns the NFTs held by the account, optionally restricted
// to one collection.
func (c *Client) GetAccountNfts(ctx context.Context, accountID, tokenID string) ([]Nft, error) {
	normalized := strings.TrimSpace(accountID)
	if normalized == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	nfts := make([]Nft, 0)
	next := fmt.Sprintf("/api/v1/accounts/%s/nfts", normalized)
	if trimmed := strings.TrimSpace(tokenID); trimmed != "" {
		next += "?token.id=" + url.QueryEscape(trimmed)
	}
	for page := 0; next != "" && page < maxMessagePages; page++ {
		var response nftsResponse
		if err := c.getJSON(ctx, next, &response); err != nil {
			return nil, err
		}
		nfts = append(nfts, response.Nfts...)
		next = response.Links.Next
	}

	return nfts, nil
}

// GetTokenInfo returns the token's mirror-node record.
func (c *Client) GetTokenInfo(ctx context.Context, tokenID string) (TokenInfo, error) {
	var tokenInfo TokenInfo
	normalized := strings.TrimSpace(tokenID)
	if normalized == "" {
		return tokenInfo, fmt.Errorf("token ID is required")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s", normalized)
	if err := c.getJSON(ctx, path, &tokenInfo); err != nil {
		return tokenInfo, err
	}

	return tokenInfo, nil
}

// GetPendingAirdrops returns airdrops waiting on the receiving account.
func (c *Client) GetPendingAirdrops(ctx context.Context, accountID string) ([]TokenAirdrop, error) {
	return c.getAirdrops(ctx, accountID, "pending")
}

// GetOutstandingAirdrops returns airdrops sent by the account that have not
// been claimed yet.
func (c *Client) GetOutstandingAirdrops(ctx context.Context, accountID string) ([]TokenAirdrop, error) {
	return c.getAirdrops(ctx, accountID, "outstanding")
}

func (c *Client) getAirdrops(ctx context.Context, accountID, direction string) ([]TokenAirdrop, error) {
	normalized := strings.TrimSpace(accountID)
	if normalized == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	airdrops := make([]TokenAirdrop, 0)
	next := fmt.Sprintf("/api/v1/accounts/%s/airdrops/%s", normalized, direction)
	for page := 0; next != "" && page < maxMessagePages; page++ {
		var response airdropsResponse
		if err := c.getJSON(ctx, next, &response); err != nil {
			return nil, err
		}
		airdrops = append(airdrops, response.Airdrops...)
		next = response.Links.Next
	}

	return airdrops, nil
}

// GetTokenAllowances returns fungible token allowances granted by the owner.
// Pass a spender ID to restrict the result to one spender.
func (c *Client) GetTokenAllowances(
	ctx context.Context,
	ownerID string,
	spenderID string,
) ([]TokenAllowance, error) {
	normalized := strings.TrimSpace(ownerID)
	if normalized == "" {
		return nil, fmt.Errorf("owner account ID is required")
	}

	values := url.Values{}
	if trimmed := strings.TrimSpace(spenderID); trimmed != "" {
		values.Set("spender.id", trimmed)
	}

	endpoint := fmt.Sprintf("/api/v1/accounts/%s/allowances/tokens", normalized)
	if encoded := values.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	allowances := make([]TokenAllowance, 0)
	next := endpoint
	for page := 0; next != "" && page < maxMessagePages; page++ {
		var response tokenAllowancesResponse
		if err := c.getJSON(ctx, next, &response); err != nil {
			return nil, err
		}
		allowances = append(allowances, response.Allowances...)
		next = response.Links.Next
	}

	return allowances, nil
}

// GetTransactionRecord looks up a transaction by ID, optionally filtered to a
// specific nonce. Mirror-node transaction IDs use the shard.realm.num-sss-nnn
// form; the @-form accepted by the SDK is converted.
func (c *Client) GetTransactionRecord(
	ctx context.Context,
	transactionID string,
	nonce *int64,
) (*Transaction, error) {
	normalized := normalizeTransactionID(transactionID)
	if normalized == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	path := fmt.Sprintf("/api/v1/transactions/%s", normalized)
	if nonce != nil {
		path = fmt.Sprintf("%s?nonce=%d", path, *nonce)
	}

	var response transactionsResponse
	if err := c.getJSON(ctx, path, &response); err != nil {
		return nil, err
	}
	if len(response.Transactions) == 0 {
		return nil, nil
	}

	return &response.Transactions[0], nil
}

// GetSchedule returns the mirror-node record of a scheduled transaction.
func (c *Client) GetSchedule(ctx context.Context, scheduleID string) (ScheduleInfo, error) {
	var scheduleInfo ScheduleInfo
	normalized := strings.TrimSpace(scheduleID)
	if normalized == "" {
		return scheduleInfo, fmt.Errorf("schedule ID is required")
	}

	path := fmt.Sprintf("/api/v1/schedules/%s", normalized)
	if err := c.getJSON(ctx, path, &scheduleInfo); err != nil {
		return scheduleInfo, err
	}

	return scheduleInfo, nil
}

// GetContractInfo returns the mirror-node record of a contract. The ID may be
// a shard.realm.num contract ID or a 0x EVM address.
func (c *Client) GetContractInfo(ctx context.Context, contractID string) (ContractInfo, error) {
	var contractInfo ContractInfo
	normalized := strings.TrimSpace(contractID)
	if normalized == "" {
		return contractInfo, fmt.Errorf("contract ID is required")
	}

	path := fmt.Sprintf("/api/v1/contracts/%s", normalized)
	if err := c.getJSON(ctx, path, &contractInfo); err != nil {
		return contractInfo, err
	}

	return contractInfo, nil
}

// GetExchangeRate returns the network's hbar/USD-cent exchange rate, at the
// given consensus timestamp when one is provided.
func (c *Client) GetExchangeRate(ctx context.Context, timestamp string) (ExchangeRateResponse, error) {
	var rate ExchangeRateResponse

	path := "/api/v1/network/exchangerate"
	if trimmed := strings.TrimSpace(timestamp); trimmed != "" {
		path = fmt.Sprintf("%s?timestamp=%s", path, url.QueryEscape(trimmed))
	}

	if err := c.getJSON(ctx, path, &rate); err != nil {
		return rate, err
	}

	return rate, nil
}

// normalizeTransactionID converts 0.0.123@456.789 into the REST form
// 0.0.123-456-789.
func normalizeTransactionID(transactionID string) string {
	trimmed := strings.TrimSpace(transactionID)
	if !strings.Contains(trimmed, "@") {
		return trimmed
	}

	parts := strings.SplitN(trimmed, "@", 2)
	return parts[0] + "-" + strings.ReplaceAll(parts[1], ".", "-")
}
