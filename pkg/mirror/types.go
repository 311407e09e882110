package mirror

type TopicInfo struct {
	AdminKey         map[string]any   `json:"admin_key"`
	AutoRenewAccount string           `json:"auto_renew_account"`
	AutoRenewPeriod  int64            `json:"auto_renew_period"`
	CreatedTimestamp string           `json:"created_timestamp"`
	Deleted          bool             `json:"deleted"`
	Memo             string           `json:"memo"`
	SubmitKey        map[string]any   `json:"submit_key"`
	TopicID          string           `json:"topic_id"`
	FeeScheduleKey   map[string]any   `json:"fee_schedule_key"`
	FeeExemptKeyList []map[string]any `json:"fee_exempt_key_list"`
}

type AccountInfo struct {
	Account                       string          `json:"account"`
	Key                           map[string]any  `json:"key"`
	Memo                          string          `json:"memo"`
	Balance                       *AccountBalance `json:"balance,omitempty"`
	EvmAddress                    string          `json:"evm_address"`
	Deleted                       bool            `json:"deleted"`
	AutoRenewPeriod               int64           `json:"auto_renew_period"`
	MaxAutomaticTokenAssociations int64           `json:"max_automatic_token_associations"`
	StakedAccountID               *string         `json:"staked_account_id"`
	PendingReward                 int64           `json:"pending_reward"`
}

type AccountBalance struct {
	Balance   int64                 `json:"balance"`
	Timestamp string                `json:"timestamp"`
	Tokens    []AccountTokenHolding `json:"tokens"`
}

type AccountTokenHolding struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

// TokenBalance is a per-token relationship row from /accounts/{id}/tokens,
// enriched with the token's decimals and symbol.
type TokenBalance struct {
	TokenID  string `json:"token_id"`
	Balance  int64  `json:"balance"`
	Decimals int    `json:"decimals"`
	Symbol   string `json:"symbol,omitempty"`
}

type tokenBalancesResponse struct {
	Tokens []TokenBalance `json:"tokens"`
	Links  struct {
		Next string `json:"next"`
	} `json:"links"`
}

type TokenInfo struct {
	TokenID         string         `json:"token_id"`
	Name            string         `json:"name"`
	Symbol          string         `json:"symbol"`
	Decimals        string         `json:"decimals"`
	TotalSupply     string         `json:"total_supply"`
	MaxSupply       string         `json:"max_supply"`
	SupplyType      string         `json:"supply_type"`
	Type            string         `json:"type"`
	TreasuryAccount string         `json:"treasury_account_id"`
	Memo            string         `json:"memo"`
	Deleted         bool           `json:"deleted"`
	AdminKey        map[string]any `json:"admin_key"`
	SupplyKey       map[string]any `json:"supply_key"`
	WipeKey         map[string]any `json:"wipe_key"`
	FreezeKey       map[string]any `json:"freeze_key"`
	KycKey          map[string]any `json:"kyc_key"`
	PauseKey        map[string]any `json:"pause_key"`
	FeeScheduleKey  map[string]any `json:"fee_schedule_key"`
}

type Nft struct {
	TokenID          string `json:"token_id"`
	SerialNumber     int64  `json:"serial_number"`
	AccountID        string `json:"account_id"`
	Metadata         string `json:"metadata"`
	Deleted          bool   `json:"deleted"`
	CreatedTimestamp string `json:"created_timestamp"`
}

type nftsResponse struct {
	Nfts  []Nft `json:"nfts"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// TokenAirdrop is a pending or outstanding airdrop row.
type TokenAirdrop struct {
	Amount       int64  `json:"amount"`
	ReceiverID   string `json:"receiver_id"`
	SenderID     string `json:"sender_id"`
	TokenID      string `json:"token_id"`
	SerialNumber *int64 `json:"serial_number"`
}

type airdropsResponse struct {
	Airdrops []TokenAirdrop `json:"airdrops"`
	Links    struct {
		Next string `json:"next"`
	} `json:"links"`
}

type TokenAllowance struct {
	Amount  int64  `json:"amount"`
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	TokenID string `json:"token_id"`
}

type tokenAllowancesResponse struct {
	Allowances []TokenAllowance `json:"allowances"`
	Links      struct {
		Next string `json:"next"`
	} `json:"links"`
}

type ScheduleInfo struct {
	ScheduleID       string         `json:"schedule_id"`
	CreatorAccountID string         `json:"creator_account_id"`
	PayerAccountID   string         `json:"payer_account_id"`
	Deleted          bool           `json:"deleted"`
	Executed         *string        `json:"executed_timestamp"`
	ExpirationTime   *string        `json:"expiration_time"`
	Memo             string         `json:"memo"`
	TransactionBody  string         `json:"transaction_body"`
	WaitForExpiry    bool           `json:"wait_for_expiry"`
	AdminKey         map[string]any `json:"admin_key"`
}

type ContractInfo struct {
	ContractID                    string         `json:"contract_id"`
	EvmAddress                    string         `json:"evm_address"`
	AdminKey                      map[string]any `json:"admin_key"`
	AutoRenewPeriod               int64          `json:"auto_renew_period"`
	CreatedTimestamp              string         `json:"created_timestamp"`
	Deleted                       bool           `json:"deleted"`
	Memo                          string         `json:"memo"`
	MaxAutomaticTokenAssociations int64          `json:"max_automatic_token_associations"`
}

type ExchangeRate struct {
	CentEquivalent int64 `json:"cent_equivalent"`
	HbarEquivalent int64 `json:"hbar_equivalent"`
	ExpirationTime int64 `json:"expiration_time"`
}

type ExchangeRateResponse struct {
	CurrentRate ExchangeRate `json:"current_rate"`
	NextRate    ExchangeRate `json:"next_rate"`
	Timestamp   string       `json:"timestamp"`
}

type TopicMessage struct {
	ConsensusTimestamp string     `json:"consensus_timestamp"`
	ChunkInfo          *ChunkInfo `json:"chunk_info,omitempty"`
	Message            string     `json:"message"`
	PayerAccountID     string     `json:"payer_account_id"`
	RunningHash        string     `json:"running_hash"`
	RunningHashVersion int64      `json:"running_hash_version"`
	SequenceNumber     int64      `json:"sequence_number"`
	TopicID            string     `json:"topic_id"`
}

type ChunkInfo struct {
	InitialTransactionID any `json:"initial_transaction_id,omitempty"`
	Number               int `json:"number,omitempty"`
	Total                int `json:"total,omitempty"`
}

type topicMessagesResponse struct {
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
	Messages []TopicMessage `json:"messages"`
}

type Transaction struct {
	ChargedTxFee       int64           `json:"charged_tx_fee"`
	ConsensusTimestamp string          `json:"consensus_timestamp"`
	EntityID           *string         `json:"entity_id"`
	MaxFee             string          `json:"max_fee"`
	MemoBase64         string          `json:"memo_base64"`
	Name               string          `json:"name"`
	Node               string          `json:"node"`
	Nonce              int64           `json:"nonce"`
	Result             string          `json:"result"`
	TransactionID      string          `json:"transaction_id"`
	Transfers          []Transfer      `json:"transfers"`
	TokenTransfers     []TokenTransfer `json:"token_transfers"`
}

type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type TokenTransfer struct {
	TokenID    string `json:"token_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Links        struct {
		Next string `json:"next"`
	} `json:"links"`
}
