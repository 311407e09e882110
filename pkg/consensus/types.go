package consensus

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// CreateTopicParams are the raw parameters of create_topic.
type CreateTopicParams struct {
	TopicMemo          string            `json:"topic_memo,omitempty"`
	AdminKey           agentkit.KeyInput `json:"admin_key,omitempty"`
	SubmitKey          agentkit.KeyInput `json:"submit_key,omitempty"`
	AutoRenewAccountID string            `json:"auto_renew_account_id,omitempty"`
}

// SubmitMessageParams are the raw parameters of submit_topic_message.
type SubmitMessageParams struct {
	agentkit.SchedulingParams

	TopicID         string `json:"topic_id"`
	Message         string `json:"message"`
	TransactionMemo string `json:"transaction_memo,omitempty"`
}

// UpdateTopicParams are the raw parameters of update_topic. Pointer fields
// distinguish "leave unchanged" from an explicit empty value.
type UpdateTopicParams struct {
	TopicID   string            `json:"topic_id"`
	TopicMemo *string           `json:"topic_memo,omitempty"`
	SubmitKey agentkit.KeyInput `json:"submit_key,omitempty"`
}

// DeleteTopicParams are the raw parameters of delete_topic.
type DeleteTopicParams struct {
	TopicID string `json:"topic_id"`
}

// CreateTopicTxParams is the normalized form of CreateTopicParams.
type CreateTopicTxParams struct {
	Memo             string
	AdminKey         *hedera.PublicKey
	SubmitKey        *hedera.PublicKey
	AutoRenewAccount *hedera.AccountID
}

// UpdateTopicTxParams is the normalized form of UpdateTopicParams.
type UpdateTopicTxParams struct {
	TopicID   hedera.TopicID
	Memo      *string
	SubmitKey *hedera.PublicKey
}
