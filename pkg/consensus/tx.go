package consensus

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildCreateTopicTx builds a topic create with the optional keys and memo.
func BuildCreateTopicTx(params CreateTopicTxParams) *hedera.TopicCreateTransaction {
	transaction := hedera.NewTopicCreateTransaction()

	if params.Memo != "" {
		transaction.SetTopicMemo(params.Memo)
	}
	if params.AdminKey != nil {
		transaction.SetAdminKey(*params.AdminKey)
	}
	if params.SubmitKey != nil {
		transaction.SetSubmitKey(*params.SubmitKey)
	}
	if params.AutoRenewAccount != nil {
		transaction.SetAutoRenewAccountID(*params.AutoRenewAccount)
	}

	return transaction
}

// BuildSubmitMessageTx builds a message submission to the topic.
func BuildSubmitMessageTx(topicID hedera.TopicID, message []byte, memo string) *hedera.TopicMessageSubmitTransaction {
	transaction := hedera.NewTopicMessageSubmitTransaction().
		SetTopicID(topicID).
		SetMessage(message)

	if memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction
}

// BuildUpdateTopicTx builds a topic update that only touches the fields
// present in the params.
func BuildUpdateTopicTx(params UpdateTopicTxParams) *hedera.TopicUpdateTransaction {
	transaction := hedera.NewTopicUpdateTransaction().SetTopicID(params.TopicID)

	if params.Memo != nil {
		transaction.SetTopicMemo(*params.Memo)
	}
	if params.SubmitKey != nil {
		transaction.SetSubmitKey(*params.SubmitKey)
	}

	return transaction
}

// BuildDeleteTopicTx builds and returns the configured topic delete
// transaction.
func BuildDeleteTopicTx(topicID hedera.TopicID) *hedera.TopicDeleteTransaction {
	return hedera.NewTopicDeleteTransaction().SetTopicID(topicID)
}
