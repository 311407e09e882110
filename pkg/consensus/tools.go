package consensus

import (
	"context"
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// Tool method identifiers.
const (
	MethodCreateTopic        = "create_topic"
	MethodSubmitTopicMessage = "submit_topic_message"
	MethodUpdateTopic        = "update_topic"
	MethodDeleteTopic        = "delete_topic"
)

// Plugin returns the core consensus plugin.
func Plugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-consensus",
		Version:     "1.0.0",
		Description: "Topic lifecycle and message submission on the Hedera Consensus Service.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				createTopicTool(kit),
				submitMessageTool(kit),
				updateTopicTool(kit),
				deleteTopicTool(kit),
			}
		},
	}
}

func createTopicTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodCreateTopic,
		Name:   "Create Topic",
		Description: agentkit.DescribeContext(kit) +
			" Creates a consensus topic. Without a submit key anyone can post to it. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"topic_memo": agentkit.String("Optional memo stored on the topic."),
			"admin_key": agentkit.String(
				"Optional admin key, or true to use the connected account's key.",
			),
			"submit_key": agentkit.String(
				"Optional submit key restricting who can post, or true to use the connected account's key.",
			),
			"auto_renew_account_id": agentkit.String(
				"Optional account that pays the topic's renewal fees.",
			),
		}),
		Execute: executeCreateTopic,
	}
}

func executeCreateTopic(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params CreateTopicParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid create_topic parameters: %v", err)
	}

	normalized, err := normalizeCreateTopic(ctx, params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildCreateTopicTx(*normalized))
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		if raw.TopicID != "" {
			return fmt.Sprintf("Topic %s created.", raw.TopicID)
		}
		return fmt.Sprintf("Topic create transaction %s completed with status %s.", raw.TransactionID, raw.Status)
	})
}

func submitMessageTool(kit *agentkit.Context) agentkit.Tool {
	properties := map[string]*agentkit.Schema{
		"topic_id":         agentkit.String("Topic to post to, in shard.realm.num format."),
		"message":          agentkit.String("Message payload to submit."),
		"transaction_memo": agentkit.String("Optional memo attached to the transaction."),
	}
	for name, property := range agentkit.SchedulingSchema() {
		properties[name] = property
	}

	return agentkit.Tool{
		Method: MethodSubmitTopicMessage,
		Name:   "Submit Topic Message",
		Description: agentkit.DescribeContext(kit) +
			" Submits a message to a consensus topic. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(properties, "topic_id", "message"),
		Execute:    executeSubmitMessage,
	}
}

func executeSubmitMessage(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params SubmitMessageParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid submit_topic_message parameters: %v", err)
	}

	normalized, err := normalizeSubmitMessage(ctx, params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	transaction := BuildSubmitMessageTx(normalized.TopicID, normalized.Message, normalized.Memo)

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

	topic := normalized.TopicID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		if raw.ScheduleID != "" {
			return fmt.Sprintf("Scheduled message to topic %s created with schedule ID %s.", topic, raw.ScheduleID)
		}
		if raw.TopicSequenceNumber > 0 {
			return fmt.Sprintf("Message submitted to topic %s as sequence number %d.", topic, raw.TopicSequenceNumber)
		}
		return fmt.Sprintf("Message submitted to topic %s with status %s.", topic, raw.Status)
	})
}

func updateTopicTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodUpdateTopic,
		Name:   "Update Topic",
		Description: agentkit.DescribeContext(kit) +
			" Updates a topic's memo or submit key; requires its admin key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"topic_id":   agentkit.String("Topic to update, in shard.realm.num format."),
			"topic_memo": agentkit.String("New topic memo."),
			"submit_key": agentkit.String(
				"New submit key, or true to use the connected account's key.",
			),
		}, "topic_id"),
		Execute: executeUpdateTopic,
	}
}

func executeUpdateTopic(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params UpdateTopicParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid update_topic parameters: %v", err)
	}

	normalized, err := normalizeUpdateTopic(ctx, params, kit, client)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildUpdateTopicTx(*normalized))
	topic := normalized.TopicID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Topic %s updated with status %s.", topic, raw.Status)
	})
}

func deleteTopicTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodDeleteTopic,
		Name:   "Delete Topic",
		Description: agentkit.DescribeContext(kit) +
			" Deletes a topic; requires its admin key. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"topic_id": agentkit.String("Topic to delete, in shard.realm.num format."),
		}, "topic_id"),
		Execute: executeDeleteTopic,
	}
}

func executeDeleteTopic(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params DeleteTopicParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid delete_topic parameters: %v", err)
	}

	topicID, err := parseTopicID(params.TopicID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	prepared := agentkit.Prepare(BuildDeleteTopicTx(topicID))
	topic := topicID.String()
	return agentkit.HandleTransaction(ctx, prepared, client, kit, func(raw agentkit.RawTransactionResponse) string {
		return fmt.Sprintf("Topic %s deleted with status %s.", topic, raw.Status)
	})
}
