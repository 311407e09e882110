package consensus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/mirror"
)

// Query tool method identifiers.
const (
	MethodGetTopicInfo     = "get_topic_info_query"
	MethodGetTopicMessages = "get_topic_messages_query"
)

// QueryPlugin returns the consensus query plugin backed by the mirror node.
func QueryPlugin() agentkit.Plugin {
	return agentkit.Plugin{
		Name:        "core-consensus-query",
		Version:     "1.0.0",
		Description: "Mirror-node queries for topics and their messages.",
		Tools: func(kit *agentkit.Context) []agentkit.Tool {
			return []agentkit.Tool{
				getTopicInfoTool(kit),
				getTopicMessagesTool(kit),
			}
		},
	}
}

type topicInfoParams struct {
	TopicID string `json:"topic_id"`
}

type topicMessagesParams struct {
	TopicID   string `json:"topic_id"`
	Limit     int    `json:"limit,omitempty"`
	Order     string `json:"order,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

func getTopicInfoTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetTopicInfo,
		Name:   "Get Topic Info",
		Description: agentkit.DescribeContext(kit) +
			" Looks up a topic's details on the mirror node. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"topic_id": agentkit.String("Topic to look up, in shard.realm.num format."),
		}, "topic_id"),
		Execute: executeGetTopicInfo,
	}
}

func executeGetTopicInfo(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params topicInfoParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	topicID, err := parseTopicID(params.TopicID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	info, err := mirrorClient.GetTopicInfo(ctx, topicID.String())
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch topic %s: %v", topicID, err)
	}

	message := fmt.Sprintf("Topic %s", info.TopicID)
	if info.Memo != "" {
		message += fmt.Sprintf(" (memo: %s)", info.Memo)
	}
	if info.SubmitKey != nil {
		message += " has a submit key restricting who can post"
	} else {
		message += " is open for anyone to post"
	}
	message += "."

	return agentkit.ToolResponse{
		HumanMessage: message,
		Extra:        map[string]any{"topic": info},
	}
}

func getTopicMessagesTool(kit *agentkit.Context) agentkit.Tool {
	return agentkit.Tool{
		Method: MethodGetTopicMessages,
		Name:   "Get Topic Messages",
		Description: agentkit.DescribeContext(kit) +
			" Fetches messages from a topic, optionally filtered by consensus timestamp. " +
			agentkit.ParameterGuidance(),
		Parameters: agentkit.Object(map[string]*agentkit.Schema{
			"topic_id":   agentkit.String("Topic to read, in shard.realm.num format."),
			"limit":      agentkit.Integer("Maximum number of messages to return."),
			"order":      agentkit.String("Sort order, asc or desc."),
			"start_time": agentkit.String("Inclusive lower bound on consensus timestamp, seconds.nanoseconds."),
			"end_time":   agentkit.String("Inclusive upper bound on consensus timestamp, seconds.nanoseconds."),
		}, "topic_id"),
		Execute: executeGetTopicMessages,
	}
}

func executeGetTopicMessages(
	ctx context.Context,
	client *hedera.Client,
	kit *agentkit.Context,
	raw json.RawMessage,
) agentkit.ToolResponse {
	var params topicMessagesParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return agentkit.ErrorResponse("invalid query parameters: %v", err)
	}

	topicID, err := parseTopicID(params.TopicID)
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	mirrorClient, err := kit.MirrorClient()
	if err != nil {
		return agentkit.ErrorResponse("%v", err)
	}

	messages, err := mirrorClient.GetTopicMessages(ctx, topicID.String(), mirror.MessageQueryOptions{
		Limit:     params.Limit,
		Order:     params.Order,
		StartTime: params.StartTime,
		EndTime:   params.EndTime,
	})
	if err != nil {
		return agentkit.ErrorResponse("failed to fetch messages of topic %s: %v", topicID, err)
	}

	if len(messages) == 0 {
		return agentkit.ToolResponse{
			HumanMessage: fmt.Sprintf("Topic %s has no matching messages.", topicID),
		}
	}

	lines := make([]string, 0, len(messages))
	for _, message := range messages {
		payload, decodeErr := mirror.DecodeMessageData(message)
		text := message.Message
		if decodeErr == nil {
			text = string(payload)
		}
		lines = append(lines, fmt.Sprintf("#%d: %s", message.SequenceNumber, text))
	}

	return agentkit.ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Topic %s messages:\n%s", topicID, strings.Join(lines, "\n"),
		),
		Extra: map[string]any{"messages": messages},
	}
}
