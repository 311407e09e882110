package consensus

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

func parseTopicID(raw string) (hedera.TopicID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.TopicID{}, fmt.Errorf("topic ID is required")
	}
	topicID, err := hedera.TopicIDFromString(trimmed)
	if err != nil {
		return hedera.TopicID{}, fmt.Errorf("invalid topic ID %q: %w", trimmed, err)
	}
	return topicID, nil
}

func normalizeCreateTopic(
	ctx context.Context,
	params CreateTopicParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*CreateTopicTxParams, error) {
	defaultKey := func() (hedera.PublicKey, error) {
		return agentkit.DefaultPublicKey(ctx, kit, client)
	}

	adminKey, err := params.AdminKey.Resolve(defaultKey)
	if err != nil {
		return nil, err
	}
	submitKey, err := params.SubmitKey.Resolve(defaultKey)
	if err != nil {
		return nil, err
	}

	normalized := &CreateTopicTxParams{
		Memo:      params.TopicMemo,
		AdminKey:  adminKey,
		SubmitKey: submitKey,
	}

	if strings.TrimSpace(params.AutoRenewAccountID) != "" {
		autoRenew, parseErr := hedera.AccountIDFromString(strings.TrimSpace(params.AutoRenewAccountID))
		if parseErr != nil {
			return nil, fmt.Errorf(
				"invalid auto renew account ID %q: %w", params.AutoRenewAccountID, parseErr,
			)
		}
		normalized.AutoRenewAccount = &autoRenew
	}

	return normalized, nil
}

type submitMessageNormalized struct {
	TopicID  hedera.TopicID
	Message  []byte
	Memo     string
	Schedule *agentkit.ScheduleOptions
}

func normalizeSubmitMessage(
	ctx context.Context,
	params SubmitMessageParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*submitMessageNormalized, error) {
	topicID, err := parseTopicID(params.TopicID)
	if err != nil {
		return nil, err
	}
	if params.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	schedule, err := params.SchedulingParams.Normalize(ctx, kit, client)
	if err != nil {
		return nil, err
	}

	return &submitMessageNormalized{
		TopicID:  topicID,
		Message:  []byte(params.Message),
		Memo:     params.TransactionMemo,
		Schedule: schedule,
	}, nil
}

func normalizeUpdateTopic(
	ctx context.Context,
	params UpdateTopicParams,
	kit *agentkit.Context,
	client *hedera.Client,
) (*UpdateTopicTxParams, error) {
	topicID, err := parseTopicID(params.TopicID)
	if err != nil {
		return nil, err
	}
	if params.TopicMemo == nil && !params.SubmitKey.IsSet() {
		return nil, fmt.Errorf("at least one field to update is required")
	}

	submitKey, err := params.SubmitKey.Resolve(func() (hedera.PublicKey, error) {
		return agentkit.DefaultPublicKey(ctx, kit, client)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateTopicTxParams{
		TopicID:   topicID,
		Memo:      params.TopicMemo,
		SubmitKey: submitKey,
	}, nil
}
