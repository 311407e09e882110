package agentkit

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

// ResolveAccount picks the account a tool should act on: an explicit
// parameter wins, then the context's connected account, then the client
// operator.
func ResolveAccount(explicit string, kit *Context, client *hedera.Client) (string, error) {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed, nil
	}

	if kit != nil && strings.TrimSpace(kit.AccountID) != "" {
		return strings.TrimSpace(kit.AccountID), nil
	}

	if operator := operatorAccountID(client); operator != "" {
		return operator, nil
	}

	return "", fmt.Errorf(
		"no account available: pass an account ID, set the agent context account, or configure a client operator",
	)
}

// ResolveAccountID is ResolveAccount plus SDK parsing.
func ResolveAccountID(explicit string, kit *Context, client *hedera.Client) (hedera.AccountID, error) {
	resolved, err := ResolveAccount(explicit, kit, client)
	if err != nil {
		return hedera.AccountID{}, err
	}

	accountID, err := hedera.AccountIDFromString(resolved)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("invalid account ID %q: %w", resolved, err)
	}
	return accountID, nil
}

// DefaultPublicKey resolves "the connected account's key": the context's
// configured key first, then a mirror-node lookup of the context account,
// then the client operator's key.
func DefaultPublicKey(ctx context.Context, kit *Context, client *hedera.Client) (hedera.PublicKey, error) {
	if kit != nil && strings.TrimSpace(kit.AccountPublicKey) != "" {
		return shared.ParsePublicKey(kit.AccountPublicKey)
	}

	if kit != nil && strings.TrimSpace(kit.AccountID) != "" {
		mirrorClient, err := kit.MirrorClient()
		if err != nil {
			return hedera.PublicKey{}, err
		}
		accountInfo, err := mirrorClient.GetAccount(ctx, kit.AccountID)
		if err != nil {
			return hedera.PublicKey{}, fmt.Errorf("failed to look up account key: %w", err)
		}
		if keyString, ok := accountInfo.Key["key"].(string); ok && keyString != "" {
			return shared.ParsePublicKey(keyString)
		}
	}

	if operatorAccountID(client) != "" {
		return client.GetOperatorPublicKey(), nil
	}

	return hedera.PublicKey{}, fmt.Errorf(
		"no default key available: set the agent context key or configure a client operator",
	)
}

func operatorAccountID(client *hedera.Client) string {
	if client == nil {
		return ""
	}
	operator := client.GetOperatorAccountID()
	if operator.Shard == 0 && operator.Realm == 0 && operator.Account == 0 {
		return ""
	}
	return operator.String()
}
