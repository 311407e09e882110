package cli

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/shared"
)

type hederaClient struct {
	client *hedera.Client
}

// buildClient constructs the network client and wires in operator
// credentials from the environment. Autonomous mode fails without them;
// returnBytes mode proceeds unsigned since the connected account signs.
func (s *runtimeState) buildClient(kit *agentkit.Context) (*hederaClient, error) {
	client, err := shared.NewHederaClient(s.config.Network)
	if err != nil {
		return nil, err
	}

	operator, err := shared.OperatorConfigFromEnv()
	if err != nil {
		if kit.EffectiveMode() == agentkit.AgentModeAutonomous {
			return nil, fmt.Errorf("autonomous mode requires operator credentials: %w", err)
		}
		return &hederaClient{client: client}, nil
	}

	operatorID, err := hedera.AccountIDFromString(operator.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID %q: %v", operator.AccountID, err)
	}
	operatorKey, err := shared.ParsePrivateKey(operator.PrivateKey)
	if err != nil {
		return nil, err
	}
	client.SetOperator(operatorID, operatorKey)

	if kit.AccountID == "" {
		kit.AccountID = operator.AccountID
	}

	return &hederaClient{client: client}, nil
}
