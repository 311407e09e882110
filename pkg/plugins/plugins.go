// Package plugins aggregates the core tool plugins shipped with the kit.
package plugins

import (
	"github.com/hashgraph-online/agent-kit-go/pkg/account"
	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/consensus"
	"github.com/hashgraph-online/agent-kit-go/pkg/evm"
	"github.com/hashgraph-online/agent-kit-go/pkg/network"
	"github.com/hashgraph-online/agent-kit-go/pkg/token"
)

// Core returns every core plugin in registration order. Pass the slice to
// agentkit.NewAgentAPI, or filter it before passing when only a subset of
// tools should be exposed.
func Core() []agentkit.Plugin {
	return []agentkit.Plugin{
		account.Plugin(),
		account.QueryPlugin(),
		token.Plugin(),
		token.QueryPlugin(),
		consensus.Plugin(),
		consensus.QueryPlugin(),
		evm.Plugin(),
		evm.QueryPlugin(),
		network.QueryPlugin(),
	}
}
