package agentkit

import (
	"github.com/hashgraph-online/agent-kit-go/pkg/mirror"
)

// AgentMode selects how tools dispose of the transactions they build.
type AgentMode string

const (
	// AgentModeAutonomous signs and executes transactions with the client
	// operator.
	AgentModeAutonomous AgentMode = "autonomous"

	// AgentModeReturnBytes freezes transactions and returns their serialized
	// bytes for the connected account to sign and submit.
	AgentModeReturnBytes AgentMode = "returnBytes"
)

// Context describes the agent on whose behalf tools run.
type Context struct {
	// AccountID is the account the agent acts for. Optional in autonomous
	// mode, required in returnBytes mode.
	AccountID string

	// AccountPublicKey is the account's public key, used as the default when
	// a tool parameter asks for "the connected account's key". When empty the
	// key is looked up from the mirror node or taken from the client
	// operator.
	AccountPublicKey string

	// Mode defaults to autonomous when empty.
	Mode AgentMode

	// Network names the Hedera network (mainnet, testnet, previewnet) and
	// selects the default mirror node. Empty means testnet.
	Network string

	// Mirror overrides the default mirror-node client.
	Mirror *mirror.Client
}

// EffectiveMode returns the context's mode, defaulting to autonomous.
func (c *Context) EffectiveMode() AgentMode {
	if c == nil || c.Mode == "" {
		return AgentModeAutonomous
	}
	return c.Mode
}

// MirrorClient returns the context's mirror client, constructing the default
// one for the context's network on first use.
func (c *Context) MirrorClient() (*mirror.Client, error) {
	if c != nil && c.Mirror != nil {
		return c.Mirror, nil
	}

	network := ""
	if c != nil {
		network = c.Network
	}
	return mirror.NewClient(mirror.Config{Network: network})
}

// Configuration selects which tools an agent is given.
type Configuration struct {
	// Tools is a method allowlist. Empty means every discovered tool.
	Tools []string

	// Plugins replaces the core plugin set when non-empty.
	Plugins []Plugin

	// Context is the agent context handed to every tool factory.
	Context *Context
}
