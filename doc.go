// The Hedera Agent Kit for Go exposes Hedera ledger operations as tools an
// LLM agent can call. It covers account, token, consensus, and smart
// contract operations, plus mirror-node queries, behind a single tool API
// with JSON-schema described parameters.
//
// # Packages
//
// The core packages are:
//
//   - pkg/agentkit: the tool model, plugin discovery, and transaction-mode
//     dispatch (autonomous execution vs. returning unsigned bytes)
//   - pkg/account, pkg/token, pkg/consensus, pkg/evm, pkg/network: the core
//     tool plugins
//   - pkg/mirror: a mirror-node REST client used by the query tools
//   - pkg/plugins: the aggregated core plugin set
//   - adapters/langchaingo, adapters/adk: framework adapters
//   - pkg/cli: the agentkit command line tool
//
// # Installation
//
//	go get github.com/hashgraph-online/agent-kit-go@latest
package agent_kit_go
