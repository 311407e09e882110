// Package agentkit provides the core model of the Hedera Agent Kit: tools,
// plugins, tool discovery, and the runtime that executes tool calls against
// the Hedera network.
//
// A Tool pairs a framework-neutral JSON schema with an execute function. A
// Plugin groups related tools and produces them for a given agent Context.
// The Context carries the connected account and the agent's transaction
// mode: in autonomous mode transactions are signed and executed with the
// client operator, while in returnBytes mode they are frozen and serialized
// so the connected account can sign and submit them elsewhere.
//
// Framework adapters (see the adapters directory) wrap an AgentAPI so that
// LangChain or GenAI agents can invoke the tools.
package agentkit
