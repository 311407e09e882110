// Package consensus provides the agent tools for the Hedera Consensus
// Service: topic lifecycle, message submission, and mirror-node message
// queries.
package consensus
