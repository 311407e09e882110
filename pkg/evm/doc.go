// Package evm provides the agent tools for ERC-20 and ERC-721 contracts on
// Hedera. Deployments go through the network's factory contracts, and calls
// are encoded with go-ethereum's ABI package before being wrapped in a
// ContractExecuteTransaction.
package evm
