// Package token provides the agent tools for the Hedera Token Service:
// fungible and non-fungible token lifecycle, transfers, airdrops, and
// allowances. Display amounts are converted to base units using the token's
// decimals from the mirror node before any transaction is built.
package token
