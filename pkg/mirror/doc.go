// Package mirror provides a Hedera Mirror Node REST client used by the query
// tools in the Hedera Agent Kit. It covers account info and balances, token
// info and relationships, NFTs, airdrops, allowances, topic info and
// messages, contracts, transactions, schedules, and the network exchange
// rate.
//
// The mirror node provides a read-only view of the Hedera public ledger,
// enabling applications to query historical transactions, topic messages,
// and account state without submitting transactions to the network.
//
// # Hedera Mirror Node
//
// Learn more about Hedera: https://docs.hedera.com
package mirror
