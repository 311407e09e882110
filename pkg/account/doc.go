// Package account provides the agent tools for Hedera account operations:
// hbar transfers (direct and via allowance), account create/update/delete,
// hbar allowances, signing and deleting scheduled transactions, and the
// account-centric mirror-node queries.
package account
