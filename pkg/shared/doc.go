// Package shared provides common utilities used across the Hedera Agent Kit
// for Go. It includes network normalization, operator environment variable
// loading, Hedera client construction, key parsing helpers, and conversions
// between display units and on-ledger base units (hbar/tinybar and token
// amounts).
//
// This package is typically used internally by the other kit packages but is
// also available for direct use when building custom integrations with the
// Hedera public ledger.
//
// # Environment Variables
//
// The shared package supports loading operator credentials from environment
// variables or .env files. See the kit README for the full list of supported
// variable names.
package shared
