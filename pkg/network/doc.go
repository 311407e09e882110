// Package network provides network-level agent queries such as the current
// HBAR exchange rate.
package network
