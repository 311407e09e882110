package evm

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildContractExecuteTx builds a contract call with pre-encoded calldata.
func BuildContractExecuteTx(
	contractID hedera.ContractID,
	gas uint64,
	calldata []byte,
) *hedera.ContractExecuteTransaction {
	return hedera.NewContractExecuteTransaction().
		SetContractID(contractID).
		SetGas(gas).
		SetFunctionParameters(calldata)
}
