package evm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// accountToEvmAddress returns the long-zero EVM address of a Hedera account:
// 4 bytes of shard, 8 of realm, and 8 of account number, big endian.
func accountToEvmAddress(accountID hedera.AccountID) common.Address {
	buffer := make([]byte, 20)
	binary.BigEndian.PutUint32(buffer[0:4], uint32(accountID.Shard))
	binary.BigEndian.PutUint64(buffer[4:12], accountID.Realm)
	binary.BigEndian.PutUint64(buffer[12:20], accountID.Account)
	return common.BytesToAddress(buffer)
}

// resolveEvmAddress accepts either a 0x EVM address or a Hedera account ID
// and returns the EVM form. An empty value falls back to the connected
// account or the client operator.
func resolveEvmAddress(raw string, kit *agentkit.Context, client *hedera.Client) (common.Address, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		if !common.IsHexAddress(trimmed) {
			return common.Address{}, fmt.Errorf("invalid EVM address %q", trimmed)
		}
		return common.HexToAddress(trimmed), nil
	}

	accountID, err := agentkit.ResolveAccountID(trimmed, kit, client)
	if err != nil {
		return common.Address{}, err
	}
	return accountToEvmAddress(accountID), nil
}

// parseContractID accepts either a shard.realm.num contract ID or a 0x EVM
// address.
func parseContractID(raw string) (hedera.ContractID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.ContractID{}, fmt.Errorf("contract ID is required")
	}

	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		contractID, err := hedera.ContractIDFromEvmAddress(0, 0, strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X"))
		if err != nil {
			return hedera.ContractID{}, fmt.Errorf("invalid contract address %q: %w", trimmed, err)
		}
		return contractID, nil
	}

	contractID, err := hedera.ContractIDFromString(trimmed)
	if err != nil {
		return hedera.ContractID{}, fmt.Errorf("invalid contract ID %q: %w", trimmed, err)
	}
	return contractID, nil
}
