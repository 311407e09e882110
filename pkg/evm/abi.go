package evm

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Factory contracts deployed on testnet that spawn ERC-20 and ERC-721
// tokens owned by the caller.
const (
	ERC20FactoryContractID  = "0.0.6471814"
	ERC721FactoryContractID = "0.0.6510666"
)

// Default gas limits for factory deployments and token calls.
const (
	DeployGasLimit   = 3_000_000
	TransferGasLimit = 100_000
	MintGasLimit     = 350_000
)

const erc20FactoryABI = `[
	{
		"name": "deployToken",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "name", "type": "string"},
			{"name": "symbol", "type": "string"},
			{"name": "decimals", "type": "uint8"},
			{"name": "initialSupply", "type": "uint256"}
		],
		"outputs": [{"name": "token", "type": "address"}]
	}
]`

const erc721FactoryABI = `[
	{
		"name": "deployToken",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "name", "type": "string"},
			{"name": "symbol", "type": "string"},
			{"name": "baseURI", "type": "string"}
		],
		"outputs": [{"name": "token", "type": "address"}]
	}
]`

const erc20ABI = `[
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`

const erc721ABI = `[
	{
		"name": "safeMint",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "to", "type": "address"}],
		"outputs": []
	},
	{
		"name": "transferFrom",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "from", "type": "address"},
			{"name": "to", "type": "address"},
			{"name": "tokenId", "type": "uint256"}
		],
		"outputs": []
	}
]`

var (
	abiOnce sync.Once
	abiErr  error

	parsedERC20Factory  abi.ABI
	parsedERC721Factory abi.ABI
	parsedERC20         abi.ABI
	parsedERC721        abi.ABI
)

func loadABIs() error {
	abiOnce.Do(func() {
		parse := func(source string) abi.ABI {
			if abiErr != nil {
				return abi.ABI{}
			}
			parsed, err := abi.JSON(strings.NewReader(source))
			if err != nil {
				abiErr = fmt.Errorf("failed to parse contract ABI: %w", err)
				return abi.ABI{}
			}
			return parsed
		}
		parsedERC20Factory = parse(erc20FactoryABI)
		parsedERC721Factory = parse(erc721FactoryABI)
		parsedERC20 = parse(erc20ABI)
		parsedERC721 = parse(erc721ABI)
	})
	return abiErr
}

func packDeployERC20(name, symbol string, decimals uint8, initialSupply *big.Int) ([]byte, error) {
	if err := loadABIs(); err != nil {
		return nil, err
	}
	return parsedERC20Factory.Pack("deployToken", name, symbol, decimals, initialSupply)
}

func packDeployERC721(name, symbol, baseURI string) ([]byte, error) {
	if err := loadABIs(); err != nil {
		return nil, err
	}
	return parsedERC721Factory.Pack("deployToken", name, symbol, baseURI)
}

func packTransferERC20(to common.Address, amount *big.Int) ([]byte, error) {
	if err := loadABIs(); err != nil {
		return nil, err
	}
	return parsedERC20.Pack("transfer", to, amount)
}

func packMintERC721(to common.Address) ([]byte, error) {
	if err := loadABIs(); err != nil {
		return nil, err
	}
	return parsedERC721.Pack("safeMint", to)
}

func packTransferERC721(from, to common.Address, tokenID *big.Int) ([]byte, error) {
	if err := loadABIs(); err != nil {
		return nil, err
	}
	return parsedERC721.Pack("transferFrom", from, to, tokenID)
}
