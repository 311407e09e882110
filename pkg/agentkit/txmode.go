package agentkit

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// Preparable is the method set every concrete SDK transaction exposes for
// the two dispatch paths: direct execution, and freeze-and-serialize.
type Preparable[T any] interface {
	Execute(client *hedera.Client) (hedera.TransactionResponse, error)
	SetTransactionID(transactionID hedera.TransactionID) T
	FreezeWith(client *hedera.Client) (T, error)
	ToBytes() ([]byte, error)
}

// PreparedTransaction is a built transaction ready for mode dispatch. It
// erases the concrete SDK transaction type so strategies stay generic.
type PreparedTransaction struct {
	execute func(client *hedera.Client) (hedera.TransactionResponse, error)
	encode  func(client *hedera.Client, transactionID hedera.TransactionID) ([]byte, error)
}

// Prepare wraps a built SDK transaction for mode dispatch.
func Prepare[T Preparable[T]](transaction T) *PreparedTransaction {
	return &PreparedTransaction{
		execute: transaction.Execute,
		encode: func(client *hedera.Client, transactionID hedera.TransactionID) ([]byte, error) {
			transaction.SetTransactionID(transactionID)
			if _, err := transaction.FreezeWith(client); err != nil {
				return nil, fmt.Errorf("failed to freeze transaction: %w", err)
			}
			return transaction.ToBytes()
		},
	}
}

// PostProcessFunc turns a transaction outcome into the tool's human message.
type PostProcessFunc func(raw RawTransactionResponse) string

// TxModeStrategy disposes of a prepared transaction according to the agent's
// mode.
type TxModeStrategy interface {
	Handle(
		ctx context.Context,
		prepared *PreparedTransaction,
		client *hedera.Client,
		kit *Context,
		postProcess PostProcessFunc,
	) ToolResponse
}

// ExecuteStrategy signs and submits the transaction with the client operator
// and waits for the receipt.
type ExecuteStrategy struct{}

// Handle implements TxModeStrategy.
func (ExecuteStrategy) Handle(
	ctx context.Context,
	prepared *PreparedTransaction,
	client *hedera.Client,
	kit *Context,
	postProcess PostProcessFunc,
) ToolResponse {
	if client == nil {
		return ErrorResponse("autonomous mode requires a Hedera client with an operator")
	}

	response, err := prepared.execute(client)
	if err != nil {
		return ErrorResponse("failed to execute transaction: %v", err)
	}

	receipt, err := response.GetReceipt(client)
	if err != nil {
		return ErrorResponse("transaction %s failed: %v", response.TransactionID.String(), err)
	}

	raw := NewRawTransactionResponse(response, receipt)
	message := fmt.Sprintf("Transaction %s completed with status %s.", raw.TransactionID, raw.Status)
	if postProcess != nil {
		message = postProcess(raw)
	}

	return ToolResponse{HumanMessage: message, Raw: &raw}
}

// ReturnBytesStrategy freezes the transaction under a transaction ID owned
// by the connected account and returns the serialized bytes for external
// signing.
type ReturnBytesStrategy struct{}

// Handle implements TxModeStrategy.
func (ReturnBytesStrategy) Handle(
	ctx context.Context,
	prepared *PreparedTransaction,
	client *hedera.Client,
	kit *Context,
	postProcess PostProcessFunc,
) ToolResponse {
	if kit == nil || kit.AccountID == "" {
		return ErrorResponse("returnBytes mode requires a connected account in the agent context")
	}

	accountID, err := hedera.AccountIDFromString(kit.AccountID)
	if err != nil {
		return ErrorResponse("invalid context account ID %q: %v", kit.AccountID, err)
	}

	transactionID := hedera.TransactionIDGenerate(accountID)
	encoded, err := prepared.encode(client, transactionID)
	if err != nil {
		return ErrorResponse("failed to serialize transaction: %v", err)
	}

	return ToolResponse{
		HumanMessage: fmt.Sprintf(
			"Transaction bytes prepared for account %s to sign and submit.", kit.AccountID,
		),
		Bytes: encoded,
	}
}

// StrategyFor selects the dispatch strategy for the context's mode.
func StrategyFor(kit *Context) TxModeStrategy {
	if kit.EffectiveMode() == AgentModeReturnBytes {
		return ReturnBytesStrategy{}
	}
	return ExecuteStrategy{}
}

// HandleTransaction runs a prepared transaction through the strategy chosen
// by the agent context. Tools call this instead of branching on mode.
func HandleTransaction(
	ctx context.Context,
	prepared *PreparedTransaction,
	client *hedera.Client,
	kit *Context,
	postProcess PostProcessFunc,
) ToolResponse {
	return StrategyFor(kit).Handle(ctx, prepared, client, kit, postProcess)
}
