package agentkit

import (
	"encoding/json"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// RawTransactionResponse captures the ledger-side outcome of an executed
// transaction. Entity ID fields are set when the receipt carries them.
type RawTransactionResponse struct {
	Status              string `json:"status"`
	TransactionID       string `json:"transaction_id"`
	AccountID           string `json:"account_id,omitempty"`
	TokenID             string `json:"token_id,omitempty"`
	TopicID             string `json:"topic_id,omitempty"`
	ScheduleID          string `json:"schedule_id,omitempty"`
	ContractID          string `json:"contract_id,omitempty"`
	TopicSequenceNumber uint64 `json:"topic_sequence_number,omitempty"`
}

// NewRawTransactionResponse maps an SDK response/receipt pair to the kit's
// transaction outcome model.
func NewRawTransactionResponse(
	response hedera.TransactionResponse,
	receipt hedera.TransactionReceipt,
) RawTransactionResponse {
	raw := RawTransactionResponse{
		Status:              receipt.Status.String(),
		TransactionID:       response.TransactionID.String(),
		TopicSequenceNumber: receipt.TopicSequenceNumber,
	}

	if receipt.AccountID != nil {
		raw.AccountID = receipt.AccountID.String()
	}
	if receipt.TokenID != nil {
		raw.TokenID = receipt.TokenID.String()
	}
	if receipt.TopicID != nil {
		raw.TopicID = receipt.TopicID.String()
	}
	if receipt.ScheduleID != nil {
		raw.ScheduleID = receipt.ScheduleID.String()
	}
	if receipt.ContractID != nil {
		raw.ContractID = receipt.ContractID.String()
	}

	return raw
}

// ToolResponse is what every tool returns to the agent. Failures are carried
// in Error rather than as Go errors so the agent can read and react to them.
type ToolResponse struct {
	HumanMessage string                  `json:"human_message"`
	Error        string                  `json:"error,omitempty"`
	Raw          *RawTransactionResponse `json:"raw,omitempty"`
	Bytes        []byte                  `json:"bytes,omitempty"`
	Extra        map[string]any          `json:"extra,omitempty"`
}

// ErrorResponse builds a failed ToolResponse with the formatted message in
// both the human message and the error field.
func ErrorResponse(format string, args ...any) ToolResponse {
	message := fmt.Sprintf(format, args...)
	return ToolResponse{HumanMessage: message, Error: message}
}

// Failed reports whether the response carries an error.
func (r ToolResponse) Failed() bool {
	return r.Error != ""
}

// JSON renders the response for return to the calling framework.
func (r ToolResponse) JSON() string {
	encoded, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"human_message":%q,"error":%q}`, r.HumanMessage, err.Error())
	}
	return string(encoded)
}
