package agentkit

import (
	"context"
	"fmt"
	"strings"
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// SchedulingParams are the shared parameters that let any transaction tool
// wrap its transaction in a schedule instead of submitting it directly.
type SchedulingParams struct {
	IsScheduled    bool     `json:"is_scheduled,omitempty"`
	AdminKey       KeyInput `json:"schedule_admin_key,omitempty"`
	PayerAccountID string   `json:"schedule_payer_account_id,omitempty"`
	ExpirationTime string   `json:"schedule_expiration_time,omitempty"`
	WaitForExpiry  bool     `json:"schedule_wait_for_expiry,omitempty"`
}

// ScheduleOptions is the normalized form of SchedulingParams. A nil value
// means the transaction is not scheduled.
type ScheduleOptions struct {
	AdminKey       *hedera.PublicKey
	PayerAccountID *hedera.AccountID
	ExpirationTime *time.Time
	WaitForExpiry  bool
}

// SchedulingSchema returns the schema properties for SchedulingParams, to be
// merged into a transaction tool's parameter schema.
func SchedulingSchema() map[string]*Schema {
	return map[string]*Schema{
		"is_scheduled": Boolean(
			"Set to true to wrap the transaction in a schedule instead of submitting it directly.",
		),
		"schedule_admin_key": String(
			"Public key allowed to delete the schedule before it executes. " +
				"Pass true to use the connected account's key.",
		),
		"schedule_payer_account_id": String(
			"Account that pays for the scheduled transaction when it executes.",
		),
		"schedule_expiration_time": String(
			"ISO-8601 timestamp after which the unexecuted schedule expires.",
		),
		"schedule_wait_for_expiry": Boolean(
			"When true the transaction executes at expiration even if fully signed earlier.",
		),
	}
}

// Normalize resolves the scheduling parameters. It returns nil when the
// transaction is not scheduled.
func (p SchedulingParams) Normalize(
	ctx context.Context,
	kit *Context,
	client *hedera.Client,
) (*ScheduleOptions, error) {
	if !p.IsScheduled {
		return nil, nil
	}

	options := &ScheduleOptions{WaitForExpiry: p.WaitForExpiry}

	adminKey, err := p.AdminKey.Resolve(func() (hedera.PublicKey, error) {
		return DefaultPublicKey(ctx, kit, client)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule admin key: %w", err)
	}
	options.AdminKey = adminKey

	if payer := strings.TrimSpace(p.PayerAccountID); payer != "" {
		payerID, parseErr := hedera.AccountIDFromString(payer)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid schedule payer account ID %q: %w", payer, parseErr)
		}
		options.PayerAccountID = &payerID
	}

	if expiration := strings.TrimSpace(p.ExpirationTime); expiration != "" {
		expirationTime, parseErr := time.Parse(time.RFC3339, expiration)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid schedule expiration time %q: %w", expiration, parseErr)
		}
		options.ExpirationTime = &expirationTime
	}

	return options, nil
}

// WrapInSchedule wraps the inner transaction in a ScheduleCreateTransaction
// configured from the options.
func WrapInSchedule(
	inner hedera.ITransaction,
	options *ScheduleOptions,
) (*hedera.ScheduleCreateTransaction, error) {
	scheduleTransaction, err := hedera.NewScheduleCreateTransaction().SetScheduledTransaction(inner)
	if err != nil {
		return nil, fmt.Errorf("failed to set scheduled transaction: %w", err)
	}

	if options != nil {
		if options.AdminKey != nil {
			scheduleTransaction.SetAdminKey(*options.AdminKey)
		}
		if options.PayerAccountID != nil {
			scheduleTransaction.SetPayerAccountID(*options.PayerAccountID)
		}
		if options.ExpirationTime != nil {
			scheduleTransaction.SetExpirationTime(*options.ExpirationTime)
		}
		if options.WaitForExpiry {
			scheduleTransaction.SetWaitForExpiry(true)
		}
	}

	return scheduleTransaction, nil
}
