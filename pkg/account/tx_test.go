package account

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func mustAccountID(t *testing.T, raw string) hedera.AccountID {
	t.Helper()
	accountID, err := hedera.AccountIDFromString(raw)
	if err != nil {
		t.Fatalf("failed to parse account ID %q: %v", raw, err)
	}
	return accountID
}

func TestBuildTransferHbarTxBalances(t *testing.T) {
	source := mustAccountID(t, "0.0.5005")
	first := mustAccountID(t, "0.0.1001")
	second := mustAccountID(t, "0.0.1002")

	transaction := BuildTransferHbarTx(TransferHbarTxParams{
		Transfers: []ResolvedHbarTransfer{
			{AccountID: first, Tinybars: 100},
			{AccountID: second, Tinybars: 250},
		},
		Source: source,
		Memo:   "payout",
	})

	transfers := transaction.GetHbarTransfers()
	if got := transfers[source].AsTinybar(); got != -350 {
		t.Fatalf("expected source debit -350, got %d", got)
	}
	if got := transfers[first].AsTinybar(); got != 100 {
		t.Fatalf("expected credit 100, got %d", got)
	}
	if got := transfers[second].AsTinybar(); got != 250 {
		t.Fatalf("expected credit 250, got %d", got)
	}
	if transaction.GetTransactionMemo() != "payout" {
		t.Fatalf("unexpected memo %q", transaction.GetTransactionMemo())
	}
}

func TestBuildCreateAccountTx(t *testing.T) {
	private, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	transaction := BuildCreateAccountTx(CreateAccountTxParams{
		Key:                           private.PublicKey(),
		InitialBalanceTinybars:        100_000_000,
		Memo:                          "agent account",
		MaxAutomaticTokenAssociations: 5,
	})

	if got := transaction.GetInitialBalance().AsTinybar(); got != 100_000_000 {
		t.Fatalf("unexpected initial balance %d", got)
	}
	if transaction.GetAccountMemo() != "agent account" {
		t.Fatalf("unexpected memo %q", transaction.GetAccountMemo())
	}
	if transaction.GetMaxAutomaticTokenAssociations() != 5 {
		t.Fatalf("unexpected max associations %d", transaction.GetMaxAutomaticTokenAssociations())
	}
}

func TestBuildUpdateAccountTxOnlyTouchesSetFields(t *testing.T) {
	accountID := mustAccountID(t, "0.0.4004")
	memo := "renamed"

	transaction := BuildUpdateAccountTx(UpdateAccountTxParams{
		AccountID: accountID,
		Memo:      &memo,
	})

	if transaction.GetAccountID().Account != 4004 {
		t.Fatalf("unexpected account ID %s", transaction.GetAccountID().String())
	}
	if transaction.GetAccountMemo() != "renamed" {
		t.Fatalf("unexpected memo %q", transaction.GetAccountMemo())
	}
}

func TestBuildDeleteAccountTx(t *testing.T) {
	transaction := BuildDeleteAccountTx(
		mustAccountID(t, "0.0.4004"), mustAccountID(t, "0.0.5005"),
	)

	if transaction.GetAccountID().Account != 4004 {
		t.Fatalf("unexpected account ID %s", transaction.GetAccountID().String())
	}
	if transaction.GetTransferAccountID().Account != 5005 {
		t.Fatalf("unexpected transfer account %s", transaction.GetTransferAccountID().String())
	}
}

func TestBuildScheduleSignTx(t *testing.T) {
	scheduleID, err := hedera.ScheduleIDFromString("0.0.3003")
	if err != nil {
		t.Fatalf("failed to parse schedule ID: %v", err)
	}

	transaction := BuildScheduleSignTx(scheduleID)
	if transaction.GetScheduleID().Schedule != 3003 {
		t.Fatalf("unexpected schedule ID %s", transaction.GetScheduleID().String())
	}
}
