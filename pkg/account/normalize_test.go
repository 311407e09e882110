package account

import (
	"context"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

func testContext() *agentkit.Context {
	return &agentkit.Context{AccountID: "0.0.5005"}
}

func TestNormalizeTransferHbarDefaultsSource(t *testing.T) {
	params := TransferHbarParams{
		Transfers: []HbarTransfer{{AccountID: "0.0.1001", Amount: 1.5}},
	}

	normalized, err := normalizeTransferHbar(context.Background(), params, testContext(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.Tx.Source.Account != 5005 {
		t.Fatalf("expected source 0.0.5005, got %s", normalized.Tx.Source.String())
	}
	if normalized.Tx.Transfers[0].Tinybars != 150_000_000 {
		t.Fatalf("expected 150000000 tinybars, got %d", normalized.Tx.Transfers[0].Tinybars)
	}
	if normalized.Schedule != nil {
		t.Fatal("expected no schedule options")
	}
}

func TestNormalizeTransferHbarExplicitSource(t *testing.T) {
	params := TransferHbarParams{
		Transfers:       []HbarTransfer{{AccountID: "0.0.1001", Amount: 1}},
		SourceAccountID: "0.0.7007",
	}

	normalized, err := normalizeTransferHbar(context.Background(), params, testContext(), nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.Tx.Source.Account != 7007 {
		t.Fatalf("expected source 0.0.7007, got %s", normalized.Tx.Source.String())
	}
	if !normalized.Tx.Approved {
		t.Fatal("expected approved transfer")
	}
}

func TestNormalizeTransferHbarRejectsNonPositive(t *testing.T) {
	for _, amount := range []float64{0, -1} {
		params := TransferHbarParams{
			Transfers: []HbarTransfer{{AccountID: "0.0.1001", Amount: amount}},
		}
		if _, err := normalizeTransferHbar(context.Background(), params, testContext(), nil, false); err == nil {
			t.Fatalf("expected error for amount %v", amount)
		}
	}
}

func TestNormalizeTransferHbarRequiresTransfers(t *testing.T) {
	if _, err := normalizeTransferHbar(
		context.Background(), TransferHbarParams{}, testContext(), nil, false,
	); err == nil {
		t.Fatal("expected error for empty transfer list")
	}
}

func TestNormalizeTransferHbarBadRecipient(t *testing.T) {
	params := TransferHbarParams{
		Transfers: []HbarTransfer{{AccountID: "garbage", Amount: 1}},
	}
	if _, err := normalizeTransferHbar(context.Background(), params, testContext(), nil, false); err == nil {
		t.Fatal("expected error for malformed recipient")
	}
}

func TestNormalizeTransferHbarScheduled(t *testing.T) {
	params := TransferHbarParams{
		Transfers: []HbarTransfer{{AccountID: "0.0.1001", Amount: 1}},
		SchedulingParams: agentkit.SchedulingParams{
			IsScheduled:    true,
			PayerAccountID: "0.0.9009",
		},
	}

	normalized, err := normalizeTransferHbar(context.Background(), params, testContext(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.Schedule == nil || normalized.Schedule.PayerAccountID == nil {
		t.Fatalf("expected schedule options with payer, got %+v", normalized.Schedule)
	}
}

func TestNormalizeCreateAccountExplicitKey(t *testing.T) {
	private, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	params := CreateAccountParams{
		PublicKey:      agentkit.ExplicitKey(private.PublicKey().String()),
		InitialBalance: 2,
		AccountMemo:    "new account",
	}

	normalized, normErr := normalizeCreateAccount(context.Background(), params, nil, nil)
	if normErr != nil {
		t.Fatalf("unexpected error: %v", normErr)
	}
	if normalized.InitialBalanceTinybars != 200_000_000 {
		t.Fatalf("expected 200000000 tinybars, got %d", normalized.InitialBalanceTinybars)
	}
	if normalized.Key.String() != private.PublicKey().String() {
		t.Fatal("expected explicit key to be kept")
	}
}

func TestNormalizeCreateAccountNegativeBalance(t *testing.T) {
	params := CreateAccountParams{InitialBalance: -1}
	if _, err := normalizeCreateAccount(context.Background(), params, nil, nil); err == nil {
		t.Fatal("expected error for negative balance")
	}
}

func TestNormalizeCreateAccountContextKeyFallback(t *testing.T) {
	private, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	kit := &agentkit.Context{AccountPublicKey: private.PublicKey().String()}

	normalized, normErr := normalizeCreateAccount(context.Background(), CreateAccountParams{}, kit, nil)
	if normErr != nil {
		t.Fatalf("unexpected error: %v", normErr)
	}
	if normalized.Key.String() != private.PublicKey().String() {
		t.Fatal("expected the context key as default")
	}
}

func TestNormalizeUpdateAccountStakedID(t *testing.T) {
	staked := "0.0.800"
	params := UpdateAccountParams{StakedAccountID: &staked}

	normalized, err := normalizeUpdateAccount(params, testContext(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.StakedAccountID == nil || normalized.StakedAccountID.Account != 800 {
		t.Fatalf("unexpected staked account: %+v", normalized.StakedAccountID)
	}
}

func TestNormalizeUpdateAccountBadStakedID(t *testing.T) {
	staked := "not-an-id"
	params := UpdateAccountParams{StakedAccountID: &staked}
	if _, err := normalizeUpdateAccount(params, testContext(), nil); err == nil {
		t.Fatal("expected error for malformed staked account ID")
	}
}

func TestNormalizeUpdateAccountRejectsEmptyUpdate(t *testing.T) {
	params := UpdateAccountParams{AccountID: "0.0.4004"}
	if _, err := normalizeUpdateAccount(params, testContext(), nil); err == nil {
		t.Fatal("expected error for update with no fields set")
	}
}

func TestNormalizeDeleteAccountRequiresAccount(t *testing.T) {
	if _, _, err := normalizeDeleteAccount(DeleteAccountParams{}, testContext(), nil); err == nil {
		t.Fatal("expected error for missing account ID")
	}
}

func TestNormalizeDeleteAccountDefaultsTransferTarget(t *testing.T) {
	accountID, transferID, err := normalizeDeleteAccount(
		DeleteAccountParams{AccountID: "0.0.4004"}, testContext(), nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accountID.Account != 4004 || transferID.Account != 5005 {
		t.Fatalf("unexpected resolution: %s -> %s", accountID.String(), transferID.String())
	}
}

func TestNormalizeHbarAllowanceRequiresSpender(t *testing.T) {
	if _, err := normalizeHbarAllowance(HbarAllowanceParams{}, testContext(), nil, true); err == nil {
		t.Fatal("expected error for missing spender")
	}
}

func TestNormalizeHbarAllowanceRequiresPositiveAmount(t *testing.T) {
	params := HbarAllowanceParams{SpenderAccountID: "0.0.1001"}
	if _, err := normalizeHbarAllowance(params, testContext(), nil, true); err == nil {
		t.Fatal("expected error for zero amount")
	}
}

func TestNormalizeHbarAllowanceZeroForRevoke(t *testing.T) {
	params := HbarAllowanceParams{SpenderAccountID: "0.0.1001"}
	normalized, err := normalizeHbarAllowance(params, testContext(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized.Tinybars != 0 {
		t.Fatalf("expected zero tinybars, got %d", normalized.Tinybars)
	}
	if normalized.Owner.Account != 5005 {
		t.Fatalf("expected owner from context, got %s", normalized.Owner.String())
	}
}

func TestParseScheduleID(t *testing.T) {
	scheduleID, err := parseScheduleID(" 0.0.3003 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scheduleID.Schedule != 3003 {
		t.Fatalf("unexpected schedule: %s", scheduleID.String())
	}

	if _, err := parseScheduleID(""); err == nil {
		t.Fatal("expected error for empty schedule ID")
	}
	if _, err := parseScheduleID("abc"); err == nil {
		t.Fatal("expected error for malformed schedule ID")
	}
}
