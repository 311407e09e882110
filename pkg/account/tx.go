package account

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildTransferHbarTx builds a balanced hbar transfer: every credit in the
// params is debited from the source account.
func BuildTransferHbarTx(params TransferHbarTxParams) *hedera.TransferTransaction {
	transaction := hedera.NewTransferTransaction()

	total := int64(0)
	for _, transfer := range params.Transfers {
		transaction.AddHbarTransfer(transfer.AccountID, hedera.HbarFromTinybar(transfer.Tinybars))
		total += transfer.Tinybars
	}

	if params.Approved {
		transaction.AddApprovedHbarTransfer(params.Source, hedera.HbarFromTinybar(-total), true)
	} else {
		transaction.AddHbarTransfer(params.Source, hedera.HbarFromTinybar(-total))
	}

	if params.Memo != "" {
		transaction.SetTransactionMemo(params.Memo)
	}

	return transaction
}

// BuildCreateAccountTx builds and returns the configured account create
// transaction.
func BuildCreateAccountTx(params CreateAccountTxParams) *hedera.AccountCreateTransaction {
	transaction := hedera.NewAccountCreateTransaction().
		SetKey(params.Key).
		SetInitialBalance(hedera.HbarFromTinybar(params.InitialBalanceTinybars))

	if params.Memo != "" {
		transaction.SetAccountMemo(params.Memo)
	}
	if params.MaxAutomaticTokenAssociations != 0 {
		transaction.SetMaxAutomaticTokenAssociations(params.MaxAutomaticTokenAssociations)
	}

	return transaction
}

// BuildUpdateAccountTx builds an account update that only touches the fields
// present in the params.
func BuildUpdateAccountTx(params UpdateAccountTxParams) *hedera.AccountUpdateTransaction {
	transaction := hedera.NewAccountUpdateTransaction().SetAccountID(params.AccountID)

	if params.Memo != nil {
		transaction.SetAccountMemo(*params.Memo)
	}
	if params.MaxAutomaticTokenAssociations != nil {
		transaction.SetMaxAutomaticTokenAssociations(*params.MaxAutomaticTokenAssociations)
	}
	if params.StakedAccountID != nil {
		transaction.SetStakedAccountID(*params.StakedAccountID)
	}
	if params.DeclineStakingReward != nil {
		transaction.SetDeclineStakingReward(*params.DeclineStakingReward)
	}

	return transaction
}

// BuildDeleteAccountTx builds an account delete that sends the remaining
// balance to the transfer account.
func BuildDeleteAccountTx(accountID, transferAccountID hedera.AccountID) *hedera.AccountDeleteTransaction {
	return hedera.NewAccountDeleteTransaction().
		SetAccountID(accountID).
		SetTransferAccountID(transferAccountID)
}

// BuildApproveHbarAllowanceTx builds an hbar allowance approval. A zero
// amount revokes the allowance.
func BuildApproveHbarAllowanceTx(params HbarAllowanceTxParams) *hedera.AccountAllowanceApproveTransaction {
	transaction := hedera.NewAccountAllowanceApproveTransaction().
		ApproveHbarAllowance(params.Owner, params.Spender, hedera.HbarFromTinybar(params.Tinybars))

	if params.Memo != "" {
		transaction.SetTransactionMemo(params.Memo)
	}

	return transaction
}

// BuildScheduleSignTx builds and returns the configured schedule sign
// transaction.
func BuildScheduleSignTx(scheduleID hedera.ScheduleID) *hedera.ScheduleSignTransaction {
	return hedera.NewScheduleSignTransaction().SetScheduleID(scheduleID)
}

// BuildScheduleDeleteTx builds and returns the configured schedule delete
// transaction.
func BuildScheduleDeleteTx(scheduleID hedera.ScheduleID) *hedera.ScheduleDeleteTransaction {
	return hedera.NewScheduleDeleteTransaction().SetScheduleID(scheduleID)
}
