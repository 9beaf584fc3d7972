package postgres

import (
	"context"
	"fmt"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
)

type TransferRecorder struct{}

func NewTransferRecorder() *TransferRecorder {
	return &TransferRecorder{}
}

// RecordTransfer applies the debit, the credit and the transfer row inside the
// caller's transaction. The debit is guarded so a stale balance read can never
// push the sender below zero.
func (tr *TransferRecorder) RecordTransfer(ctx context.Context, executor database.Executor, transferID, senderID, recipientID string, amount int64) error {
	debitSQL := `UPDATE users SET balance = balance - $1, updated_at = now() WHERE id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, amount, senderID)
	if err != nil {
		return fmt.Errorf("failed to debit sender balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "sender balance is lower than the transfer amount"}
	}

	creditSQL := `UPDATE users SET balance = balance + $1, updated_at = now() WHERE id = $2`
	_, err = executor.Exec(ctx, creditSQL, amount, recipientID)
	if err != nil {
		return fmt.Errorf("failed to credit recipient balance: %w", err)
	}

	insertTransferSQL := `INSERT INTO transfers (id, sender_id, receiver_id, amount, created_by, updated_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $2, $2, now(), now())`
	_, err = executor.Exec(ctx, insertTransferSQL, transferID, senderID, recipientID, amount)
	if err != nil {
		return fmt.Errorf("failed to insert transfer record: %w", err)
	}

	return nil
}
