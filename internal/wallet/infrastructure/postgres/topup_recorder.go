package postgres

import (
	"context"
	"fmt"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
)

type TopUpRecorder struct{}

func NewTopUpRecorder() *TopUpRecorder {
	return &TopUpRecorder{}
}

// CreditBalance increments the locked user's balance and returns the balance
// produced by the update itself, so the caller never re-reads it in a second
// round trip.
func (tr *TopUpRecorder) CreditBalance(ctx context.Context, querier database.Querier, userID string, amount int64) (int64, error) {
	creditSQL := `UPDATE users SET balance = balance + $1, updated_at = now(), updated_by = $2 WHERE id = $2 RETURNING balance`

	var newBalance int64
	err := querier.QueryRow(ctx, creditSQL, amount, userID).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to credit user balance: %w", err)
	}

	return newBalance, nil
}

func (tr *TopUpRecorder) RecordTopUp(ctx context.Context, executor database.Executor, topUpID, userID string, amount int64) error {
	insertTopUpSQL := `INSERT INTO top_ups (id, user_id, amount, created_by, updated_by, created_at, updated_at)
VALUES ($1, $2, $3, $2, $2, now(), now())`

	_, err := executor.Exec(ctx, insertTopUpSQL, topUpID, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to insert top-up record: %w", err)
	}

	return nil
}
