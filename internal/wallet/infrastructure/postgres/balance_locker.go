package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/jackc/pgx/v5"
)

type BalanceLocker struct{}

func NewBalanceLocker() *BalanceLocker {
	return &BalanceLocker{}
}

func (bl *BalanceLocker) LockAndGetBalance(ctx context.Context, querier database.Querier, userID string) (int64, error) {
	lockUserSQL := `SELECT balance FROM users WHERE id = $1 FOR UPDATE`

	var balance int64
	err := querier.QueryRow(ctx, lockUserSQL, userID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
		}

		return 0, fmt.Errorf("failed to lock user row: %w", err)
	}

	return balance, nil
}
