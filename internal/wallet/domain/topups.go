package domain

import (
	"context"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
)

type TopUpRequest struct {
	UserID string
	Amount int64
}

type TopUpResult struct {
	TopUpID    string `json:"topUpId"`
	UserID     string `json:"userId"`
	Amount     int64  `json:"amount"`
	NewBalance int64  `json:"newBalance"`
}

type BalanceLocker interface {
	LockAndGetBalance(ctx context.Context, querier database.Querier, userID string) (int64, error)
}

type TopUpRecorder interface {
	CreditBalance(ctx context.Context, querier database.Querier, userID string, amount int64) (int64, error)
	RecordTopUp(ctx context.Context, executor database.Executor, topUpID, userID string, amount int64) error
}

type TopUpService interface {
	TopUp(ctx context.Context, request TopUpRequest) (TopUpResult, error)
}
