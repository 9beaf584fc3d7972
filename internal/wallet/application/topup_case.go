package application

import (
	"context"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/google/uuid"
)

type TopUpCase struct {
	txManager     database.TxManager
	balanceLocker domain.BalanceLocker
	topUpRecorder domain.TopUpRecorder
	logger        logging.Logger
}

func NewTopUpCase(
	txManager database.TxManager,
	balanceLocker domain.BalanceLocker,
	topUpRecorder domain.TopUpRecorder,
	logger logging.Logger,
) *TopUpCase {
	return &TopUpCase{
		txManager:     txManager,
		balanceLocker: balanceLocker,
		topUpRecorder: topUpRecorder,
		logger:        logger,
	}
}

func (tc *TopUpCase) TopUp(ctx context.Context, request domain.TopUpRequest) (domain.TopUpResult, error) {
	if request.Amount <= 0 {
		return domain.TopUpResult{}, &domain.InvalidArgumentsError{Msg: "top-up amount must be positive"}
	}
	if _, err := uuid.Parse(request.UserID); err != nil {
		return domain.TopUpResult{}, &domain.InvalidArgumentsError{Msg: "userId must be a valid uuid"}
	}

	topUpID := uuid.NewString()

	var result domain.TopUpResult
	err := tc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		_, err := tc.balanceLocker.LockAndGetBalance(ctx, executor, request.UserID)
		if err != nil {
			return err
		}

		newBalance, err := tc.topUpRecorder.CreditBalance(ctx, executor, request.UserID, request.Amount)
		if err != nil {
			return err
		}

		err = tc.topUpRecorder.RecordTopUp(ctx, executor, topUpID, request.UserID, request.Amount)
		if err != nil {
			return err
		}

		result = domain.TopUpResult{
			TopUpID:    topUpID,
			UserID:     request.UserID,
			Amount:     request.Amount,
			NewBalance: newBalance,
		}

		return nil
	})
	if err != nil {
		tc.logger.Error("top-up failed", "userId", request.UserID, "error", err.Error())
		return domain.TopUpResult{}, err
	}

	return result, nil
}
