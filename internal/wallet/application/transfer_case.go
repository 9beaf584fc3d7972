package application

import (
	"context"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/google/uuid"
)

type TransferCase struct {
	txManager        database.TxManager
	partyLocker      domain.PartyLocker
	transferRecorder domain.TransferRecorder
	logger           logging.Logger
}

func NewTransferCase(
	txManager database.TxManager,
	partyLocker domain.PartyLocker,
	transferRecorder domain.TransferRecorder,
	logger logging.Logger,
) *TransferCase {
	return &TransferCase{
		txManager:        txManager,
		partyLocker:      partyLocker,
		transferRecorder: transferRecorder,
		logger:           logger,
	}
}

// Transfer moves amount from the sender to the user holding recipientName.
// Both balance writes and the transfer row commit or roll back as one unit;
// no partial movement is ever observable.
func (tc *TransferCase) Transfer(ctx context.Context, request domain.TransferRequest) (domain.TransferResult, error) {
	if request.Amount <= 0 {
		return domain.TransferResult{}, &domain.InvalidArgumentsError{Msg: "transfer amount must be positive"}
	}
	if _, err := uuid.Parse(request.SenderID); err != nil {
		return domain.TransferResult{}, &domain.InvalidArgumentsError{Msg: "senderId must be a valid uuid"}
	}

	transferID := uuid.NewString()

	var result domain.TransferResult
	err := tc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		sender, recipient, err := tc.partyLocker.LockTransferParties(ctx, executor, request.SenderID, request.RecipientName)
		if err != nil {
			return err
		}

		if sender.Balance < request.Amount {
			return &domain.InsufficientBalanceError{Msg: "sender balance is lower than the transfer amount"}
		}

		err = tc.transferRecorder.RecordTransfer(ctx, executor, transferID, sender.ID, recipient.ID, request.Amount)
		if err != nil {
			return err
		}

		result = domain.TransferResult{
			TransferID:  transferID,
			SenderID:    sender.ID,
			RecipientID: recipient.ID,
			Amount:      request.Amount,
		}

		return nil
	})
	if err != nil {
		tc.logger.Error("transfer failed", "senderId", request.SenderID, "error", err.Error())
		return domain.TransferResult{}, err
	}

	return result, nil
}
