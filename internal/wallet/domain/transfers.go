package domain

import (
	"context"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
)

type TransferRequest struct {
	SenderID      string
	RecipientName string
	Amount        int64
}

type TransferResult struct {
	TransferID  string `json:"transferId"`
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Amount      int64  `json:"amount"`
}

// TransferParty is a user row locked for the duration of a transfer.
type TransferParty struct {
	ID      string
	Name    string
	Balance int64
}

type PartyLocker interface {
	LockTransferParties(ctx context.Context, querier database.Querier, senderID, recipientName string) (sender TransferParty, recipient TransferParty, err error)
}

type TransferRecorder interface {
	RecordTransfer(ctx context.Context, executor database.Executor, transferID, senderID, recipientID string, amount int64) error
}

type TransferService interface {
	Transfer(ctx context.Context, request TransferRequest) (TransferResult, error)
}
