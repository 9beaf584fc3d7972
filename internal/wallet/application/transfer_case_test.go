package application

import (
	"context"
	"testing"

	dbmocks "github.com/aryaprdni/cash-ease-be/gen/mocks/database"
	walletmocks "github.com/aryaprdni/cash-ease-be/gen/mocks/wallet"
	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const (
	testSenderID    = "2f1b7f43-9280-4f0c-9c5a-25f6f6c73802"
	testRecipientID = "7f9d9b19-13f4-4f0a-8f0e-64f7b23f3a6d"
)

func TestTransferCase_Transfer(t *testing.T) {
	t.Parallel()

	type deps struct {
		txManager        *dbmocks.MockTxManager
		partyLocker      *walletmocks.MockPartyLocker
		transferRecorder *walletmocks.MockTransferRecorder
	}

	type testCase struct {
		name    string
		request domain.TransferRequest

		prepareFn func(t *testing.T, d *deps)

		expectedErr error
	}

	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	tests := []testCase{
		{
			name: "successful transfer",
			request: domain.TransferRequest{
				SenderID:      testSenderID,
				RecipientName: "Bob",
				Amount:        400,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.partyLocker.EXPECT().LockTransferParties(gomock.Any(), nil, testSenderID, "Bob").
					Return(
						domain.TransferParty{ID: testSenderID, Name: "Alice", Balance: 1000},
						domain.TransferParty{ID: testRecipientID, Name: "Bob", Balance: 0},
						nil,
					)
				d.transferRecorder.EXPECT().RecordTransfer(gomock.Any(), nil, gomock.Any(), testSenderID, testRecipientID, int64(400)).
					Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "non-positive amount",
			request: domain.TransferRequest{
				SenderID:      testSenderID,
				RecipientName: "Bob",
				Amount:        0,
			},
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				// No calls expected
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "malformed sender id",
			request: domain.TransferRequest{
				SenderID:      "not-a-uuid",
				RecipientName: "Bob",
				Amount:        400,
			},
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				// No calls expected
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "insufficient balance leaves no side effects",
			request: domain.TransferRequest{
				SenderID:      testSenderID,
				RecipientName: "Bob",
				Amount:        500,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.partyLocker.EXPECT().LockTransferParties(gomock.Any(), nil, testSenderID, "Bob").
					Return(
						domain.TransferParty{ID: testSenderID, Name: "Alice", Balance: 100},
						domain.TransferParty{ID: testRecipientID, Name: "Bob", Balance: 0},
						nil,
					)
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name: "recipient not found",
			request: domain.TransferRequest{
				SenderID:      testSenderID,
				RecipientName: "Nonexistent",
				Amount:        400,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.partyLocker.EXPECT().LockTransferParties(gomock.Any(), nil, testSenderID, "Nonexistent").
					Return(domain.TransferParty{}, domain.TransferParty{}, &domain.UserNotFoundError{Msg: "recipient not found"})
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name: "record transfer error",
			request: domain.TransferRequest{
				SenderID:      testSenderID,
				RecipientName: "Bob",
				Amount:        400,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.partyLocker.EXPECT().LockTransferParties(gomock.Any(), nil, testSenderID, "Bob").
					Return(
						domain.TransferParty{ID: testSenderID, Name: "Alice", Balance: 1000},
						domain.TransferParty{ID: testRecipientID, Name: "Bob", Balance: 0},
						nil,
					)
				d.transferRecorder.EXPECT().RecordTransfer(gomock.Any(), nil, gomock.Any(), testSenderID, testRecipientID, int64(400)).
					Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				txManager:        dbmocks.NewMockTxManager(ctrl),
				partyLocker:      walletmocks.NewMockPartyLocker(ctrl),
				transferRecorder: walletmocks.NewMockTransferRecorder(ctrl),
			}
			tt.prepareFn(t, d)

			transferCase := NewTransferCase(d.txManager, d.partyLocker, d.transferRecorder, logging.StdoutLogger)
			result, err := transferCase.Transfer(t.Context(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, domain.TransferResult{}, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testSenderID, result.SenderID)
				assert.Equal(t, testRecipientID, result.RecipientID)
				assert.Equal(t, tt.request.Amount, result.Amount)

				_, err := uuid.Parse(result.TransferID)
				assert.NoError(t, err)
			}
		})
	}
}
