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

func TestTopUpCase_TopUp(t *testing.T) {
	t.Parallel()

	type deps struct {
		txManager     *dbmocks.MockTxManager
		balanceLocker *walletmocks.MockBalanceLocker
		topUpRecorder *walletmocks.MockTopUpRecorder
	}

	type testCase struct {
		name    string
		request domain.TopUpRequest

		prepareFn func(t *testing.T, d *deps)

		expectedBalance int64
		expectedErr     error
	}

	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	tests := []testCase{
		{
			name: "successful top-up",
			request: domain.TopUpRequest{
				UserID: testSenderID,
				Amount: 250,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, testSenderID).
					Return(int64(1000), nil)
				d.topUpRecorder.EXPECT().CreditBalance(gomock.Any(), nil, testSenderID, int64(250)).
					Return(int64(1250), nil)
				d.topUpRecorder.EXPECT().RecordTopUp(gomock.Any(), nil, gomock.Any(), testSenderID, int64(250)).
					Return(nil)
			},
			expectedBalance: 1250,
			expectedErr:     nil,
		},
		{
			name: "non-positive amount",
			request: domain.TopUpRequest{
				UserID: testSenderID,
				Amount: -5,
			},
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				// No calls expected
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "malformed user id",
			request: domain.TopUpRequest{
				UserID: "not-a-uuid",
				Amount: 250,
			},
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				// No calls expected
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "unknown user",
			request: domain.TopUpRequest{
				UserID: testSenderID,
				Amount: 250,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, testSenderID).
					Return(int64(0), &domain.UserNotFoundError{Msg: "user not found"})
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name: "credit error rolls back",
			request: domain.TopUpRequest{
				UserID: testSenderID,
				Amount: 250,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, testSenderID).
					Return(int64(1000), nil)
				d.topUpRecorder.EXPECT().CreditBalance(gomock.Any(), nil, testSenderID, int64(250)).
					Return(int64(0), assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "record top-up error",
			request: domain.TopUpRequest{
				UserID: testSenderID,
				Amount: 250,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, testSenderID).
					Return(int64(1000), nil)
				d.topUpRecorder.EXPECT().CreditBalance(gomock.Any(), nil, testSenderID, int64(250)).
					Return(int64(1250), nil)
				d.topUpRecorder.EXPECT().RecordTopUp(gomock.Any(), nil, gomock.Any(), testSenderID, int64(250)).
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
				txManager:     dbmocks.NewMockTxManager(ctrl),
				balanceLocker: walletmocks.NewMockBalanceLocker(ctrl),
				topUpRecorder: walletmocks.NewMockTopUpRecorder(ctrl),
			}
			tt.prepareFn(t, d)

			topUpCase := NewTopUpCase(d.txManager, d.balanceLocker, d.topUpRecorder, logging.StdoutLogger)
			result, err := topUpCase.TopUp(t.Context(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, domain.TopUpResult{}, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.request.UserID, result.UserID)
				assert.Equal(t, tt.request.Amount, result.Amount)
				assert.Equal(t, tt.expectedBalance, result.NewBalance)

				_, err := uuid.Parse(result.TopUpID)
				assert.NoError(t, err)
			}
		})
	}
}
