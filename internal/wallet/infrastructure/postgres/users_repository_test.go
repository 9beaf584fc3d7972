package postgres

import (
	"testing"

	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository_IsNameTaken(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		userName string

		expectedTaken bool
		expectedErr   error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:     "name is taken",
			userName: "Alice",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id"}).AddRow(aliceID)
				mock.ExpectQuery("SELECT").
					WithArgs("Alice").
					WillReturnRows(rows)
			},
			expectedTaken: true,
		},
		{
			name:     "name is free",
			userName: "Carol",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs("Carol").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedTaken: false,
		},
		{
			name:     "database error",
			userName: "Alice",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs("Alice").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewUsersRepository(mock)
			taken, err := repository.IsNameTaken(t.Context(), tt.userName)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTaken, taken)
			}
		})
	}
}

func TestUsersRepository_InsertUser(t *testing.T) {
	t.Parallel()

	request := domain.CreateUserRequest{
		Name:          "Alice",
		Bank:          "BCA",
		AccountNumber: "1234567890",
	}

	type testCase struct {
		name string

		expectedProfile domain.UserProfile
		expectedErr     error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "user inserted with zero balance",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "bank", "account_number"}).
					AddRow(aliceID, "Alice", "BCA", "1234567890")
				mock.ExpectQuery("INSERT").
					WithArgs(aliceID, "Alice", "BCA", "1234567890").
					WillReturnRows(rows)
			},
			expectedProfile: domain.UserProfile{ID: aliceID, Name: "Alice", Bank: "BCA", AccountNumber: "1234567890"},
		},
		{
			name: "unique violation maps to duplicate error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT").
					WithArgs(aliceID, "Alice", "BCA", "1234567890").
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectedErr: &domain.DuplicateUserError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT").
					WithArgs(aliceID, "Alice", "BCA", "1234567890").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewUsersRepository(mock)
			profile, err := repository.InsertUser(t.Context(), aliceID, request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProfile, profile)
			}
		})
	}
}

func TestUsersRepository_UpdateUserName(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		newName string

		expectedProfile domain.UserProfile
		expectedErr     error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:    "name updated",
			newName: "Alicia",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "bank", "account_number"}).
					AddRow(aliceID, "Alicia", "BCA", "1234567890")
				mock.ExpectQuery("UPDATE").
					WithArgs("Alicia", aliceID).
					WillReturnRows(rows)
			},
			expectedProfile: domain.UserProfile{ID: aliceID, Name: "Alicia", Bank: "BCA", AccountNumber: "1234567890"},
		},
		{
			name:    "user not found",
			newName: "Alicia",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE").
					WithArgs("Alicia", aliceID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:    "unique violation maps to duplicate error",
			newName: "Bob",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE").
					WithArgs("Bob", aliceID).
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectedErr: &domain.DuplicateUserError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewUsersRepository(mock)
			profile, err := repository.UpdateUserName(t.Context(), aliceID, tt.newName)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProfile, profile)
			}
		})
	}
}
