package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
	db database.QueryExecuter
}

func NewUsersRepository(db database.QueryExecuter) *UsersRepository {
	return &UsersRepository{
		db: db,
	}
}

func (ur *UsersRepository) IsNameTaken(ctx context.Context, name string) (bool, error) {
	sql := `SELECT id FROM users WHERE LOWER(name) = LOWER($1)`

	var id string
	err := ur.db.QueryRow(ctx, sql, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check name uniqueness: %w", err)
	}

	return true, nil
}

func (ur *UsersRepository) IsNameTakenByOther(ctx context.Context, name string, userID string) (bool, error) {
	sql := `SELECT id FROM users WHERE LOWER(name) = LOWER($1) AND id != $2`

	var id string
	err := ur.db.QueryRow(ctx, sql, name, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check name uniqueness: %w", err)
	}

	return true, nil
}

func (ur *UsersRepository) IsAccountNumberTaken(ctx context.Context, accountNumber string) (bool, error) {
	sql := `SELECT id FROM users WHERE account_number = $1`

	var id string
	err := ur.db.QueryRow(ctx, sql, accountNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check account number uniqueness: %w", err)
	}

	return true, nil
}

func (ur *UsersRepository) InsertUser(ctx context.Context, userID string, request domain.CreateUserRequest) (domain.UserProfile, error) {
	sql := `INSERT INTO users (id, name, bank, account_number, balance, created_at, updated_at, created_by, updated_by)
VALUES ($1, $2, $3, $4, 0, now(), now(), $1, $1)
RETURNING id, name, bank, account_number`

	var profile domain.UserProfile
	err := ur.db.QueryRow(ctx, sql, userID, request.Name, request.Bank, request.AccountNumber).
		Scan(&profile.ID, &profile.Name, &profile.Bank, &profile.AccountNumber)
	if err != nil {
		// Unique indexes backstop the pre-insert checks against concurrent creates.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.UserProfile{}, &domain.DuplicateUserError{Msg: fmt.Sprintf("name %q or account number %q is already used", request.Name, request.AccountNumber)}
		}

		return domain.UserProfile{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return profile, nil
}

func (ur *UsersRepository) UpdateUserName(ctx context.Context, userID string, name string) (domain.UserProfile, error) {
	sql := `UPDATE users SET name = $1, updated_at = now(), updated_by = $2 WHERE id = $2
RETURNING id, name, bank, account_number`

	var profile domain.UserProfile
	err := ur.db.QueryRow(ctx, sql, name, userID).
		Scan(&profile.ID, &profile.Name, &profile.Bank, &profile.AccountNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserProfile{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.UserProfile{}, &domain.DuplicateUserError{Msg: fmt.Sprintf("name %q is already used", name)}
		}

		return domain.UserProfile{}, fmt.Errorf("failed to update user name: %w", err)
	}

	return profile, nil
}
