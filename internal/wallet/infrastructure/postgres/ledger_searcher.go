package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
)

// Ledger dates are rendered by the database as "DD <full month name> YYYY"
// via TO_CHAR, so every mode formats them identically.
const (
	walletOverviewSQL = `SELECT id, name, bank, balance FROM users`

	ledgerSummarySQL = `SELECT COUNT(*) AS total_users, COALESCE(SUM(balance), 0) AS total_balance FROM users`

	balancesBetweenSQL = `SELECT id, name, bank, balance, TO_CHAR(created_at, 'DD FMMonth YYYY') AS created_at
FROM users
WHERE created_at BETWEEN $1 AND $2
ORDER BY created_at DESC`

	topUpsBetweenSQL = `SELECT u.id, u.name, t.amount, TO_CHAR(t.created_at, 'DD FMMonth YYYY') AS created_at
FROM top_ups t
JOIN users u ON u.id = t.user_id
WHERE t.created_at BETWEEN $1 AND $2
ORDER BY t.created_at DESC`

	transfersBetweenSQL = `SELECT s.id AS sender_id, s.name AS sender_name, r.id AS receiver_id, r.name AS receiver_name, t.amount, TO_CHAR(t.created_at, 'DD FMMonth YYYY') AS created_at
FROM transfers t
JOIN users s ON s.id = t.sender_id
JOIN users r ON r.id = t.receiver_id
WHERE t.created_at BETWEEN $1 AND $2
ORDER BY t.created_at DESC`

	searchWalletsSQL = `SELECT id, name, bank, balance
FROM users
WHERE (
	LOWER(name) LIKE $1
	OR LOWER(bank) LIKE $1
	OR CAST(balance AS TEXT) LIKE $1
	OR TO_CHAR(created_at, 'DD FMMonth YYYY') ILIKE $1
)`

	searchBalancesSQL = `SELECT id, name, bank, balance, TO_CHAR(created_at, 'DD FMMonth YYYY') AS created_at
FROM users
WHERE (
	LOWER(name) LIKE $1
	OR LOWER(bank) LIKE $1
	OR CAST(balance AS TEXT) LIKE $1
	OR TO_CHAR(created_at, 'DD FMMonth YYYY') ILIKE $1
)`

	searchTopUpsSQL = `SELECT u.id, u.name, t.amount, TO_CHAR(t.created_at, 'DD FMMonth YYYY') AS created_at
FROM top_ups t
JOIN users u ON u.id = t.user_id
WHERE (
	LOWER(u.name) LIKE $1
	OR CAST(t.amount AS TEXT) LIKE $1
	OR TO_CHAR(t.created_at, 'DD FMMonth YYYY') ILIKE $1
)`

	searchTransfersSQL = `SELECT s.id AS sender_id, s.name AS sender_name, r.id AS receiver_id, r.name AS receiver_name, t.amount, TO_CHAR(t.created_at, 'DD FMMonth YYYY') AS created_at
FROM transfers t
JOIN users s ON s.id = t.sender_id
JOIN users r ON r.id = t.receiver_id
WHERE (
	LOWER(s.name) LIKE $1
	OR LOWER(r.name) LIKE $1
	OR CAST(t.amount AS TEXT) LIKE $1
	OR TO_CHAR(t.created_at, 'DD FMMonth YYYY') ILIKE $1
)`

	// Date clauses are constant text; $2 and $3 are always the interval bounds.
	userDateClause  = ` AND created_at BETWEEN $2 AND $3`
	eventDateClause = ` AND t.created_at BETWEEN $2 AND $3`
)

type LedgerSearcher struct {
	querier database.Querier
	logger  logging.Logger
}

func NewLedgerSearcher(querier database.Querier, logger logging.Logger) *LedgerSearcher {
	return &LedgerSearcher{
		querier: querier,
		logger:  logger,
	}
}

func (ls *LedgerSearcher) FetchWalletOverview(ctx context.Context) ([]domain.WalletRecord, error) {
	return ls.queryWallets(ctx, walletOverviewSQL)
}

func (ls *LedgerSearcher) FetchLedgerSummary(ctx context.Context) (domain.LedgerSummary, error) {
	var summary domain.LedgerSummary
	err := ls.querier.QueryRow(ctx, ledgerSummarySQL).Scan(&summary.TotalUsers, &summary.TotalBalance)
	if err != nil {
		return domain.LedgerSummary{}, fmt.Errorf("failed to fetch ledger summary: %w", err)
	}

	return summary, nil
}

func (ls *LedgerSearcher) FetchBalancesBetween(ctx context.Context, interval domain.DateInterval) ([]domain.BalanceRecord, error) {
	return ls.queryBalances(ctx, balancesBetweenSQL, interval.From, interval.To)
}

func (ls *LedgerSearcher) FetchTopUpsBetween(ctx context.Context, interval domain.DateInterval) ([]domain.TopUpRecord, error) {
	return ls.queryTopUps(ctx, topUpsBetweenSQL, interval.From, interval.To)
}

func (ls *LedgerSearcher) FetchTransfersBetween(ctx context.Context, interval domain.DateInterval) ([]domain.TransferRecord, error) {
	return ls.queryTransfers(ctx, transfersBetweenSQL, interval.From, interval.To)
}

func (ls *LedgerSearcher) SearchWallets(ctx context.Context, keyword string, interval *domain.DateInterval) ([]domain.WalletRecord, error) {
	sql, args := bindSearchArgs(searchWalletsSQL, userDateClause, keyword, interval)
	return ls.queryWallets(ctx, sql, args...)
}

func (ls *LedgerSearcher) SearchBalances(ctx context.Context, keyword string, interval *domain.DateInterval) ([]domain.BalanceRecord, error) {
	sql, args := bindSearchArgs(searchBalancesSQL, userDateClause, keyword, interval)
	return ls.queryBalances(ctx, sql, args...)
}

func (ls *LedgerSearcher) SearchTopUps(ctx context.Context, keyword string, interval *domain.DateInterval) ([]domain.TopUpRecord, error) {
	sql, args := bindSearchArgs(searchTopUpsSQL, eventDateClause, keyword, interval)
	return ls.queryTopUps(ctx, sql, args...)
}

func (ls *LedgerSearcher) SearchTransfers(ctx context.Context, keyword string, interval *domain.DateInterval) ([]domain.TransferRecord, error) {
	sql, args := bindSearchArgs(searchTransfersSQL, eventDateClause, keyword, interval)
	return ls.queryTransfers(ctx, sql, args...)
}

// bindSearchArgs keeps parameter positions static: the keyword pattern is
// always $1 and the interval bounds, when present, are always $2 and $3. User
// input is never concatenated into the query text.
func bindSearchArgs(baseSQL, dateClause, keyword string, interval *domain.DateInterval) (string, []any) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	args := []any{pattern}

	if interval == nil {
		return baseSQL, args
	}

	args = append(args, interval.From, interval.To)
	return baseSQL + dateClause, args
}

func (ls *LedgerSearcher) queryWallets(ctx context.Context, sql string, args ...any) ([]domain.WalletRecord, error) {
	rows, err := ls.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.WalletRecord, 0)
	for rows.Next() {
		var record domain.WalletRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Bank, &record.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan wallet record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wallet records: %w", err)
	}

	return records, nil
}

func (ls *LedgerSearcher) queryBalances(ctx context.Context, sql string, args ...any) ([]domain.BalanceRecord, error) {
	rows, err := ls.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.BalanceRecord, 0)
	for rows.Next() {
		var record domain.BalanceRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Bank, &record.Balance, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read balance records: %w", err)
	}

	return records, nil
}

func (ls *LedgerSearcher) queryTopUps(ctx context.Context, sql string, args ...any) ([]domain.TopUpRecord, error) {
	rows, err := ls.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top-up records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TopUpRecord, 0)
	for rows.Next() {
		var record domain.TopUpRecord
		if err := rows.Scan(&record.UserID, &record.Name, &record.Amount, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan top-up record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top-up records: %w", err)
	}

	return records, nil
}

func (ls *LedgerSearcher) queryTransfers(ctx context.Context, sql string, args ...any) ([]domain.TransferRecord, error) {
	rows, err := ls.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TransferRecord, 0)
	for rows.Next() {
		var record domain.TransferRecord
		if err := rows.Scan(&record.SenderID, &record.SenderName, &record.ReceiverID, &record.ReceiverName, &record.Amount, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transfer record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transfer records: %w", err)
	}

	return records, nil
}
