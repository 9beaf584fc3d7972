package domain

import (
	"context"
	"time"
)

type SearchType string

const (
	SearchTypeWallet   SearchType = "wallet"
	SearchTypeSaldo    SearchType = "saldo"
	SearchTypeTopUp    SearchType = "topup"
	SearchTypeTransfer SearchType = "transfer"
)

type SearchRequest struct {
	Type      string
	Keyword   string
	StartDate string
	EndDate   string
}

// DateInterval is a closed UTC interval covering whole calendar days.
type DateInterval struct {
	From time.Time
	To   time.Time
}

// SearchRecord is implemented by the per-mode row shapes so a single
// SearchResult can carry any of them.
type SearchRecord interface {
	searchRecord()
}

type WalletRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Bank    string `json:"bank"`
	Balance int64  `json:"balance"`
}

type BalanceRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bank      string `json:"bank"`
	Balance   int64  `json:"balance"`
	CreatedAt string `json:"created_at"`
}

type TopUpRecord struct {
	UserID    string `json:"id"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type TransferRecord struct {
	SenderID     string `json:"sender_id"`
	SenderName   string `json:"sender_name"`
	ReceiverID   string `json:"receiver_id"`
	ReceiverName string `json:"receiver_name"`
	Amount       int64  `json:"amount"`
	CreatedAt    string `json:"created_at"`
}

func (WalletRecord) searchRecord()   {}
func (BalanceRecord) searchRecord()  {}
func (TopUpRecord) searchRecord()    {}
func (TransferRecord) searchRecord() {}

type LedgerSummary struct {
	TotalUsers   int64
	TotalBalance int64
}

type SearchResult struct {
	Records      []SearchRecord `json:"users"`
	TotalUsers   int64          `json:"totalUsers"`
	TotalBalance int64          `json:"totalBalance"`
}

type LedgerSearcher interface {
	FetchWalletOverview(ctx context.Context) ([]WalletRecord, error)
	FetchLedgerSummary(ctx context.Context) (LedgerSummary, error)
	FetchBalancesBetween(ctx context.Context, interval DateInterval) ([]BalanceRecord, error)
	FetchTopUpsBetween(ctx context.Context, interval DateInterval) ([]TopUpRecord, error)
	FetchTransfersBetween(ctx context.Context, interval DateInterval) ([]TransferRecord, error)
	SearchWallets(ctx context.Context, keyword string, interval *DateInterval) ([]WalletRecord, error)
	SearchBalances(ctx context.Context, keyword string, interval *DateInterval) ([]BalanceRecord, error)
	SearchTopUps(ctx context.Context, keyword string, interval *DateInterval) ([]TopUpRecord, error)
	SearchTransfers(ctx context.Context, keyword string, interval *DateInterval) ([]TransferRecord, error)
}

type LedgerSearchService interface {
	Search(ctx context.Context, request SearchRequest) (SearchResult, error)
}
