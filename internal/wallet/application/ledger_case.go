package application

import (
	"context"
	"fmt"
	"time"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
)

// LedgerSearchCase owns the dispatch between the ledger query modes. The four
// search types share no common schema, so one generically named Search fans
// out to per-domain physical queries; keeping the branching here keeps it
// auditable instead of duplicating it per caller.
type LedgerSearchCase struct {
	searcher domain.LedgerSearcher
	logger   logging.Logger
}

func NewLedgerSearchCase(searcher domain.LedgerSearcher, logger logging.Logger) *LedgerSearchCase {
	return &LedgerSearchCase{
		searcher: searcher,
		logger:   logger,
	}
}

func (lc *LedgerSearchCase) Search(ctx context.Context, request domain.SearchRequest) (domain.SearchResult, error) {
	lc.logger.Debug("searching ledger",
		"type", request.Type, "keyword", request.Keyword,
		"startDate", request.StartDate, "endDate", request.EndDate)

	searchType := domain.SearchType(request.Type)

	if request.Type == "" || (searchType == domain.SearchTypeWallet && request.Keyword == "") {
		return lc.walletOverview(ctx)
	}

	switch searchType {
	case domain.SearchTypeWallet, domain.SearchTypeSaldo, domain.SearchTypeTopUp, domain.SearchTypeTransfer:
	default:
		return domain.SearchResult{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unknown search type %q", request.Type)}
	}

	interval, err := parseDateInterval(request.StartDate, request.EndDate)
	if err != nil {
		return domain.SearchResult{}, err
	}

	if request.Keyword == "" && interval != nil {
		return lc.dateRange(ctx, searchType, *interval)
	}

	return lc.keywordSearch(ctx, searchType, request.Keyword, interval)
}

// walletOverview lists every user together with the global user count and
// balance sum.
func (lc *LedgerSearchCase) walletOverview(ctx context.Context) (domain.SearchResult, error) {
	records, err := lc.searcher.FetchWalletOverview(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}

	summary, err := lc.searcher.FetchLedgerSummary(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}

	return domain.SearchResult{
		Records:      toSearchRecords(records),
		TotalUsers:   summary.TotalUsers,
		TotalBalance: summary.TotalBalance,
	}, nil
}

// dateRange lists the rows of one table restricted to the interval, newest
// first. TotalUsers carries the row count of the filtered result here, not the
// global user count; callers rely on that overloaded meaning.
func (lc *LedgerSearchCase) dateRange(ctx context.Context, searchType domain.SearchType, interval domain.DateInterval) (domain.SearchResult, error) {
	var records []domain.SearchRecord

	switch searchType {
	case domain.SearchTypeSaldo:
		rs, err := lc.searcher.FetchBalancesBetween(ctx, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	case domain.SearchTypeTopUp:
		rs, err := lc.searcher.FetchTopUpsBetween(ctx, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	case domain.SearchTypeTransfer:
		rs, err := lc.searcher.FetchTransfersBetween(ctx, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	default:
		return domain.SearchResult{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("search type %q does not support date ranges", searchType)}
	}

	return domain.SearchResult{
		Records:      records,
		TotalUsers:   int64(len(records)),
		TotalBalance: 0,
	}, nil
}

// keywordSearch matches a case-insensitive substring over the fields of the
// chosen type, optionally restricted to the interval. The summary is always
// computed over the full user population, independent of the filtered rows.
func (lc *LedgerSearchCase) keywordSearch(ctx context.Context, searchType domain.SearchType, keyword string, interval *domain.DateInterval) (domain.SearchResult, error) {
	var records []domain.SearchRecord

	switch searchType {
	case domain.SearchTypeWallet:
		rs, err := lc.searcher.SearchWallets(ctx, keyword, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	case domain.SearchTypeSaldo:
		rs, err := lc.searcher.SearchBalances(ctx, keyword, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	case domain.SearchTypeTopUp:
		rs, err := lc.searcher.SearchTopUps(ctx, keyword, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	case domain.SearchTypeTransfer:
		rs, err := lc.searcher.SearchTransfers(ctx, keyword, interval)
		if err != nil {
			return domain.SearchResult{}, err
		}
		records = toSearchRecords(rs)
	}

	summary, err := lc.searcher.FetchLedgerSummary(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}

	return domain.SearchResult{
		Records:      records,
		TotalUsers:   summary.TotalUsers,
		TotalBalance: summary.TotalBalance,
	}, nil
}

// parseDateInterval normalizes two calendar dates to the closed UTC interval
// [start 00:00:00, end 23:59:59]. A missing bound disables date filtering.
func parseDateInterval(startDate, endDate string) (*domain.DateInterval, error) {
	if startDate == "" || endDate == "" {
		return nil, nil
	}

	from, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return nil, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("invalid startDate %q, expected YYYY-MM-DD", startDate)}
	}

	to, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return nil, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("invalid endDate %q, expected YYYY-MM-DD", endDate)}
	}

	return &domain.DateInterval{
		From: from,
		To:   to.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
	}, nil
}

func toSearchRecords[T domain.SearchRecord](records []T) []domain.SearchRecord {
	converted := make([]domain.SearchRecord, 0, len(records))
	for _, record := range records {
		converted = append(converted, record)
	}

	return converted
}
