package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ReportFilter narrows which of the caller's transactions feed the report.
// All fields are optional.
type ReportFilter struct {
	From     *time.Time
	To       *time.Time
	Category *string
	Tags     []string
}

// ReportService assembles aggregate spending reports.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// Get aggregates the caller's transactions matching the filter into totals,
// a monthly trend series, and an expense breakdown by category.
func (s *ReportService) Get(ctx context.Context, callerID uuid.UUID, filter ReportFilter) (*finance.Report, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, validationErrorf("start date must be before end date")
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:   callerID,
		From:     filter.From,
		To:       filter.To,
		Category: filter.Category,
		Tags:     filter.Tags,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]finance.Entry, len(rows))
	for i, row := range rows {
		entries[i] = finance.Entry{
			Kind:     row.Kind,
			Category: row.Category,
			Amount:   row.Amount,
			Date:     row.OccurredOn,
		}
	}

	report := finance.Aggregate(entries)
	return &report, nil
}
