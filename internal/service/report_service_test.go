package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newTestReportService(t *testing.T) (*ReportService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTxs := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTxs}
	return NewReportService(store), mockTxs
}

func TestGetReport_Aggregates(t *testing.T) {
	svc, mockTxs := newTestReportService(t)

	callerID := uuid.Must(uuid.NewV4())
	rows := []*sqlconfig.Transaction{
		{UserID: callerID, Kind: finance.KindIncome, Category: "salary", Amount: dec("2000"), OccurredOn: date(2026, time.January, 5)},
		{UserID: callerID, Kind: finance.KindExpense, Category: "rent", Amount: dec("800"), OccurredOn: date(2026, time.January, 6)},
		{UserID: callerID, Kind: finance.KindExpense, Category: "groceries", Amount: dec("150"), OccurredOn: date(2026, time.February, 2)},
	}
	mockTxs.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID == callerID
	})).Return(rows, nil)

	report, err := svc.Get(context.Background(), callerID, ReportFilter{})

	assert.NoError(t, err)
	assert.True(t, report.TotalIncome.Equal(dec("2000")))
	assert.True(t, report.TotalExpenses.Equal(dec("950")))
	assert.True(t, report.NetSavings.Equal(dec("1050")))
	assert.Len(t, report.SpendingTrends, 2)
	assert.Len(t, report.CategoryBreakdown, 2)
	assert.Equal(t, "rent", report.CategoryBreakdown[0].Category)
}

func TestGetReport_PassesFilterThrough(t *testing.T) {
	svc, mockTxs := newTestReportService(t)

	callerID := uuid.Must(uuid.NewV4())
	from := date(2026, time.January, 1)
	to := date(2026, time.June, 30)
	category := "groceries"
	tags := []string{"essential", "weekly"}

	mockTxs.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID == callerID &&
			f.From != nil && f.From.Equal(from) &&
			f.To != nil && f.To.Equal(to) &&
			f.Category != nil && *f.Category == category &&
			len(f.Tags) == 2
	})).Return([]*sqlconfig.Transaction{}, nil)

	report, err := svc.Get(context.Background(), callerID, ReportFilter{
		From:     &from,
		To:       &to,
		Category: &category,
		Tags:     tags,
	})

	assert.NoError(t, err)
	assert.True(t, report.TotalIncome.IsZero())
	assert.Empty(t, report.SpendingTrends)
}

func TestGetReport_InvertedWindow(t *testing.T) {
	svc, _ := newTestReportService(t)

	from := date(2026, time.June, 1)
	to := date(2026, time.January, 1)

	_, err := svc.Get(context.Background(), uuid.Must(uuid.NewV4()), ReportFilter{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrValidation)
}
