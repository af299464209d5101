package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// stubProcessor runs actions inline against a writer built from mock tables,
// standing in for the operator's worker queue.
type stubProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *stubProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
