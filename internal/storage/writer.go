package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Writer exposes the table accessors bound to one database transaction.
// Operator actions use it so a multi-table write commits or rolls back as a
// unit.
type Writer struct {
	tx           pgx.Tx
	Transactions sqlconfig.ITransactionTable
	Goals        sqlconfig.IGoalTable
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Goals:        sqlconfig.NewGoalsTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
