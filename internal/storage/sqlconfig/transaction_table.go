package sqlconfig

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec Executor
}

// NewTransactionsTable creates a TransactionsTable over the given executor.
func NewTransactionsTable(exec Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

const transactionColumns = `id, user_id, kind, category, amount, currency,
	occurred_on, tags, recurrence_frequency, recurrence_end, goal_id, created_at`

// FindByID retrieves a transaction by primary key. Returns nil when no row matches.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row := t.exec.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id)
	return scanTransaction(row)
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		`INSERT INTO transactions
		   (user_id, kind, category, amount, currency, occurred_on, tags,
		    recurrence_frequency, recurrence_end, goal_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		create.UserID, string(create.Kind), create.Category, create.Amount,
		create.Currency, create.OccurredOn, create.Tags,
		nullableFrequency(create.RecurrenceFrequency), create.RecurrenceEnd, create.GoalID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest occurrence first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = $1"
	args := []any{filter.UserID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND occurred_on >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND occurred_on <= $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if len(filter.Tags) > 0 {
		// Overlap: the transaction matches when it carries at least one
		// of the requested tags.
		args = append(args, filter.Tags)
		query += fmt.Sprintf(" AND tags && $%d", len(args))
	}
	query += " ORDER BY occurred_on DESC, created_at DESC, id DESC"

	rows, err := t.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

// Update replaces the mutable fields of a transaction.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	_, err := t.exec.Exec(ctx,
		`UPDATE transactions
		 SET kind = $2, category = $3, amount = $4, currency = $5,
		     occurred_on = $6, tags = $7, recurrence_frequency = $8,
		     recurrence_end = $9, goal_id = $10
		 WHERE id = $1`,
		id, string(update.Kind), update.Category, update.Amount, update.Currency,
		update.OccurredOn, update.Tags,
		nullableFrequency(update.RecurrenceFrequency), update.RecurrenceEnd, update.GoalID)
	return err
}

// Delete removes a transaction. Returns false when no row matched.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := t.exec.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SumInWindow aggregates the spend for one user and category between start
// and end inclusive. Source of truth for a budget's spent amount.
func (t *TransactionsTable) SumInWindow(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := t.exec.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE user_id = $1 AND category = $2 AND occurred_on BETWEEN $3 AND $4`,
		userID, category, start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// MonthlyTotals returns per-month sums for one user and category from since
// onward, ordered ascending. Feeds the budget evaluator's trend input.
func (t *TransactionsTable) MonthlyTotals(ctx context.Context, userID uuid.UUID, category string, since time.Time) ([]MonthlyTotal, error) {
	rows, err := t.exec.Query(ctx,
		`SELECT EXTRACT(YEAR FROM occurred_on)::int AS year,
		        EXTRACT(MONTH FROM occurred_on)::int AS month,
		        SUM(amount)
		 FROM transactions
		 WHERE user_id = $1 AND category = $2 AND occurred_on >= $3
		 GROUP BY year, month
		 ORDER BY year, month`,
		userID, category, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []MonthlyTotal
	for rows.Next() {
		var mt MonthlyTotal
		if err := rows.Scan(&mt.Year, &mt.Month, &mt.Total); err != nil {
			return nil, err
		}
		result = append(result, mt)
	}
	return result, rows.Err()
}

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var tx Transaction
	var kind string
	var frequency *string
	err := row.Scan(&tx.ID, &tx.UserID, &kind, &tx.Category, &tx.Amount,
		&tx.Currency, &tx.OccurredOn, &tx.Tags, &frequency, &tx.RecurrenceEnd,
		&tx.GoalID, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tx.Kind = finance.Kind(kind)
	if frequency != nil {
		tx.RecurrenceFrequency = finance.Frequency(*frequency)
	}
	return &tx, nil
}

func nullableFrequency(f finance.Frequency) *string {
	if f == "" {
		return nil
	}
	s := string(f)
	return &s
}
