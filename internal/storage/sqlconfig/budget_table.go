package sqlconfig

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec Executor
}

// NewBudgetsTable creates a BudgetsTable over the given executor.
func NewBudgetsTable(exec Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

const budgetColumns = `id, user_id, category, amount, start_date, end_date,
	alerts, threshold, currency, created_at`

// FindByID retrieves a budget by primary key. Returns nil when no row matches.
func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	row := t.exec.QueryRow(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE id = $1", id)
	return scanBudget(row)
}

// Insert creates a new budget and returns its generated ID.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		`INSERT INTO budgets
		   (user_id, category, amount, start_date, end_date, alerts, threshold, currency)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		create.UserID, create.Category, create.Amount, create.StartDate,
		create.EndDate, create.Alerts, create.Threshold, create.Currency,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListByUser returns all budgets owned by userID, oldest first.
func (t *BudgetsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	rows, err := t.exec.Query(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE user_id = $1 ORDER BY created_at, id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, budget)
	}
	return result, rows.Err()
}

// Update replaces the mutable fields of a budget.
func (t *BudgetsTable) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) error {
	_, err := t.exec.Exec(ctx,
		`UPDATE budgets
		 SET category = $2, amount = $3, start_date = $4, end_date = $5,
		     alerts = $6, threshold = $7, currency = $8
		 WHERE id = $1`,
		id, update.Category, update.Amount, update.StartDate, update.EndDate,
		update.Alerts, update.Threshold, update.Currency)
	return err
}

// Delete removes a budget. Returns false when no row matched.
func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := t.exec.Exec(ctx, "DELETE FROM budgets WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanBudget(row pgx.Row) (*Budget, error) {
	var b Budget
	err := row.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.StartDate,
		&b.EndDate, &b.Alerts, &b.Threshold, &b.Currency, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
