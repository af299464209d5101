package sqlconfig

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var _ IGoalTable = (*GoalsTable)(nil)

// GoalsTable provides access to the goals table.
type GoalsTable struct {
	exec Executor
}

// NewGoalsTable creates a GoalsTable over the given executor.
func NewGoalsTable(exec Executor) *GoalsTable {
	return &GoalsTable{exec: exec}
}

const goalColumns = `id, user_id, target_amount, current_amount, currency,
	start_date, end_date, category, description, created_at`

// FindByID retrieves a goal by primary key. Returns nil when no row matches.
func (t *GoalsTable) FindByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	row := t.exec.QueryRow(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE id = $1", id)
	return scanGoal(row)
}

// Insert creates a new goal and returns its generated ID.
func (t *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		`INSERT INTO goals
		   (user_id, target_amount, currency, start_date, end_date, category, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		create.UserID, create.TargetAmount, create.Currency, create.StartDate,
		create.EndDate, create.Category, create.Description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListByUser returns all goals owned by userID, oldest first.
func (t *GoalsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	rows, err := t.exec.Query(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE user_id = $1 ORDER BY created_at, id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, goal)
	}
	return result, rows.Err()
}

// ApplyContribution adds delta to the goal's accumulated savings, capped at
// the target, as one conditional statement. Concurrent contributions cannot
// overshoot the target because there is no read-modify-write. Returns the
// updated goal, or nil when the goal does not exist.
func (t *GoalsTable) ApplyContribution(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*Goal, error) {
	row := t.exec.QueryRow(ctx,
		`UPDATE goals
		 SET current_amount = LEAST(current_amount + $2, target_amount)
		 WHERE id = $1
		 RETURNING `+goalColumns,
		id, delta)
	return scanGoal(row)
}

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.TargetAmount, &g.CurrentAmount,
		&g.Currency, &g.StartDate, &g.EndDate, &g.Category, &g.Description,
		&g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
