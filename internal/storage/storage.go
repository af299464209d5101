package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Storage bundles the connection pool with one table accessor per entity.
// Reads go straight through the pool; writes that must be atomic go through
// Write, which hands out a transactional Writer.
type Storage struct {
	Pool         *pgxpool.Pool
	Users        sqlconfig.IUserTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
	Goals        sqlconfig.IGoalTable
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	pool, err := pgxpool.New(ctx, env.PostgresURL())
	if err != nil {
		return nil, err
	}

	return &Storage{
		Pool:         pool,
		Users:        sqlconfig.NewUsersTable(pool),
		Transactions: sqlconfig.NewTransactionsTable(pool),
		Budgets:      sqlconfig.NewBudgetsTable(pool),
		Goals:        sqlconfig.NewGoalsTable(pool),
	}, nil
}

// Write begins a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() {
	s.Pool.Close()
}
