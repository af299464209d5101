package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	User        *UserService
	Transaction *TransactionService
	Budget      *BudgetService
	Goal        *GoalService
	Report      *ReportService
}

// NewService creates a new Service with the given storage and write operator.
func NewService(store *storage.Storage, op *operator.OperatorDelegator, savingsPercent decimal.Decimal) *Service {
	return &Service{
		User:        NewUserService(store),
		Transaction: NewTransactionService(store, op, savingsPercent),
		Budget:      NewBudgetService(store),
		Goal:        NewGoalService(store, op),
		Report:      NewReportService(store),
	}
}
