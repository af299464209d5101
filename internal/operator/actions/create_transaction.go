package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateTransaction inserts a transaction and, when it is income referencing
// a goal, allocates the configured savings share to that goal in the same
// database transaction.
//
// Goal allocation is best-effort relative to transaction recording: a missing
// goal is logged and skipped, never failing the write.
type CreateTransaction struct {
	Create         *sqlconfig.TransactionCreate
	SavingsPercent decimal.Decimal

	// Created holds the inserted row after a successful Perform.
	Created *sqlconfig.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, a.Create)
	if err != nil {
		return err
	}

	if a.Create.Kind == finance.KindIncome && a.Create.GoalID != nil {
		if err := a.allocateSavings(ctx, writer, *a.Create.GoalID); err != nil {
			return err
		}
	}

	created, err := writer.Transactions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if created == nil {
		return errors.New("transaction vanished after insert")
	}
	a.Created = created
	return nil
}

// allocateSavings applies the savings share to the referenced goal. A goal
// that does not exist is logged and skipped so the transaction write still
// succeeds. A statement failure aborts the surrounding database transaction,
// so that one does propagate.
func (a *CreateTransaction) allocateSavings(ctx context.Context, writer *storage.Writer, goalID uuid.UUID) error {
	savings, err := finance.AllocateSavings(a.Create.Amount, a.SavingsPercent)
	if err != nil {
		// Config-supplied percentage is validated at startup; log and
		// skip rather than losing the transaction.
		logrus.WithError(err).WithField("goalID", goalID).
			Error("CreateTransaction.allocateSavings.percentage")
		return nil
	}

	goal, err := writer.Goals.ApplyContribution(ctx, goalID, savings)
	if err != nil {
		return err
	}
	if goal == nil {
		logrus.WithField("goalID", goalID).
			Warn("CreateTransaction.allocateSavings.goal not found")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"goalID":        goalID,
		"savings":       savings.String(),
		"currentAmount": goal.CurrentAmount.String(),
	}).Info("CreateTransaction.allocateSavings.applied")
	return nil
}
