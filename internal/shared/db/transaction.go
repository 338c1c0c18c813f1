// Package db carries a gorm transaction through context so that several
// repositories (ticket, routing rule, user) can share one unit of work,
// as the assignment orchestrator needs when it writes assignee and
// bookkeeping together.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which the open transaction travels.
type txKey struct{}

// TransactionManager wraps the service's gorm handle and opens transactions
// whose scope is the callback passed to RunInTransaction.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction. Repository calls made with
// the derived context join that transaction; fn returning an error rolls
// everything back, nil commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction carried by ctx, or the plain handle when the
// caller is not inside RunInTransaction.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side accessor: it yields the enclosing
// transaction when one is open and defaultDB otherwise, so repository methods
// behave identically inside and outside a unit of work.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
