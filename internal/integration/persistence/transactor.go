package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

type txKey struct{}

// gormTransactor implements adapter.Transactor on a gorm transaction.
type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor instance.
func NewTransactor(db *gorm.DB) adapter.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn inside a transaction carried by the context.
// A transaction already present in ctx is reused as a nested savepoint.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
