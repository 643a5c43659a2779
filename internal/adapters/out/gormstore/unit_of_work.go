package gormstore

import (
	"context"

	"foodrun/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates SQL-transaction units of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork on a SQL transaction. The
// repositories it hands out run on the transaction once Begin has been
// called, so a rollback takes their writes with it.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin on an already-begun unit is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Rolling back a finished or never-begun
// unit is a no-op, which supports deferring a rollback right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order repository bound to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return NewGormOrderRepository(uow.conn())
}

// RatingRepository returns the rating repository bound to this unit of work.
func (uow *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	return NewGormRatingRepository(uow.conn())
}

// UserRepository returns the user repository bound to this unit of work.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
