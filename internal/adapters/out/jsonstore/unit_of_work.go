package jsonstore

import (
	"context"
	"errors"
	"time"

	"foodrun/internal/core/ports"

	"github.com/gofrs/flock"
)

// ErrNoActiveTransaction is returned when Commit is called before Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// lockRetryInterval is how often an acquiring unit of work re-checks a held
// file lock. flock blocks the goroutine, so the interval also bounds how
// quickly context cancellation is observed.
const lockRetryInterval = 25 * time.Millisecond

// UnitOfWorkFactory creates file-locked units of work over a JSON store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each instance opens its own lock
// handle, so units created in the same process contend like separate
// processes do.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork over the JSON files. Begin acquires
// the advisory lock and loads the files; repository mutations stay in memory
// until Commit rewrites the files inside the lock. Rollback just drops the
// in-memory state, leaving the files exactly as Begin found them.
type UnitOfWork struct {
	store *Store
	lock  *flock.Flock
	state *storeState
}

// Begin acquires the store lock and loads current file state. Calling Begin
// on an already-begun unit is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.state != nil {
		return nil
	}

	lock := flock.New(uow.store.lockPath())
	if _, err := lock.TryLockContext(ctx, lockRetryInterval); err != nil {
		return err
	}

	uow.lock = lock
	uow.state = uow.store.loadState()
	return nil
}

// Commit writes the mutated state back to the files and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.state == nil {
		return ErrNoActiveTransaction
	}

	err := uow.store.saveState(uow.state)
	uow.state = nil
	if unlockErr := uow.lock.Unlock(); err == nil {
		err = unlockErr
	}
	uow.lock = nil
	return err
}

// Rollback discards the in-memory state and releases the lock. Rolling back
// a finished or never-begun unit is a no-op, which supports deferring a
// rollback right after Begin.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.state == nil {
		return nil
	}

	uow.state = nil
	err := uow.lock.Unlock()
	uow.lock = nil
	return err
}

// OrderRepository returns the order repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// RatingRepository returns the rating repository bound to this unit of work.
func (uow *UnitOfWork) RatingRepository() ports.RatingRepository {
	return &ratingRepository{uow: uow}
}

// UserRepository returns the user repository bound to this unit of work.
func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: uow}
}
