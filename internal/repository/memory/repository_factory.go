package memory

import (
	"context"
	"errors"

	"maverik-copilot-be/internal/repository/contract"
	"maverik-copilot-be/internal/repository/unitofwork"
)

type repositoryFactory struct {
	store *Store
}

// NewRepositoryFactory serves every unit of work from one shared Store.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork tracks transaction state only. Writes apply immediately.
type unitOfWork struct {
	store *Store
	inTx  bool
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *unitOfWork) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.inTx = false
	return nil
}

func (u *unitOfWork) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.inTx = false
	return nil
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) AdvisorySessionRepository() contract.AdvisorySessionRepository {
	return &advisorySessionRepository{store: u.store}
}

func (u *unitOfWork) SessionDetailRepository() contract.SessionDetailRepository {
	return &sessionDetailRepository{store: u.store}
}

func (u *unitOfWork) LookupRepository() contract.LookupRepository {
	return &lookupRepository{store: u.store}
}
