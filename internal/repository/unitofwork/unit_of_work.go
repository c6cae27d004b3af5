package unitofwork

import (
	"context"

	"maverik-copilot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AdvisorySessionRepository() contract.AdvisorySessionRepository
	SessionDetailRepository() contract.SessionDetailRepository
	LookupRepository() contract.LookupRepository
}
