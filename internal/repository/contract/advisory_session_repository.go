package contract

import (
	"context"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/specification"
)

type AdvisorySessionRepository interface {
	Create(ctx context.Context, session *entity.AdvisorySession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdvisorySession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdvisorySession, error)
}

type SessionDetailRepository interface {
	Create(ctx context.Context, detail *entity.SessionDetail) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionDetail, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
