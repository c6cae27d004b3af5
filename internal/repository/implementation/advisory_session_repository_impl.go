package implementation

import (
	"context"
	"errors"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/mapper"
	"maverik-copilot-be/internal/model"
	"maverik-copilot-be/internal/repository/contract"
	"maverik-copilot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AdvisorySessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdvisorySessionMapper
}

func NewAdvisorySessionRepository(db *gorm.DB) contract.AdvisorySessionRepository {
	return &AdvisorySessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdvisorySessionMapper(),
	}
}

func (r *AdvisorySessionRepositoryImpl) Create(ctx context.Context, session *entity.AdvisorySession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdvisorySessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdvisorySession, error) {
	var m model.AdvisorySession
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdvisorySessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdvisorySession, error) {
	var rows []*model.AdvisorySession
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(rows), nil
}
