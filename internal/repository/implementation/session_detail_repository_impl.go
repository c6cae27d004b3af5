package implementation

import (
	"context"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/mapper"
	"maverik-copilot-be/internal/model"
	"maverik-copilot-be/internal/repository/contract"
	"maverik-copilot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionDetailRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionDetailMapper
}

func NewSessionDetailRepository(db *gorm.DB) contract.SessionDetailRepository {
	return &SessionDetailRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionDetailMapper(),
	}
}

func (r *SessionDetailRepositoryImpl) Create(ctx context.Context, detail *entity.SessionDetail) error {
	m := r.mapper.ToModel(detail)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*detail = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionDetailRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionDetail, error) {
	var rows []*model.SessionDetail
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(rows), nil
}

func (r *SessionDetailRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.SessionDetail{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
