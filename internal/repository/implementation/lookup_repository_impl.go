package implementation

import (
	"context"
	"fmt"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/mapper"
	"maverik-copilot-be/internal/model"
	"maverik-copilot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type LookupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LookupMapper
}

func NewLookupRepository(db *gorm.DB) contract.LookupRepository {
	return &LookupRepositoryImpl{
		db:     db,
		mapper: mapper.NewLookupMapper(),
	}
}

func (r *LookupRepositoryImpl) FindAll(ctx context.Context, catalog string) ([]*entity.Lookup, error) {
	// the table name is interpolated, so only known catalogs get through
	if !entity.IsCatalog(catalog) {
		return nil, fmt.Errorf("unknown catalog %q", catalog)
	}

	var rows []model.LookupRow
	if err := r.db.WithContext(ctx).Table(catalog).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(rows), nil
}
