package mapper

import (
	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/model"
)

func lookupToEntity(r *model.LookupRow) *entity.Lookup {
	if r == nil {
		return nil
	}
	return &entity.Lookup{Id: r.Id, Desc: r.Desc}
}

type LookupMapper struct{}

func NewLookupMapper() *LookupMapper {
	return &LookupMapper{}
}

func (m *LookupMapper) ToEntities(rows []model.LookupRow) []*entity.Lookup {
	out := make([]*entity.Lookup, 0, len(rows))
	for i := range rows {
		out = append(out, lookupToEntity(&rows[i]))
	}
	return out
}
