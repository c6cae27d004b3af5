package mapper

import (
	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/model"

	"github.com/shopspring/decimal"
)

type AdvisorySessionMapper struct {
	users *UserMapper
}

func NewAdvisorySessionMapper() *AdvisorySessionMapper {
	return &AdvisorySessionMapper{users: NewUserMapper()}
}

func (m *AdvisorySessionMapper) ToEntity(s *model.AdvisorySession) *entity.AdvisorySession {
	if s == nil {
		return nil
	}
	e := &entity.AdvisorySession{
		Id:              s.Id,
		UserId:          s.UserId,
		PurposeId:       s.PurposeId,
		ObjectiveId:     s.ObjectiveId,
		HorizonMonths:   s.HorizonMonths,
		RiskToleranceId: s.RiskToleranceId,
		CreatedAt:       s.CreatedAt,
		User:            m.users.ToEntity(s.User),
	}
	if s.InitialCapital.Valid {
		capital := s.InitialCapital.Decimal
		e.InitialCapital = &capital
	}
	if s.Purpose != nil {
		e.Purpose = lookupToEntity(&s.Purpose.LookupRow)
	}
	if s.Objective != nil {
		e.Objective = lookupToEntity(&s.Objective.LookupRow)
	}
	if s.RiskTolerance != nil {
		e.RiskTolerance = lookupToEntity(&s.RiskTolerance.LookupRow)
	}
	return e
}

func (m *AdvisorySessionMapper) ToModel(s *entity.AdvisorySession) *model.AdvisorySession {
	if s == nil {
		return nil
	}
	out := &model.AdvisorySession{
		Id:              s.Id,
		UserId:          s.UserId,
		PurposeId:       s.PurposeId,
		ObjectiveId:     s.ObjectiveId,
		HorizonMonths:   s.HorizonMonths,
		RiskToleranceId: s.RiskToleranceId,
		CreatedAt:       s.CreatedAt,
	}
	if s.InitialCapital != nil {
		out.InitialCapital = decimal.NewNullDecimal(*s.InitialCapital)
	}
	return out
}

func (m *AdvisorySessionMapper) ToEntities(sessions []*model.AdvisorySession) []*entity.AdvisorySession {
	out := make([]*entity.AdvisorySession, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, m.ToEntity(s))
	}
	return out
}

type SessionDetailMapper struct{}

func NewSessionDetailMapper() *SessionDetailMapper {
	return &SessionDetailMapper{}
}

func (m *SessionDetailMapper) ToEntity(d *model.SessionDetail) *entity.SessionDetail {
	if d == nil {
		return nil
	}
	return &entity.SessionDetail{
		Id:         d.Id,
		SessionId:  d.SessionId,
		UserText:   d.UserText,
		SystemText: d.SystemText,
	}
}

func (m *SessionDetailMapper) ToModel(d *entity.SessionDetail) *model.SessionDetail {
	if d == nil {
		return nil
	}
	return &model.SessionDetail{
		Id:         d.Id,
		SessionId:  d.SessionId,
		UserText:   d.UserText,
		SystemText: d.SystemText,
	}
}

func (m *SessionDetailMapper) ToEntities(details []*model.SessionDetail) []*entity.SessionDetail {
	out := make([]*entity.SessionDetail, 0, len(details))
	for _, d := range details {
		out = append(out, m.ToEntity(d))
	}
	return out
}
