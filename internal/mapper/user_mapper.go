package mapper

import (
	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	e := &entity.User{
		Id:        u.Id,
		Email:     u.Email,
		Password:  u.Password,
		BirthDate: u.BirthDate,

		EducationLevelId:         u.EducationLevelId,
		AltInvestmentKnowledgeId: u.AltInvestmentKnowledgeId,
		InvestingExperienceId:    u.InvestingExperienceId,
		MonthlySavingsShareId:    u.MonthlySavingsShareId,
		SavingsToInvestShareId:   u.SavingsToInvestShareId,
		HoldingPeriodId:          u.HoldingPeriodId,
		InvestmentGoalId:         u.InvestmentGoalId,
		DrawdownReactionId:       u.DrawdownReactionId,

		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.EducationLevel != nil {
		e.EducationLevel = lookupToEntity(&u.EducationLevel.LookupRow)
	}
	if u.AltInvestmentKnowledge != nil {
		e.AltInvestmentKnowledge = lookupToEntity(&u.AltInvestmentKnowledge.LookupRow)
	}
	if u.InvestingExperience != nil {
		e.InvestingExperience = lookupToEntity(&u.InvestingExperience.LookupRow)
	}
	if u.MonthlySavingsShare != nil {
		e.MonthlySavingsShare = lookupToEntity(&u.MonthlySavingsShare.LookupRow)
	}
	if u.SavingsToInvestShare != nil {
		e.SavingsToInvestShare = lookupToEntity(&u.SavingsToInvestShare.LookupRow)
	}
	if u.HoldingPeriod != nil {
		e.HoldingPeriod = lookupToEntity(&u.HoldingPeriod.LookupRow)
	}
	if u.InvestmentGoal != nil {
		e.InvestmentGoal = lookupToEntity(&u.InvestmentGoal.LookupRow)
	}
	if u.DrawdownReaction != nil {
		e.DrawdownReaction = lookupToEntity(&u.DrawdownReaction.LookupRow)
	}
	return e
}

// ToModel maps the scalar columns only. Associations are read-only catalogs.
func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:        u.Id,
		Email:     u.Email,
		Password:  u.Password,
		BirthDate: u.BirthDate,

		EducationLevelId:         u.EducationLevelId,
		AltInvestmentKnowledgeId: u.AltInvestmentKnowledgeId,
		InvestingExperienceId:    u.InvestingExperienceId,
		MonthlySavingsShareId:    u.MonthlySavingsShareId,
		SavingsToInvestShareId:   u.SavingsToInvestShareId,
		HoldingPeriodId:          u.HoldingPeriodId,
		InvestmentGoalId:         u.InvestmentGoalId,
		DrawdownReactionId:       u.DrawdownReactionId,

		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, m.ToEntity(u))
	}
	return out
}
