package entity

import "time"

// DefaultLookupId is the first seeded row of every survey catalog.
const DefaultLookupId int16 = 1

type User struct {
	Id    int64
	Email string
	// Password is generated by the server and stored as is. Login compares it verbatim.
	Password  string
	BirthDate *time.Time

	EducationLevelId         int16
	AltInvestmentKnowledgeId int16
	InvestingExperienceId    int16
	MonthlySavingsShareId    int16
	SavingsToInvestShareId   int16
	HoldingPeriodId          int16
	InvestmentGoalId         int16
	DrawdownReactionId       int16

	// Loaded associations, nil unless preloaded.
	EducationLevel         *Lookup
	AltInvestmentKnowledge *Lookup
	InvestingExperience    *Lookup
	MonthlySavingsShare    *Lookup
	SavingsToInvestShare   *Lookup
	HoldingPeriod          *Lookup
	InvestmentGoal         *Lookup
	DrawdownReaction       *Lookup

	CreatedAt time.Time
	UpdatedAt time.Time
}
