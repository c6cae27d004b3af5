package model

import "time"

type User struct {
	Id        int64      `gorm:"primaryKey;autoIncrement"`
	Email     string     `gorm:"type:varchar(500);uniqueIndex;not null"`
	Password  string     `gorm:"column:clave;type:varchar(500);not null"`
	BirthDate *time.Time `gorm:"column:fecha_nacimiento;type:date"`

	EducationLevelId         int16 `gorm:"column:nivel_educativo_id;type:smallint;not null;default:1"`
	AltInvestmentKnowledgeId int16 `gorm:"column:conocimiento_alt_inversion_id;type:smallint;not null;default:1"`
	InvestingExperienceId    int16 `gorm:"column:experiencia_invirtiendo_id;type:smallint;not null;default:1"`
	MonthlySavingsShareId    int16 `gorm:"column:porcentaje_ahorro_mensual_id;type:smallint;not null;default:1"`
	SavingsToInvestShareId   int16 `gorm:"column:porcentaje_ahorro_invertir_id;type:smallint;not null;default:1"`
	HoldingPeriodId          int16 `gorm:"column:tiempo_mantener_inversion_id;type:smallint;not null;default:1"`
	InvestmentGoalId         int16 `gorm:"column:busca_invertir_en_id;type:smallint;not null;default:1"`
	DrawdownReactionId       int16 `gorm:"column:proporcion_inversion_mantener_id;type:smallint;not null;default:1"`

	EducationLevel         *EducationLevel         `gorm:"foreignKey:EducationLevelId"`
	AltInvestmentKnowledge *AltInvestmentKnowledge `gorm:"foreignKey:AltInvestmentKnowledgeId"`
	InvestingExperience    *InvestingExperience    `gorm:"foreignKey:InvestingExperienceId"`
	MonthlySavingsShare    *MonthlySavingsShare    `gorm:"foreignKey:MonthlySavingsShareId"`
	SavingsToInvestShare   *SavingsToInvestShare   `gorm:"foreignKey:SavingsToInvestShareId"`
	HoldingPeriod          *HoldingPeriod          `gorm:"foreignKey:HoldingPeriodId"`
	InvestmentGoal         *InvestmentGoal         `gorm:"foreignKey:InvestmentGoalId"`
	DrawdownReaction       *DrawdownReaction       `gorm:"foreignKey:DrawdownReactionId"`

	CreatedAt time.Time `gorm:"column:fecha_creacion;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime"`
}

func (User) TableName() string {
	return "usuario"
}

// UserAssociations are the preload paths needed to build a user profile.
var UserAssociations = []string{
	"EducationLevel",
	"AltInvestmentKnowledge",
	"InvestingExperience",
	"MonthlySavingsShare",
	"SavingsToInvestShare",
	"HoldingPeriod",
	"InvestmentGoal",
	"DrawdownReaction",
}
