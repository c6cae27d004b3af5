package model

// LookupRow is the shape shared by every survey catalog table.
type LookupRow struct {
	Id   int16  `gorm:"type:smallint;primaryKey;autoIncrement"`
	Desc string `gorm:"column:desc;type:varchar(500);not null"`
}

type EducationLevel struct{ LookupRow }

func (EducationLevel) TableName() string { return "nivel_educativo" }

type AltInvestmentKnowledge struct{ LookupRow }

func (AltInvestmentKnowledge) TableName() string { return "conocimiento_alt_inversion" }

type InvestingExperience struct{ LookupRow }

func (InvestingExperience) TableName() string { return "experiencia_invirtiendo" }

type MonthlySavingsShare struct{ LookupRow }

func (MonthlySavingsShare) TableName() string { return "porcentaje_ahorro_mensual" }

type SavingsToInvestShare struct{ LookupRow }

func (SavingsToInvestShare) TableName() string { return "porcentaje_ahorro_invertir" }

type HoldingPeriod struct{ LookupRow }

func (HoldingPeriod) TableName() string { return "tiempo_mantener_inversion" }

type InvestmentGoal struct{ LookupRow }

func (InvestmentGoal) TableName() string { return "busca_invertir_en" }

type DrawdownReaction struct{ LookupRow }

func (DrawdownReaction) TableName() string { return "proporcion_inversion_mantener" }

type RiskTolerance struct{ LookupRow }

func (RiskTolerance) TableName() string { return "tolerancia_al_riesgo" }

type Objective struct{ LookupRow }

func (Objective) TableName() string { return "objetivo" }

type SessionPurpose struct{ LookupRow }

func (SessionPurpose) TableName() string { return "proposito_sesion" }

// LookupModels lists the catalog models in migration order.
func LookupModels() []interface{} {
	return []interface{}{
		&EducationLevel{},
		&AltInvestmentKnowledge{},
		&InvestingExperience{},
		&MonthlySavingsShare{},
		&SavingsToInvestShare{},
		&HoldingPeriod{},
		&InvestmentGoal{},
		&DrawdownReaction{},
		&RiskTolerance{},
		&Objective{},
		&SessionPurpose{},
	}
}
