package dto

import "time"

// SignUpRequest carries the investor survey. Omitted answers default to the first catalog row.
type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email,max=500"`
	BirthDate *Date  `json:"fecha_nacimiento"`

	EducationLevelId         int16 `json:"nivel_educativo_id" validate:"omitempty,min=1"`
	AltInvestmentKnowledgeId int16 `json:"conocimiento_alt_inversion_id" validate:"omitempty,min=1"`
	InvestingExperienceId    int16 `json:"experiencia_invirtiendo_id" validate:"omitempty,min=1"`
	MonthlySavingsShareId    int16 `json:"porcentaje_ahorro_mensual_id" validate:"omitempty,min=1"`
	SavingsToInvestShareId   int16 `json:"porcentaje_ahorro_invertir_id" validate:"omitempty,min=1"`
	HoldingPeriodId          int16 `json:"tiempo_mantener_inversion_id" validate:"omitempty,min=1"`
	InvestmentGoalId         int16 `json:"busca_invertir_en_id" validate:"omitempty,min=1"`
	DrawdownReactionId       int16 `json:"proporcion_inversion_mantener_id" validate:"omitempty,min=1"`
}

// UserResponse never includes the password.
type UserResponse struct {
	Id        int64  `json:"id"`
	Email     string `json:"email"`
	BirthDate *Date  `json:"fecha_nacimiento"`

	EducationLevelId         int16 `json:"nivel_educativo_id"`
	AltInvestmentKnowledgeId int16 `json:"conocimiento_alt_inversion_id"`
	InvestingExperienceId    int16 `json:"experiencia_invirtiendo_id"`
	MonthlySavingsShareId    int16 `json:"porcentaje_ahorro_mensual_id"`
	SavingsToInvestShareId   int16 `json:"porcentaje_ahorro_invertir_id"`
	HoldingPeriodId          int16 `json:"tiempo_mantener_inversion_id"`
	InvestmentGoalId         int16 `json:"busca_invertir_en_id"`
	DrawdownReactionId       int16 `json:"proporcion_inversion_mantener_id"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"clave" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// WelcomeEmailMessage is published on the welcome mail topic after signup.
type WelcomeEmailMessage struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
