package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSessionRequest struct {
	PurposeId       int16            `json:"proposito_sesion_id" validate:"required,min=1"`
	ObjectiveId     *int16           `json:"objetivo_id" validate:"omitempty,min=1"`
	InitialCapital  *decimal.Decimal `json:"capital_inicial"`
	HorizonMonths   *int16           `json:"horizonte_temporal" validate:"omitempty,min=0"`
	RiskToleranceId *int16           `json:"tolerancia_al_riesgo_id" validate:"omitempty,min=1"`
}

type SessionResponse struct {
	Id              int64     `json:"id"`
	UserId          int64     `json:"usuario_id"`
	PurposeId       int16     `json:"proposito_sesion_id"`
	ObjectiveId     *int16    `json:"objetivo_id"`
	InitialCapital  *float64  `json:"capital_inicial"`
	HorizonMonths   *int16    `json:"horizonte_temporal"`
	RiskToleranceId *int16    `json:"tolerancia_al_riesgo_id"`
	CreatedAt       time.Time `json:"fecha_creacion"`
	ChatTitle       string    `json:"titulo_chat"`
	FirstInput      string    `json:"primer_input"`
}

// TurnRequest is one chat turn. A null or empty input asks for the generated first turn.
type TurnRequest struct {
	Input *string `json:"input"`
}

type TurnResponse struct {
	Id        int64  `json:"id"`
	SessionId int64  `json:"sesion_asesoria_id"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}
