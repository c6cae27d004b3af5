package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurposeGoalAssistance is the proposito_sesion row
// "Buscar asistencia para lograr un objetivo personal".
const PurposeGoalAssistance int16 = 2

// DefaultHorizonMonths applies when a session has no horizon, or a zero one.
const DefaultHorizonMonths = 12

type AdvisorySession struct {
	Id              int64
	UserId          int64
	PurposeId       int16
	ObjectiveId     *int16
	InitialCapital  *decimal.Decimal
	HorizonMonths   *int16
	RiskToleranceId *int16
	CreatedAt       time.Time

	// Loaded associations, nil unless preloaded.
	User          *User
	Purpose       *Lookup
	Objective     *Lookup
	RiskTolerance *Lookup
}

// SessionDetail is one persisted chat turn. Rows are append-only and ordered by Id.
type SessionDetail struct {
	Id         int64
	SessionId  int64
	UserText   string
	SystemText string
}
