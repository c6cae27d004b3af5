package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdvisorySession struct {
	Id              int64               `gorm:"primaryKey;autoIncrement"`
	UserId          int64               `gorm:"column:usuario_id;not null;index"`
	PurposeId       int16               `gorm:"column:proposito_sesion_id;type:smallint;not null;default:1"`
	ObjectiveId     *int16              `gorm:"column:objetivo_id;type:smallint"`
	InitialCapital  decimal.NullDecimal `gorm:"column:capital_inicial;type:numeric"`
	HorizonMonths   *int16              `gorm:"column:horizonte_temporal;type:smallint"`
	RiskToleranceId *int16              `gorm:"column:tolerancia_al_riesgo_id;type:smallint"`
	CreatedAt       time.Time           `gorm:"column:fecha_creacion;autoCreateTime"`

	User          *User           `gorm:"foreignKey:UserId"`
	Purpose       *SessionPurpose `gorm:"foreignKey:PurposeId"`
	Objective     *Objective      `gorm:"foreignKey:ObjectiveId"`
	RiskTolerance *RiskTolerance  `gorm:"foreignKey:RiskToleranceId"`
}

func (AdvisorySession) TableName() string {
	return "sesion_asesoria"
}

// SessionAssociations loads everything the chat relay needs in one query set.
func SessionAssociations() []string {
	paths := []string{"Purpose", "Objective", "RiskTolerance", "User"}
	for _, a := range UserAssociations {
		paths = append(paths, "User."+a)
	}
	return paths
}

type SessionDetail struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	SessionId  int64  `gorm:"column:sesion_asesoria_id;not null;index"`
	UserText   string `gorm:"column:texto_usuario;type:varchar(8000);not null"`
	SystemText string `gorm:"column:texto_sistema;type:varchar(8000);not null"`

	Session *AdvisorySession `gorm:"foreignKey:SessionId"`
}

func (SessionDetail) TableName() string {
	return "sesion_asesoria_detalle"
}
