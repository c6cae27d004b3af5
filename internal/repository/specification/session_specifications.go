package specification

import (
	"maverik-copilot-be/internal/model"

	"gorm.io/gorm"
)

// BySessionID filters transcript rows by their session
type BySessionID struct {
	SessionID int64
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sesion_asesoria_id = ?", s.SessionID)
}

// WithSessionGraph preloads the owner, the owner's survey answers and the session lookups.
func WithSessionGraph() Preload {
	return Preload{Associations: model.SessionAssociations()}
}

// WithUserSurvey preloads the eight survey answers of a user.
func WithUserSurvey() Preload {
	return Preload{Associations: model.UserAssociations}
}
