package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByCredentials matches email and password exactly, case included.
type ByCredentials struct {
	Email    string
	Password string
}

func (s ByCredentials) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ? AND clave = ?", s.Email, s.Password)
}

// UserOwnedBy filters sessions by their owner
type UserOwnedBy struct {
	UserID int64
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("usuario_id = ?", s.UserID)
}
