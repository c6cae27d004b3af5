package bootstrap

import (
	"maverik-copilot-be/internal/config"
	"maverik-copilot-be/pkg/database"

	"gorm.io/gorm"
)

// OpenDatabase connects with DB_CONNECTION_STRING when set, otherwise with the discrete DB_* settings.
func OpenDatabase(cfg config.DatabaseConfig, verbose bool) (*gorm.DB, error) {
	if cfg.Connection != "" {
		return database.NewGormDBFromDSN(cfg.Connection, verbose)
	}
	return database.NewGormDB(database.GormConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.Username,
		Password: cfg.Password,
		DBName:   cfg.Name,
		Schema:   cfg.Schema,
		SSLMode:  cfg.SSLMode,
		Verbose:  verbose,
	})
}
