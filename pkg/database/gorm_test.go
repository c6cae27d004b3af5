package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := GormConfig{
		Host:     "db",
		Port:     5433,
		User:     "maverik",
		Password: "secret",
		DBName:   "maverik",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db user=maverik password=secret dbname=maverik port=5433 sslmode=disable", cfg.DSN())

	cfg.Schema = "copilot"
	assert.Contains(t, cfg.DSN(), " search_path=copilot")
}
