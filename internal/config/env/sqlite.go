package env

import (
	"os"

	"spinx_backend/internal/config"
)

const (
	sqlitePathEnvName = "SQLITE_PATH"
	defaultSQLitePath = "spinx.db"
)

type sqliteConfig struct {
	path string
}

// NewSQLiteConfig — путь к локальному файлу кошелька.
// Переменная необязательная, по умолчанию spinx.db рядом с бинарником
func NewSQLiteConfig() (config.SQLiteConfig, error) {
	path := os.Getenv(sqlitePathEnvName)
	if len(path) == 0 {
		path = defaultSQLitePath
	}

	return &sqliteConfig{
		path: path,
	}, nil
}

func (cfg *sqliteConfig) Path() string {
	return cfg.path
}
