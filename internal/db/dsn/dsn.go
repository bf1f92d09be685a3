// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/festa-familia/festa-admin/internal/config"
)

// Create builds the Data Source Name for the mysql engine from the configuration.
func Create(dbCfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
		dbCfg.DB.Extras,
	)

	return out
}

// CreatePostgres builds the Data Source Name for the postgres engine from the configuration.
func CreatePostgres(dbCfg *config.Config) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Extras,
	)

	return out
}

// CreatePostgresURI builds the URI form of the postgres DSN, used by the
// session storage backend.
func CreatePostgresURI(dbCfg *config.Config) string {
	out := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
	)

	return out
}

// CreateSQLite returns the file path for the sqlite engine.
// An empty configured path falls back to a local file next to the binary.
func CreateSQLite(dbCfg *config.Config) string {
	if dbCfg.DB.Path == "" {
		return "./festa-admin.db"
	}

	return dbCfg.DB.Path
}
