package db

import (
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/dgarciadev/adventureworks-api/internal/config"
)

// Connect opens the SQL Server connection described by cfg and verifies it
// with a ping. The returned handle is shared by every repository.
func Connect(cfg *config.Config) (*sql.DB, error) {
	conn, err := sql.Open(cfg.DBDriver, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return conn, nil
}
