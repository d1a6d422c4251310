package config

import (
	"fmt"
	"os"
)

// Config holds everything read from the environment at startup. It is built
// once in main and passed by reference to the components that need it.
type Config struct {
	DBDriver            string
	DBServer            string
	DBName              string
	DBTrustedConnection bool
	Port                string
}

func Load() *Config {
	return &Config{
		DBDriver:            getEnv("DB_DRIVER", "sqlserver"),
		DBServer:            getEnv("DB_SERVER", "localhost"),
		DBName:              getEnv("DB_NAME", "AdventureWorksLT2022"),
		DBTrustedConnection: getEnv("DB_TRUSTED_CONNECTION", "yes") == "yes",
		Port:                getEnv("PORT", "3000"),
	}
}

// ConnectionString builds the ADO-style DSN understood by go-mssqldb.
func (c *Config) ConnectionString() string {
	trusted := "no"
	if c.DBTrustedConnection {
		trusted = "yes"
	}
	return fmt.Sprintf(
		"server=%s;database=%s;trusted_connection=%s;encrypt=disable",
		c.DBServer, c.DBName, trusted,
	)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
