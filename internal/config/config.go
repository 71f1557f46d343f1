// Package config loads application settings from environment
// variables (populated from a .env file in main).
package config

import (
	"errors"
	"os"
)

// Config holds all configuration for the migration.
type Config struct {
	MongoConnString string
	MongoDatabase   string
	DumpDir         string
}

const (
	defaultDatabase = "dumpstore"
	defaultDumpDir  = "data"
)

// LoadConfig reads settings from the environment. Only the Mongo
// connection string is required; database name and dump directory
// have defaults.
func LoadConfig() (*Config, error) {
	mongoConn := os.Getenv("MONGO_CONNECTION_STRING")
	if mongoConn == "" {
		return nil, errors.New("MONGO_CONNECTION_STRING environment variable not set")
	}

	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = defaultDatabase
	}

	dumpDir := os.Getenv("DUMP_DIR")
	if dumpDir == "" {
		dumpDir = defaultDumpDir
	}

	return &Config{
		MongoConnString: mongoConn,
		MongoDatabase:   database,
		DumpDir:         dumpDir,
	}, nil
}
