package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrDBPathNotFound is returned when no database path could be resolved
// from the argument, the environment, or the known relative locations.
var ErrDBPathNotFound = fmt.Errorf("no product database found")

type Config struct {
	DBPath   string
	DocsRoot string

	BatchLimit int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:     getEnv("DB_PATH", ""),
		DocsRoot:   getEnv("DOCS_ROOT", filepath.Join(cwd, "data")),
		BatchLimit: getEnvInt("BATCH_LIMIT", 200),
	}

	return cfg, nil
}

// TempDir holds the externally produced excel_import_*.json and
// extracted_*.json snapshot files.
func (c Config) TempDir() string {
	return filepath.Join(c.DocsRoot, "_temp")
}

// ConsolidatedDir receives the consolidated record snapshots.
func (c Config) ConsolidatedDir() string {
	return filepath.Join(c.DocsRoot, "_consolidated")
}

// dbPathCandidates are checked relative to the working directory when
// neither the flag nor DB_PATH names a database.
var dbPathCandidates = []string{
	filepath.Join("data", "products.db"),
	"products.db",
}

// ResolveDBPath applies the resolution order: explicit argument, DB_PATH
// environment value, known relative candidates, error.
func (c Config) ResolveDBPath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}
	if strings.TrimSpace(c.DBPath) != "" {
		return c.DBPath, nil
	}
	for _, candidate := range dbPathCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrDBPathNotFound
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
