package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rotinasync/rotina/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// KV is the storage surface every store is built on: one JSON document per
// namespaced key, whole-value read and whole-value replace. This mirrors the
// mobile app's AsyncStorage slots.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Namespaced keys of every persisted collection.
const (
	KeyTemplates    = "rotina:templates"
	KeyHistory      = "rotina:history"
	KeySpotifyToken = "rotina:spotify_token"
	KeyWater        = "rotina:water"
	KeyTasks        = "rotina:tasks"
	KeyActivity     = "rotina:activity"
	KeyNutrition    = "rotina:nutrition"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	// A .env file is optional; the environment may already be set.
	_ = godotenv.Load()

	url := os.Getenv("ROTINA_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ROTINA_DATABASE_URL not set and no config file found: %v\n", err)
			os.Exit(1)
		}
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		fmt.Fprintf(os.Stderr, "No database connection string configured\n")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s\n", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        );
    `)
	return err
}

func (s *Storage) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Storage) Set(key, value string) error {
	_, err := s.DB.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(key string) error {
	if _, err := s.DB.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
