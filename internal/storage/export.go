package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ExportToTOML dumps every kv row into a single TOML file so the whole
// database can be carried to another machine and restored with ImportFromTOML.
func (s *Storage) ExportToTOML(outputPath string) error {
	rows, err := s.DB.Query("SELECT key, value FROM kv ORDER BY key")
	if err != nil {
		return fmt.Errorf("querying kv table: %w", err)
	}
	defer rows.Close()

	dump := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scanning kv row: %w", err)
		}
		dump[key] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating kv rows: %w", err)
	}

	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// ImportFromTOML restores a dump produced by ExportToTOML, replacing any
// existing values for the dumped keys.
func (s *Storage) ImportFromTOML(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dump map[string]string
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for key, value := range dump {
		_, err := tx.Exec(
			"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("restoring key %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
