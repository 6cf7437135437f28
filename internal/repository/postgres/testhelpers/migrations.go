package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const upSuffix = ".up.sql"

// ApplyMigrations накатывает миграции схемы адресов (NNNNNN_name.up.sql) по порядку номеров.
// Каждая миграция выполняется в отдельной транзакции; миграции идемпотентны (IF NOT EXISTS),
// поэтому повторный вызов из разных наборов тестов безопасен.
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	names, err := upMigrations(migrationsPath)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no address schema migrations in %s", migrationsPath)
	}

	for _, name := range names {
		if err := applyMigration(db, filepath.Join(migrationsPath, name)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}

func upMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list address schema migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), upSuffix) {
			names = append(names, e.Name())
		}
	}
	// нумерация с ведущими нулями: лексикографический порядок = порядок версий
	sort.Strings(names)
	return names, nil
}

func applyMigration(db *sql.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(script)) == "" {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(script)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
