package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// CountSubdivisions returns the number of stored subdivisions of a country
func CountSubdivisions(db *sql.DB, countryCode string) (int, error) {
	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM subdivisions WHERE country_code = $1", countryCode).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subdivisions of %s: %w", countryCode, err)
	}
	return count, nil
}

// CountTranslations returns the number of stored template translations of a country
func CountTranslations(db *sql.DB, countryCode string) (int, error) {
	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM address_format_translations WHERE country_code = $1", countryCode).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count translations of %s: %w", countryCode, err)
	}
	return count, nil
}
