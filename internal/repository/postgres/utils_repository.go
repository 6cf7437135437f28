package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/address-microservice/internal/domain"
)

// SQLSTATE коды PostgreSQL
const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// sqlState достаёт код ошибки как от pgx (сервис), так и от lib/pq (тесты)
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	return sqlState(err) == foreignKeyViolation
}

func isCheckViolation(err error) bool {
	return sqlState(err) == checkViolation
}

// translationsJSON - колонка JSONB с переводами подразделения
type translationsJSON map[string]domain.SubdivisionTranslation

func (t *translationsJSON) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported translations type %T", src)
	}
	var m map[string]domain.SubdivisionTranslation
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode translations: %w", err)
	}
	if len(m) == 0 {
		m = nil
	}
	*t = m
	return nil
}

func (t translationsJSON) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]domain.SubdivisionTranslation(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func fieldsToStrings(fields []domain.Field) []string {
	result := make([]string, 0, len(fields))
	for _, f := range fields {
		result = append(result, string(f))
	}
	return result
}

func stringsToFields(values []string) []domain.Field {
	result := make([]domain.Field, 0, len(values))
	for _, v := range values {
		result = append(result, domain.Field(v))
	}
	return result
}
