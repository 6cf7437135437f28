package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	apperrors "github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/locale"
)

type addressFormatRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAddressFormatRepository(db *DB) repository.AddressFormatStore {
	return &addressFormatRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type addressFormatRow struct {
	CountryCode            string         `db:"country_code"`
	Format                 string         `db:"format"`
	RequiredFields         pq.StringArray `db:"required_fields"`
	UppercaseFields        pq.StringArray `db:"uppercase_fields"`
	AdministrativeAreaType string         `db:"administrative_area_type"`
	LocalityType           string         `db:"locality_type"`
	DependentLocalityType  string         `db:"dependent_locality_type"`
	PostalCodeType         string         `db:"postal_code_type"`
	PostalCodePattern      string         `db:"postal_code_pattern"`
	PostalCodePrefix       string         `db:"postal_code_prefix"`
}

type translationRow struct {
	CountryCode string `db:"country_code"`
	Locale      string `db:"locale"`
	Format      string `db:"format"`
}

const selectAddressFormat = `
	SELECT country_code, format, required_fields, uppercase_fields,
		administrative_area_type, locality_type, dependent_locality_type, postal_code_type,
		postal_code_pattern, postal_code_prefix
	FROM address_formats
`

func (row *addressFormatRow) toDomain() *domain.AddressFormat {
	return &domain.AddressFormat{
		CountryCode:            row.CountryCode,
		Format:                 row.Format,
		RequiredFields:         stringsToFields(row.RequiredFields),
		UppercaseFields:        stringsToFields(row.UppercaseFields),
		AdministrativeAreaType: domain.AdministrativeAreaType(row.AdministrativeAreaType),
		LocalityType:           domain.LocalityType(row.LocalityType),
		DependentLocalityType:  domain.DependentLocalityType(row.DependentLocalityType),
		PostalCodeType:         domain.PostalCodeType(row.PostalCodeType),
		PostalCodePattern:      row.PostalCodePattern,
		PostalCodePrefix:       row.PostalCodePrefix,
	}
}

func (r *addressFormatRepository) Get(ctx context.Context, countryCode, tag string) (*domain.AddressFormat, error) {
	var row addressFormatRow
	err := r.db.GetContext(ctx, &row, selectAddressFormat+` WHERE country_code = $1`, countryCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAddressFormatNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get address format", zap.String("country_code", countryCode), zap.Error(err))
		return nil, apperrors.NewDataSourceError("get address format", err)
	}

	format := row.toDomain()
	candidates := locale.Candidates(tag)
	if len(candidates) == 0 {
		return format, nil
	}

	var translations []translationRow
	err = r.db.SelectContext(ctx, &translations, `
		SELECT country_code, locale, format
		FROM address_format_translations
		WHERE country_code = $1 AND locale = ANY($2)
	`, countryCode, pq.Array(candidates))
	if err != nil {
		r.logger.Error("Failed to get address format translations", zap.String("country_code", countryCode), zap.Error(err))
		return nil, apperrors.NewDataSourceError("get address format translations", err)
	}

	applyTranslation(format, translations, candidates)
	return format, nil
}

func (r *addressFormatRepository) GetAll(ctx context.Context, tag string) ([]*domain.AddressFormat, error) {
	var rows []addressFormatRow
	if err := r.db.SelectContext(ctx, &rows, selectAddressFormat+` ORDER BY country_code`); err != nil {
		r.logger.Error("Failed to list address formats", zap.Error(err))
		return nil, apperrors.NewDataSourceError("list address formats", err)
	}

	byCountry := make(map[string][]translationRow)
	candidates := locale.Candidates(tag)
	if len(candidates) > 0 {
		var translations []translationRow
		err := r.db.SelectContext(ctx, &translations, `
			SELECT country_code, locale, format
			FROM address_format_translations
			WHERE locale = ANY($1)
		`, pq.Array(candidates))
		if err != nil {
			r.logger.Error("Failed to list address format translations", zap.Error(err))
			return nil, apperrors.NewDataSourceError("list address format translations", err)
		}
		for _, t := range translations {
			byCountry[t.CountryCode] = append(byCountry[t.CountryCode], t)
		}
	}

	formats := make([]*domain.AddressFormat, 0, len(rows))
	for i := range rows {
		format := rows[i].toDomain()
		applyTranslation(format, byCountry[format.CountryCode], candidates)
		formats = append(formats, format)
	}
	return formats, nil
}

// applyTranslation выбирает перевод по порядку кандидатов локали
func applyTranslation(format *domain.AddressFormat, translations []translationRow, candidates []string) {
	for _, candidate := range candidates {
		for _, t := range translations {
			if t.Locale == candidate {
				format.Format = t.Format
				format.Locale = candidate
				return
			}
		}
	}
}

func (r *addressFormatRepository) Save(ctx context.Context, format *domain.AddressFormat) error {
	query := `
		INSERT INTO address_formats (
			country_code, format, required_fields, uppercase_fields,
			administrative_area_type, locality_type, dependent_locality_type, postal_code_type,
			postal_code_pattern, postal_code_prefix
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (country_code) DO UPDATE SET
			format = EXCLUDED.format,
			required_fields = EXCLUDED.required_fields,
			uppercase_fields = EXCLUDED.uppercase_fields,
			administrative_area_type = EXCLUDED.administrative_area_type,
			locality_type = EXCLUDED.locality_type,
			dependent_locality_type = EXCLUDED.dependent_locality_type,
			postal_code_type = EXCLUDED.postal_code_type,
			postal_code_pattern = EXCLUDED.postal_code_pattern,
			postal_code_prefix = EXCLUDED.postal_code_prefix,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		format.CountryCode,
		format.Format,
		pq.Array(fieldsToStrings(format.RequiredFields)),
		pq.Array(fieldsToStrings(format.UppercaseFields)),
		string(format.AdministrativeAreaType),
		string(format.LocalityType),
		string(format.DependentLocalityType),
		string(format.PostalCodeType),
		format.PostalCodePattern,
		format.PostalCodePrefix,
	)
	if err != nil {
		r.logger.Error("Failed to save address format", zap.String("country_code", format.CountryCode), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	return nil
}

func (r *addressFormatRepository) SaveTranslation(ctx context.Context, countryCode, tag, template string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO address_format_translations (country_code, locale, format)
		VALUES ($1, $2, $3)
		ON CONFLICT (country_code, locale) DO UPDATE SET format = EXCLUDED.format
	`, countryCode, locale.Normalize(tag), template)
	if isForeignKeyViolation(err) {
		return apperrors.ErrAddressFormatNotFound
	}
	if err != nil {
		r.logger.Error("Failed to save address format translation",
			zap.String("country_code", countryCode),
			zap.String("locale", tag),
			zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	return nil
}

// Delete удаляет формат; переводы и подразделения удаляются каскадно внешними ключами
func (r *addressFormatRepository) Delete(ctx context.Context, countryCode string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM address_formats WHERE country_code = $1`, countryCode)
	if err != nil {
		r.logger.Error("Failed to delete address format", zap.String("country_code", countryCode), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.ErrDatabaseError
	}
	if affected == 0 {
		return apperrors.ErrAddressFormatNotFound
	}
	return nil
}
