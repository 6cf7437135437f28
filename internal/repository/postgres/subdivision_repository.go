package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	apperrors "github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/locale"
)

type subdivisionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSubdivisionRepository(db *DB) repository.SubdivisionStore {
	return &subdivisionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type subdivisionRow struct {
	ID                string           `db:"id"`
	CountryCode       string           `db:"country_code"`
	ParentID          sql.NullString   `db:"parent_id"`
	Code              string           `db:"code"`
	Name              string           `db:"name"`
	PostalCodePattern string           `db:"postal_code_pattern"`
	Translations      translationsJSON `db:"translations"`
	HasChildren       bool             `db:"has_children"`
}

const selectSubdivision = `
	SELECT s.id, s.country_code, s.parent_id, s.code, s.name, s.postal_code_pattern, s.translations,
		EXISTS (SELECT 1 FROM subdivisions c WHERE c.parent_id = s.id) AS has_children
	FROM subdivisions s
`

func (row *subdivisionRow) toDomain() *domain.Subdivision {
	return &domain.Subdivision{
		ID:                row.ID,
		CountryCode:       row.CountryCode,
		ParentID:          row.ParentID.String,
		Code:              row.Code,
		Name:              row.Name,
		PostalCodePattern: row.PostalCodePattern,
		HasChildren:       row.HasChildren,
		Translations:      row.Translations,
	}
}

// Depth считает самую длинную цепочку от верхнего уровня до листа
func (r *subdivisionRepository) Depth(ctx context.Context, countryCode string) (int, error) {
	query := `
		WITH RECURSIVE tree AS (
			SELECT id, 1 AS level
			FROM subdivisions
			WHERE country_code = $1 AND parent_id IS NULL
			UNION ALL
			SELECT s.id, t.level + 1
			FROM subdivisions s
			JOIN tree t ON s.parent_id = t.id
			WHERE t.level < $2
		)
		SELECT COALESCE(MAX(level), 0) FROM tree
	`

	var depth int
	if err := r.db.GetContext(ctx, &depth, query, countryCode, domain.MaxSubdivisionDepth); err != nil {
		r.logger.Error("Failed to get subdivision depth", zap.String("country_code", countryCode), zap.Error(err))
		return 0, apperrors.NewDataSourceError("get subdivision depth", err)
	}
	return depth, nil
}

func (r *subdivisionRepository) GetList(ctx context.Context, countryCode, parentID, tag string) ([]*domain.Subdivision, error) {
	var (
		rows []subdivisionRow
		err  error
	)
	if parentID == "" {
		err = r.db.SelectContext(ctx, &rows,
			selectSubdivision+` WHERE s.country_code = $1 AND s.parent_id IS NULL ORDER BY s.id COLLATE "C"`,
			countryCode)
	} else {
		err = r.db.SelectContext(ctx, &rows,
			selectSubdivision+` WHERE s.country_code = $1 AND s.parent_id = $2 ORDER BY s.id COLLATE "C"`,
			countryCode, parentID)
	}
	if err != nil {
		r.logger.Error("Failed to list subdivisions",
			zap.String("country_code", countryCode),
			zap.String("parent_id", parentID),
			zap.Error(err))
		return nil, apperrors.NewDataSourceError("list subdivisions", err)
	}

	list := make([]*domain.Subdivision, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toDomain().Localized(tag))
	}
	return list, nil
}

func (r *subdivisionRepository) Get(ctx context.Context, id, tag string) (*domain.Subdivision, error) {
	if _, ok := domain.SubdivisionCountry(id); !ok {
		return nil, nil
	}

	var row subdivisionRow
	err := r.db.GetContext(ctx, &row, selectSubdivision+` WHERE s.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get subdivision", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewDataSourceError("get subdivision", err)
	}
	return row.toDomain().Localized(tag), nil
}

func (r *subdivisionRepository) GetAll(ctx context.Context, countryCode string) ([]*domain.Subdivision, error) {
	var rows []subdivisionRow
	err := r.db.SelectContext(ctx, &rows,
		selectSubdivision+` WHERE s.country_code = $1 ORDER BY s.id COLLATE "C"`, countryCode)
	if err != nil {
		r.logger.Error("Failed to list country subdivisions", zap.String("country_code", countryCode), zap.Error(err))
		return nil, apperrors.NewDataSourceError("list country subdivisions", err)
	}

	list := make([]*domain.Subdivision, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toDomain())
	}
	return list, nil
}

func (r *subdivisionRepository) Save(ctx context.Context, sub *domain.Subdivision) error {
	query := `
		INSERT INTO subdivisions (id, country_code, parent_id, code, name, postal_code_pattern, translations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			parent_id = EXCLUDED.parent_id,
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			postal_code_pattern = EXCLUDED.postal_code_pattern,
			translations = EXCLUDED.translations
	`

	translations := make(translationsJSON, len(sub.Translations))
	for tag, t := range sub.Translations {
		translations[locale.Normalize(tag)] = t
	}

	parentID := sql.NullString{String: sub.ParentID, Valid: sub.ParentID != ""}
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.CountryCode, parentID, sub.Code, sub.Name, sub.PostalCodePattern, translations)
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		// нет формата страны или родителя
		return apperrors.ErrSubdivisionNotFound.WithMessage("Parent subdivision not found")
	case isCheckViolation(err):
		return apperrors.ErrInvalidSubdivision.WithMessage("Subdivision id must extend its parent id")
	default:
		r.logger.Error("Failed to save subdivision", zap.String("id", sub.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
}

// Delete удаляет подразделение; потомки удаляются каскадно внешним ключом parent_id
func (r *subdivisionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subdivisions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete subdivision", zap.String("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.ErrDatabaseError
	}
	if affected == 0 {
		return apperrors.ErrSubdivisionNotFound
	}
	return nil
}
