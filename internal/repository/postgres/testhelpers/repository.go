package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAddressFormatRepositoryForTest creates an address format repository with test database and logger
func NewAddressFormatRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AddressFormatStore {
	return postgres.NewAddressFormatRepository(NewDBForTest(db, logger))
}

// NewSubdivisionRepositoryForTest creates a subdivision repository with test database and logger
func NewSubdivisionRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SubdivisionStore {
	return postgres.NewSubdivisionRepository(NewDBForTest(db, logger))
}
