package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	apperrors "github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/repository/postgres/testhelpers"
)

// SubdivisionRepositoryTestSuite тестирует SubdivisionStore на реальной БД
type SubdivisionRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.SubdivisionStore
	ctx    context.Context
}

func (s *SubdivisionRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewSubdivisionRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *SubdivisionRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

func (s *SubdivisionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.Require().NoError(s.testDB.Cleanup(s.ctx))
	err := testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{
		"address_formats.sql",
		"subdivisions.sql",
	})
	s.Require().NoError(err, "Failed to load fixtures")
}

// ============================================================================
// Depth Tests
// ============================================================================

func (s *SubdivisionRepositoryTestSuite) TestDepth() {
	tests := []struct {
		country string
		want    int
	}{
		{"US", 1},
		{"JP", 3},
		{"ZZ", 0},
		{"XX", 0},
	}

	for _, tt := range tests {
		depth, err := s.repo.Depth(s.ctx, tt.country)
		s.Require().NoError(err)
		s.Equal(tt.want, depth, tt.country)
	}
}

// ============================================================================
// GetList Tests
// ============================================================================

func (s *SubdivisionRepositoryTestSuite) TestGetList_TopLevelSorted() {
	list, err := s.repo.GetList(s.ctx, "US", "", "")

	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("US-CA", list[0].ID)
	s.Equal("US-IL", list[1].ID)
	s.Equal("US-NY", list[2].ID)
	s.False(list[0].HasChildren)
}

func (s *SubdivisionRepositoryTestSuite) TestGetList_ChildrenLocalized() {
	list, err := s.repo.GetList(s.ctx, "JP", "JP-13", "ja")

	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("JP-13-SBY", list[0].ID)
	s.Equal("渋谷区", list[0].Name)
	s.Equal("ja", list[0].Locale)
	s.True(list[0].HasChildren)
}

func (s *SubdivisionRepositoryTestSuite) TestGetList_UnknownParent() {
	list, err := s.repo.GetList(s.ctx, "US", "US-ZZ", "")

	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

// ============================================================================
// Get Tests
// ============================================================================

func (s *SubdivisionRepositoryTestSuite) TestGet_Success() {
	sub, err := s.repo.Get(s.ctx, "JP-13", "ja")

	s.Require().NoError(err)
	s.Require().NotNil(sub)
	s.Equal("東京都", sub.Code)
	s.Equal("JP", sub.CountryCode)
	s.Empty(sub.ParentID)
	s.True(sub.HasChildren)
}

func (s *SubdivisionRepositoryTestSuite) TestGet_NotFoundAndMalformed() {
	for _, id := range []string{"US-ZZ", "IL", "us-il", "US-"} {
		sub, err := s.repo.Get(s.ctx, id, "")
		s.NoError(err, id)
		s.Nil(sub, id)
	}
}

// ============================================================================
// Save / Delete Tests
// ============================================================================

func (s *SubdivisionRepositoryTestSuite) TestSave_Child() {
	sub := &domain.Subdivision{
		ID:          "US-IL-CHI",
		CountryCode: "US",
		ParentID:    "US-IL",
		Code:        "Chicago",
		Name:        "Chicago",
		Translations: map[string]domain.SubdivisionTranslation{
			"zh-Hant": {Name: "芝加哥"},
		},
	}
	s.Require().NoError(s.repo.Save(s.ctx, sub))

	stored, err := s.repo.Get(s.ctx, "US-IL-CHI", "zh-Hant-TW")
	s.Require().NoError(err)
	s.Equal("芝加哥", stored.Name)
	s.Equal("Chicago", stored.Code)

	parent, err := s.repo.Get(s.ctx, "US-IL", "")
	s.Require().NoError(err)
	s.True(parent.HasChildren)
}

func (s *SubdivisionRepositoryTestSuite) TestSave_MissingParent() {
	err := s.repo.Save(s.ctx, &domain.Subdivision{
		ID:          "US-ZZ-ABC",
		CountryCode: "US",
		ParentID:    "US-ZZ",
		Code:        "ABC",
		Name:        "ABC",
	})

	s.ErrorIs(err, apperrors.ErrSubdivisionNotFound)
}

func (s *SubdivisionRepositoryTestSuite) TestSave_IDMustExtendParent() {
	err := s.repo.Save(s.ctx, &domain.Subdivision{
		ID:          "US-CHI",
		CountryCode: "US",
		ParentID:    "US-IL",
		Code:        "Chicago",
		Name:        "Chicago",
	})

	s.ErrorIs(err, apperrors.ErrInvalidSubdivision)
}

func (s *SubdivisionRepositoryTestSuite) TestGetAll_ParentsFirst() {
	list, err := s.repo.GetAll(s.ctx, "JP")

	s.Require().NoError(err)
	s.Require().Len(list, 4)
	s.Equal("JP-13", list[0].ID)
	s.Equal("JP-13-SBY", list[1].ID)
	s.Equal("JP-13-SBY-EBS", list[2].ID)
	s.Equal("JP-27", list[3].ID)
}

func (s *SubdivisionRepositoryTestSuite) TestDelete_Cascades() {
	s.Require().NoError(s.repo.Delete(s.ctx, "JP-13"))

	count, err := testhelpers.CountSubdivisions(s.testDB.DB.DB, "JP")
	s.Require().NoError(err)
	s.Equal(1, count)

	depth, err := s.repo.Depth(s.ctx, "JP")
	s.Require().NoError(err)
	s.Equal(1, depth)
}

func (s *SubdivisionRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, "US-ZZ")

	s.ErrorIs(err, apperrors.ErrSubdivisionNotFound)
}

func TestSubdivisionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SubdivisionRepositoryTestSuite))
}
