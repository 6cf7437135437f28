package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/usecase"
	"github.com/address-microservice/internal/usecase/dto"
)

func newSubdivisionUseCase(env *testEnv, invalidator *MockCacheInvalidator) *usecase.SubdivisionUseCase {
	return usecase.NewSubdivisionUseCase(env.subdivisionResolver, env.subdivisions, env.formats, invalidator, zap.NewNop())
}

func TestSubdivisionUseCase_Children(t *testing.T) {
	env := newTestEnv(t)
	uc := newSubdivisionUseCase(env, &MockCacheInvalidator{})
	ctx := context.Background()

	resp, err := uc.Children(ctx, "br", "BR-SP", "")

	require.NoError(t, err)
	assert.Equal(t, "BR", resp.CountryCode)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, dto.SubdivisionOption{ID: "BR-SP-CPQ", Code: "Campinas", Name: "Campinas"}, resp.Items[0])

	depth, err := uc.Depth(ctx, "cn")
	require.NoError(t, err)
	assert.Equal(t, 3, depth.Depth)
}

func TestSubdivisionUseCase_Get(t *testing.T) {
	env := newTestEnv(t)
	uc := newSubdivisionUseCase(env, &MockCacheInvalidator{})
	ctx := context.Background()

	sub, err := uc.Get(ctx, "CN-SC", "zh")
	require.NoError(t, err)
	assert.Equal(t, "四川省", sub.Name)

	_, err = uc.Get(ctx, "CN-XX", "")
	assert.ErrorIs(t, err, errors.ErrSubdivisionNotFound)
}

func TestSubdivisionUseCase_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("creates child", func(t *testing.T) {
		env := newTestEnv(t)
		invalidator := &MockCacheInvalidator{}
		invalidator.On("InvalidateSubdivisions", ctx, "BR").Return(nil)
		uc := newSubdivisionUseCase(env, invalidator)

		sub, err := uc.Save(ctx, "BR-SP-SJC", dto.SaveSubdivisionRequest{
			ParentID:          "BR-SP",
			Code:              "São José dos Campos",
			Name:              " São José dos Campos ",
			PostalCodePattern: "12[2-3]",
			Translations: map[string]dto.SubdivisionTranslation{
				"en": {Name: "Saint Joseph of the Fields"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "São José dos Campos", sub.Name)
		assert.Equal(t, "BR", sub.CountryCode)

		children, err := uc.Children(ctx, "BR", "BR-SP", "en")
		require.NoError(t, err)
		assert.Equal(t, 3, children.Total)
		assert.Equal(t, "Saint Joseph of the Fields", children.Items[1].Name)
		invalidator.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		id      string
		req     dto.SaveSubdivisionRequest
		wantErr error
	}{
		{
			name:    "malformed id",
			id:      "SP",
			req:     dto.SaveSubdivisionRequest{Code: "SP", Name: "São Paulo"},
			wantErr: errors.ErrInvalidSubdivision,
		},
		{
			name:    "id does not extend parent",
			id:      "BR-SJC",
			req:     dto.SaveSubdivisionRequest{ParentID: "BR-SP", Code: "SJC", Name: "São José dos Campos"},
			wantErr: errors.ErrInvalidSubdivision,
		},
		{
			name:    "parent of another country",
			id:      "BR-SP-X",
			req:     dto.SaveSubdivisionRequest{ParentID: "US-CA", Code: "X", Name: "X"},
			wantErr: errors.ErrInvalidSubdivision,
		},
		{
			name:    "missing parent",
			id:      "BR-MG-BH",
			req:     dto.SaveSubdivisionRequest{ParentID: "BR-MG", Code: "Belo Horizonte", Name: "Belo Horizonte"},
			wantErr: errors.ErrSubdivisionNotFound,
		},
		{
			name:    "country without format",
			id:      "AT-9",
			req:     dto.SaveSubdivisionRequest{Code: "Wien", Name: "Wien"},
			wantErr: errors.ErrAddressFormatNotFound,
		},
		{
			name:    "hierarchy too deep",
			id:      "CN-SC-CD-JJ-CS",
			req:     dto.SaveSubdivisionRequest{ParentID: "CN-SC-CD-JJ", Code: "Chunxi", Name: "Chunxi"},
			wantErr: errors.ErrInvalidSubdivision,
		},
		{
			name:    "broken postal code pattern",
			id:      "BR-MG",
			req:     dto.SaveSubdivisionRequest{Code: "MG", Name: "Minas Gerais", PostalCodePattern: "3[0-9"},
			wantErr: errors.ErrInvalidSubdivision,
		},
		{
			name:    "name required",
			id:      "BR-MG",
			req:     dto.SaveSubdivisionRequest{Code: "MG", Name: "  "},
			wantErr: errors.ErrInvalidSubdivision,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			invalidator := &MockCacheInvalidator{}
			uc := newSubdivisionUseCase(env, invalidator)

			_, err := uc.Save(ctx, tt.id, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			invalidator.AssertNotCalled(t, "InvalidateSubdivisions", mock.Anything, mock.Anything)
		})
	}
}

func TestSubdivisionUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	invalidator := &MockCacheInvalidator{}
	invalidator.On("InvalidateSubdivisions", ctx, "BR").Return(nil)
	uc := newSubdivisionUseCase(env, invalidator)

	require.NoError(t, uc.Delete(ctx, "BR-SP"))

	_, err := uc.Get(ctx, "BR-SP-CPQ", "")
	assert.ErrorIs(t, err, errors.ErrSubdivisionNotFound)
	children, err := uc.Children(ctx, "BR", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, children.Total)

	assert.ErrorIs(t, uc.Delete(ctx, "BR-SP"), errors.ErrSubdivisionNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "nonsense"), errors.ErrSubdivisionNotFound)
	invalidator.AssertNumberOfCalls(t, "InvalidateSubdivisions", 1)
}
