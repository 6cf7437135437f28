package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/usecase"
)

func TestFormatResolver_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("known country", func(t *testing.T) {
		format, err := env.formatResolver.Resolve(ctx, "us", "")

		require.NoError(t, err)
		assert.Equal(t, "US", format.CountryCode)
		assert.Equal(t, domain.AdministrativeAreaState, format.AdministrativeAreaType)
		assert.Equal(t, []domain.Field{
			domain.FieldAdministrativeArea,
			domain.FieldLocality,
		}, format.UsedSubdivisionFields())
	})

	t.Run("translated template keeps other attributes", func(t *testing.T) {
		def, err := env.formatResolver.Resolve(ctx, "JP", "")
		require.NoError(t, err)
		ja, err := env.formatResolver.Resolve(ctx, "JP", "ja-JP")
		require.NoError(t, err)

		assert.NotEqual(t, def.Format, ja.Format)
		assert.Contains(t, ja.Format, "〒%postalCode")
		assert.Equal(t, def.RequiredFields, ja.RequiredFields)
		assert.Equal(t, def.PostalCodePattern, ja.PostalCodePattern)
	})

	for _, code := range []string{"XX", "", "usa", "1A"} {
		t.Run("generic format for "+code, func(t *testing.T) {
			format, err := env.formatResolver.Resolve(ctx, code, "")

			require.NoError(t, err)
			assert.Equal(t, domain.GenericCountryCode, format.CountryCode)
		})
	}
}

func TestFormatResolver_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing generic format is a data source error", func(t *testing.T) {
		formats := &MockAddressFormatRepository{}
		formats.On("Get", ctx, "XX", "").Return(nil, errors.ErrAddressFormatNotFound)
		formats.On("Get", ctx, "ZZ", "").Return(nil, errors.ErrAddressFormatNotFound)
		resolver := usecase.NewFormatResolver(formats, nil, zap.NewNop())

		format, err := resolver.Resolve(ctx, "XX", "")

		assert.Nil(t, format)
		assert.True(t, errors.IsDataSourceError(err))
		formats.AssertExpectations(t)
	})

	t.Run("read failure is not turned into fallback", func(t *testing.T) {
		dsErr := errors.NewDataSourceError("read formats", stderrors.New("connection refused"))
		formats := &MockAddressFormatRepository{}
		formats.On("Get", ctx, "DE", "de").Return(nil, dsErr)
		resolver := usecase.NewFormatResolver(formats, nil, zap.NewNop())

		_, err := resolver.Resolve(ctx, "DE", "de")

		assert.ErrorIs(t, err, dsErr)
		formats.AssertNotCalled(t, "Get", ctx, "ZZ", "de")
	})
}
