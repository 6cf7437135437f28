package dataset

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/pkg/errors"
)

func TestAddressFormatRepository_Get(t *testing.T) {
	repo := NewAddressFormatRepository(newTestDataset(t))
	ctx := context.Background()

	t.Run("known country", func(t *testing.T) {
		format, err := repo.Get(ctx, "US", "")
		require.NoError(t, err)
		assert.Equal(t, "US", format.CountryCode)
		assert.Equal(t, domain.AdministrativeAreaState, format.AdministrativeAreaType)
		assert.Equal(t, domain.PostalCodeZip, format.PostalCodeType)
		assert.Contains(t, format.RequiredFields, domain.FieldPostalCode)
		assert.Equal(t, "", format.Locale)
	})

	t.Run("unknown country", func(t *testing.T) {
		format, err := repo.Get(ctx, "XX", "")
		assert.Nil(t, format)
		assert.True(t, stderrors.Is(err, errors.ErrAddressFormatNotFound))
	})

	t.Run("translated template", func(t *testing.T) {
		format, err := repo.Get(ctx, "JP", "ja-JP")
		require.NoError(t, err)
		assert.Equal(t, "ja", format.Locale)
		assert.Contains(t, format.Format, "〒%postalCode")
		assert.Equal(t, domain.AdministrativeAreaPrefecture, format.AdministrativeAreaType)
	})

	t.Run("locale without translation keeps default template", func(t *testing.T) {
		def, err := repo.Get(ctx, "JP", "")
		require.NoError(t, err)
		fr, err := repo.Get(ctx, "JP", "fr")
		require.NoError(t, err)
		assert.Equal(t, def.Format, fr.Format)
	})

	t.Run("returned format is a copy", func(t *testing.T) {
		format, err := repo.Get(ctx, "US", "")
		require.NoError(t, err)
		format.RequiredFields[0] = domain.FieldRecipient
		format.Format = "changed"

		again, err := repo.Get(ctx, "US", "")
		require.NoError(t, err)
		assert.NotEqual(t, "changed", again.Format)
		assert.NotEqual(t, domain.FieldRecipient, again.RequiredFields[0])
	})
}

func TestAddressFormatRepository_GetAllSorted(t *testing.T) {
	repo := NewAddressFormatRepository(newTestDataset(t))

	formats, err := repo.GetAll(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, formats)
	for i := 1; i < len(formats); i++ {
		assert.Less(t, formats[i-1].CountryCode, formats[i].CountryCode)
	}
}

func TestAddressFormatRepository_SaveAndDelete(t *testing.T) {
	ds := newTestDataset(t)
	repo := NewAddressFormatRepository(ds)
	subdivisions := NewSubdivisionRepository(ds)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.AddressFormat{CountryCode: "MX", Format: "%addressLine1\n%postalCode %locality"}))
	require.NoError(t, repo.SaveTranslation(ctx, "MX", "es", "%addressLine1\n%locality %postalCode"))

	format, err := repo.Get(ctx, "MX", "es-MX")
	require.NoError(t, err)
	assert.Equal(t, "%addressLine1\n%locality %postalCode", format.Format)

	err = repo.SaveTranslation(ctx, "XX", "es", "%addressLine1")
	assert.True(t, stderrors.Is(err, errors.ErrAddressFormatNotFound))

	require.NoError(t, repo.Delete(ctx, "US"))
	_, err = repo.Get(ctx, "US", "")
	assert.True(t, stderrors.Is(err, errors.ErrAddressFormatNotFound))

	sub, err := subdivisions.Get(ctx, "US-IL", "")
	require.NoError(t, err)
	assert.Nil(t, sub, "subdivisions are deleted with the format")

	assert.Error(t, repo.Delete(ctx, "US"))
}
