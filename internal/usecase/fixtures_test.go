package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/repository/dataset"
	"github.com/address-microservice/internal/usecase"
)

// testEnv - сервисы поверх встроенного набора данных
type testEnv struct {
	formats      repository.AddressFormatStore
	subdivisions repository.SubdivisionStore
	countries    repository.CountryRepository
	zones        repository.ZoneRepository

	formatResolver      *usecase.FormatResolver
	subdivisionResolver *usecase.SubdivisionResolver
	renderer            *usecase.AddressRenderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ds, err := dataset.New(zap.NewNop())
	require.NoError(t, err)

	env := &testEnv{
		formats:      dataset.NewAddressFormatRepository(ds),
		subdivisions: dataset.NewSubdivisionRepository(ds),
		countries:    dataset.NewCountryRepository(ds),
		zones:        dataset.NewZoneRepository(ds),
	}
	env.formatResolver = usecase.NewFormatResolver(env.formats, nil, zap.NewNop())
	env.subdivisionResolver = usecase.NewSubdivisionResolver(env.subdivisions, nil, zap.NewNop())
	env.renderer = usecase.NewAddressRenderer(env.formatResolver, env.subdivisionResolver, env.countries, nil, zap.NewNop())
	return env
}
