package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/locale"
	"github.com/address-microservice/internal/pkg/metrics"
)

// RenderMode - режим форматирования
type RenderMode string

const (
	// RenderModeDefault - адрес для отображения
	RenderModeDefault RenderMode = "default"
	// RenderModePostal - адрес для почтового отправления: верхний регистр полей формата,
	// префикс индекса для международной почты, без страны для внутренней
	RenderModePostal RenderMode = "postal"
)

const batchRenderConcurrency = 8

type RenderOptions struct {
	// Locale перекрывает локаль адреса
	Locale string
	Mode   RenderMode
	// OriginCountry - страна отправителя, учитывается в почтовом режиме
	OriginCountry string
}

// RenderedAddress - значения полей после разрешения подразделений и итоговый текст
type RenderedAddress struct {
	Format       *domain.AddressFormat
	Locale       string
	Values       map[domain.Field]string
	Subdivisions map[domain.Field]*domain.Subdivision
	Country      string
	Text         string
}

// Lines - строки итогового текста
func (a *RenderedAddress) Lines() []string {
	if a.Text == "" {
		return []string{}
	}
	return strings.Split(a.Text, "\n")
}

// AddressRenderer превращает адрес в текст по шаблону формата страны
type AddressRenderer struct {
	formats      *FormatResolver
	subdivisions *SubdivisionResolver
	countries    repository.CountryRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewAddressRenderer(
	formats *FormatResolver,
	subdivisions *SubdivisionResolver,
	countries repository.CountryRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AddressRenderer {
	return &AddressRenderer{
		formats:      formats,
		subdivisions: subdivisions,
		countries:    countries,
		metrics:      m,
		logger:       logger,
	}
}

// Render возвращает отформатированный адрес; строки разделены "\n"
func (r *AddressRenderer) Render(ctx context.Context, addr *domain.Address, opts RenderOptions) (string, error) {
	rendered, err := r.RenderFields(ctx, addr, opts)
	if err != nil {
		return "", err
	}
	return rendered.Text, nil
}

// RenderFields выполняет форматирование и дополнительно отдаёт значения полей
// (с кодами подразделений вместо id) для отображения в UI
func (r *AddressRenderer) RenderFields(ctx context.Context, addr *domain.Address, opts RenderOptions) (*RenderedAddress, error) {
	if addr == nil {
		return nil, errors.ErrInvalidRequest.WithMessage("address is required")
	}
	start := time.Now()
	mode := opts.Mode
	if mode == "" {
		mode = RenderModeDefault
	}

	rendered, err := r.render(ctx, addr, opts, mode)

	country := domain.GenericCountryCode
	if rendered != nil {
		country = rendered.Format.CountryCode
	}
	r.metrics.ObserveRender(country, string(mode), time.Since(start), err)

	if err != nil {
		r.logger.Error("Failed to render address",
			zap.String("country_code", addr.CountryCode),
			zap.String("mode", string(mode)),
			zap.Error(err))
		return nil, err
	}
	return rendered, nil
}

func (r *AddressRenderer) render(ctx context.Context, addr *domain.Address, opts RenderOptions, mode RenderMode) (*RenderedAddress, error) {
	tag := opts.Locale
	if tag == "" {
		tag = addr.Locale
	}
	countryCode := strings.ToUpper(strings.TrimSpace(addr.CountryCode))

	format, err := r.formats.Resolve(ctx, countryCode, tag)
	if err != nil {
		return nil, err
	}

	values := addr.Values()
	subdivisions, err := r.resolveSubdivisions(ctx, format, countryCode, values, tag)
	if err != nil {
		return nil, err
	}

	countryName, err := r.countryName(ctx, countryCode, tag)
	if err != nil {
		return nil, err
	}

	if mode == RenderModePostal {
		for _, field := range format.UppercaseFields {
			values[field] = locale.Upper(values[field], tag)
		}
		origin := strings.ToUpper(strings.TrimSpace(opts.OriginCountry))
		if origin != "" && origin != countryCode {
			if postalCode := strings.TrimSpace(values[domain.FieldPostalCode]); postalCode != "" {
				values[domain.FieldPostalCode] = format.PostalCodePrefix + postalCode
			}
		}
		if origin == countryCode {
			countryName = ""
		}
	}

	replacements := make(map[string]string, len(values)+1)
	for _, field := range format.UsedFields() {
		replacements[field.Token()] = values[field]
	}
	replacements[domain.CountryToken] = countryName

	return &RenderedAddress{
		Format:       format,
		Locale:       tag,
		Values:       values,
		Subdivisions: subdivisions,
		Country:      countryName,
		Text:         domain.ReplacePlaceholders(format.TemplateWithCountry(), replacements),
	}, nil
}

// resolveSubdivisions спускается по уровням иерархии, заменяя значения кодами.
// Остановка: пустое значение, значение без предопределённого подразделения
// (остаётся свободным текстом) или подразделение без потомков.
func (r *AddressRenderer) resolveSubdivisions(
	ctx context.Context,
	format *domain.AddressFormat,
	countryCode string,
	values map[domain.Field]string,
	tag string,
) (map[domain.Field]*domain.Subdivision, error) {
	resolved := make(map[domain.Field]*domain.Subdivision)
	if !domain.IsCountryCode(countryCode) {
		return resolved, nil
	}

	parentID := ""
	for _, field := range format.UsedSubdivisionFields() {
		value := strings.TrimSpace(values[field])
		if value == "" {
			break
		}
		sub, err := r.subdivisions.Lookup(ctx, countryCode, parentID, value, tag)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			break
		}
		values[field] = sub.Code
		resolved[field] = sub
		if !sub.HasChildren {
			break
		}
		parentID = sub.ID
	}
	return resolved, nil
}

// countryName - название страны в верхнем регистре; для неизвестной страны пусто
func (r *AddressRenderer) countryName(ctx context.Context, countryCode, tag string) (string, error) {
	if !domain.IsCountryCode(countryCode) {
		return "", nil
	}
	country, err := r.countries.Get(ctx, countryCode, tag)
	if err != nil {
		return "", err
	}
	if country == nil {
		return "", nil
	}
	return locale.Upper(country.Name, tag), nil
}

// RenderBatch форматирует адреса параллельно; порядок результатов совпадает с входным.
// Первая ошибка отменяет остальные.
func (r *AddressRenderer) RenderBatch(ctx context.Context, addrs []*domain.Address, opts RenderOptions) ([]*RenderedAddress, error) {
	results := make([]*RenderedAddress, len(addrs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchRenderConcurrency)
	for i, addr := range addrs {
		g.Go(func() error {
			rendered, err := r.RenderFields(gctx, addr, opts)
			if err != nil {
				return err
			}
			results[i] = rendered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
