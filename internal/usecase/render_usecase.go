package usecase

import (
	"context"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/usecase/dto"
)

// RenderUseCase - форматирование адресов для HTTP API и CLI
type RenderUseCase struct {
	renderer *AddressRenderer
}

func NewRenderUseCase(renderer *AddressRenderer) *RenderUseCase {
	return &RenderUseCase{renderer: renderer}
}

func (uc *RenderUseCase) Render(ctx context.Context, req dto.RenderRequest) (*dto.RenderResponse, error) {
	addr := req.Address.ToDomain()
	rendered, err := uc.renderer.RenderFields(ctx, addr, RenderOptions{
		Locale:        req.Locale,
		Mode:          RenderMode(req.Mode),
		OriginCountry: req.OriginCountry,
	})
	if err != nil {
		return nil, err
	}
	resp := convertRendered(addr, rendered)
	return &resp, nil
}

func (uc *RenderUseCase) RenderBatch(ctx context.Context, req dto.BatchRenderRequest) (*dto.BatchRenderResponse, error) {
	addrs := make([]*domain.Address, 0, len(req.Addresses))
	for _, a := range req.Addresses {
		addrs = append(addrs, a.ToDomain())
	}

	rendered, err := uc.renderer.RenderBatch(ctx, addrs, RenderOptions{
		Locale:        req.Locale,
		Mode:          RenderMode(req.Mode),
		OriginCountry: req.OriginCountry,
	})
	if err != nil {
		return nil, err
	}

	results := make([]dto.RenderResponse, 0, len(rendered))
	for i, r := range rendered {
		results = append(results, convertRendered(addrs[i], r))
	}
	return &dto.BatchRenderResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

func convertRendered(addr *domain.Address, rendered *RenderedAddress) dto.RenderResponse {
	labels := domain.FieldLabels(rendered.Format)
	used := rendered.Format.UsedFields()
	fields := make([]dto.RenderedField, 0, len(used))
	for _, f := range used {
		fields = append(fields, dto.RenderedField{
			Field: string(f),
			Label: labels[f],
			Value: rendered.Values[f],
		})
	}

	return dto.RenderResponse{
		Text:        rendered.Text,
		Lines:       rendered.Lines(),
		CountryCode: addr.CountryCode,
		FormatCode:  rendered.Format.CountryCode,
		Locale:      rendered.Format.Locale,
		Fields:      fields,
	}
}
