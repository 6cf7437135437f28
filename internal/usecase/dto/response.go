package dto

import (
	"github.com/google/uuid"

	"github.com/address-microservice/internal/domain"
)

// RenderedField - значение поля после разрешения подразделений, для отображения в UI
type RenderedField struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// RenderResponse - отформатированный адрес
type RenderResponse struct {
	Text        string          `json:"text"`
	Lines       []string        `json:"lines"`
	CountryCode string          `json:"country_code"`
	FormatCode  string          `json:"format_code"`
	Locale      string          `json:"locale,omitempty"`
	Fields      []RenderedField `json:"fields,omitempty"`
	// HTML заполняется только по запросу с html=true
	HTML string `json:"html,omitempty"`
}

// BatchRenderResponse - результаты в порядке входных адресов
type BatchRenderResponse struct {
	Results []RenderResponse `json:"results"`
	Total   int              `json:"total"`
}

// FormatResponse - формат с производными метаданными полей
type FormatResponse struct {
	*domain.AddressFormat
	UsedFields           []string          `json:"used_fields"`
	GroupedFields        [][]string        `json:"grouped_fields"`
	SubdivisionFields    []string          `json:"subdivision_fields"`
	Labels               map[string]string `json:"labels"`
	SubdivisionDepth     int               `json:"subdivision_depth"`
	RequestedCountryCode string            `json:"requested_country_code,omitempty"`
}

// FormatListResponse - список форматов
type FormatListResponse struct {
	Formats []*domain.AddressFormat `json:"formats"`
	Total   int                     `json:"total"`
}

// SubdivisionOption - элемент упорядоченного списка id -> название
type SubdivisionOption struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	HasChildren bool   `json:"has_children"`
}

// SubdivisionListResponse - дочерние подразделения, отсортированные по id
type SubdivisionListResponse struct {
	CountryCode string              `json:"country_code"`
	ParentID    string              `json:"parent_id,omitempty"`
	Items       []SubdivisionOption `json:"items"`
	Total       int                 `json:"total"`
}

// SubdivisionDepthResponse - число уровней иерархии страны
type SubdivisionDepthResponse struct {
	CountryCode string `json:"country_code"`
	Depth       int    `json:"depth"`
}

// ValidationResponse - нарушения; пустой список означает корректный адрес
type ValidationResponse struct {
	Valid      bool               `json:"valid"`
	Violations []domain.Violation `json:"violations"`
}

// CountryDTO - код и название страны
type CountryDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountryListResponse - список стран
type CountryListResponse struct {
	Countries []CountryDTO `json:"countries"`
	Total     int          `json:"total"`
}

// ImportResponse - задание поставлено в очередь
type ImportResponse struct {
	JobID     uuid.UUID           `json:"job_id"`
	MessageID string              `json:"message_id"`
	Status    domain.ImportStatus `json:"status"`
}

// ZoneMatchResponse - результат сопоставления адреса и зоны
type ZoneMatchResponse struct {
	ZoneID  string `json:"zone_id"`
	Matched bool   `json:"matched"`
}

// ZoneListResponse - список зон
type ZoneListResponse struct {
	Zones []*domain.Zone `json:"zones"`
	Total int            `json:"total"`
}

// ConvertSubdivisions - преобразование списка подразделений в DTO
func ConvertSubdivisions(subdivisions []*domain.Subdivision) []SubdivisionOption {
	items := make([]SubdivisionOption, 0, len(subdivisions))
	for _, s := range subdivisions {
		items = append(items, SubdivisionOption{
			ID:          s.ID,
			Code:        s.Code,
			Name:        s.Name,
			HasChildren: s.HasChildren,
		})
	}
	return items
}

// FieldNames - имена полей в порядке следования
func FieldNames(fields []domain.Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return names
}
