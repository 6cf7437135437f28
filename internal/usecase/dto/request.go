package dto

import (
	"strings"

	"github.com/address-microservice/internal/domain"
)

// AddressInput - адрес во входящем запросе
type AddressInput struct {
	CountryCode        string `json:"country_code" validate:"omitempty,alpha,len=2"`
	AdministrativeArea string `json:"administrative_area,omitempty" validate:"max=255"`
	Locality           string `json:"locality,omitempty" validate:"max=255"`
	DependentLocality  string `json:"dependent_locality,omitempty" validate:"max=255"`
	PostalCode         string `json:"postal_code,omitempty" validate:"max=64"`
	SortingCode        string `json:"sorting_code,omitempty" validate:"max=64"`
	AddressLine1       string `json:"address_line1,omitempty" validate:"max=255"`
	AddressLine2       string `json:"address_line2,omitempty" validate:"max=255"`
	Organization       string `json:"organization,omitempty" validate:"max=255"`
	Recipient          string `json:"recipient,omitempty" validate:"max=255"`
	Locale             string `json:"locale,omitempty" validate:"max=35"`
}

// ToDomain - код страны приводится к верхнему регистру
func (a AddressInput) ToDomain() *domain.Address {
	return &domain.Address{
		CountryCode:        strings.ToUpper(strings.TrimSpace(a.CountryCode)),
		AdministrativeArea: a.AdministrativeArea,
		Locality:           a.Locality,
		DependentLocality:  a.DependentLocality,
		PostalCode:         a.PostalCode,
		SortingCode:        a.SortingCode,
		AddressLine1:       a.AddressLine1,
		AddressLine2:       a.AddressLine2,
		Organization:       a.Organization,
		Recipient:          a.Recipient,
		Locale:             a.Locale,
	}
}

// RenderRequest - запрос на форматирование адреса
type RenderRequest struct {
	Address       AddressInput `json:"address"`
	Locale        string       `json:"locale,omitempty" validate:"max=35"`
	Mode          string       `json:"mode,omitempty" validate:"omitempty,oneof=default postal"`
	OriginCountry string       `json:"origin_country,omitempty" validate:"omitempty,address_country"`
	HTML          bool         `json:"html,omitempty"`
}

// BatchRenderRequest - пакетное форматирование с общими параметрами
type BatchRenderRequest struct {
	Addresses     []AddressInput `json:"addresses" validate:"required,min=1,max=100,dive"`
	Locale        string         `json:"locale,omitempty" validate:"max=35"`
	Mode          string         `json:"mode,omitempty" validate:"omitempty,oneof=default postal"`
	OriginCountry string         `json:"origin_country,omitempty" validate:"omitempty,address_country"`
	HTML          bool           `json:"html,omitempty"`
}

// ValidateAddressRequest - проверка адреса по формату страны.
// FieldDefinitionID задаёт ключ кеша списка доступных стран.
type ValidateAddressRequest struct {
	Address            AddressInput `json:"address"`
	Locale             string       `json:"locale,omitempty" validate:"max=35"`
	FieldDefinitionID  string       `json:"field_definition_id,omitempty" validate:"max=128"`
	AvailableCountries []string     `json:"available_countries,omitempty" validate:"omitempty,dive,address_country"`
}

// SaveFormatRequest - создание или обновление формата страны
type SaveFormatRequest struct {
	CountryCode            string   `json:"country_code,omitempty" validate:"omitempty,address_country"`
	Format                 string   `json:"format" validate:"required"`
	RequiredFields         []string `json:"required_fields" validate:"omitempty,dive,address_field"`
	UppercaseFields        []string `json:"uppercase_fields" validate:"omitempty,dive,address_field"`
	AdministrativeAreaType string   `json:"administrative_area_type,omitempty"`
	LocalityType           string   `json:"locality_type,omitempty"`
	DependentLocalityType  string   `json:"dependent_locality_type,omitempty"`
	PostalCodeType         string   `json:"postal_code_type,omitempty"`
	PostalCodePattern      string   `json:"postal_code_pattern,omitempty"`
	PostalCodePrefix       string   `json:"postal_code_prefix,omitempty" validate:"max=16"`
}

// SaveSubdivisionRequest - создание или обновление подразделения
type SaveSubdivisionRequest struct {
	ParentID          string                            `json:"parent_id,omitempty" validate:"omitempty,subdivision_id"`
	Code              string                            `json:"code" validate:"required,max=255"`
	Name              string                            `json:"name" validate:"required,max=255"`
	PostalCodePattern string                            `json:"postal_code_pattern,omitempty"`
	Translations      map[string]SubdivisionTranslation `json:"translations,omitempty"`
}

// SubdivisionTranslation - перевод кода и названия подразделения
type SubdivisionTranslation struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// ImportRequest - постановка задания на импорт в очередь.
// Пустой CountryCodes - все страны набора данных.
type ImportRequest struct {
	CountryCodes []string `json:"country_codes,omitempty" validate:"omitempty,dive,address_country"`
	Langcodes    []string `json:"langcodes,omitempty" validate:"omitempty,dive,min=2,max=35"`
}

// ZoneMatchRequest - проверка попадания адреса в зону
type ZoneMatchRequest struct {
	Address AddressInput `json:"address"`
}
