package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// GenericCountryCode - код общего формата, используемого для стран без собственного шаблона
const GenericCountryCode = "ZZ"

// AddressFormat - формат адреса страны: шаблон, обязательные поля и типы полей
type AddressFormat struct {
	CountryCode            string                 `json:"country_code"`
	Locale                 string                 `json:"locale,omitempty"`
	Format                 string                 `json:"format"`
	RequiredFields         []Field                `json:"required_fields"`
	UppercaseFields        []Field                `json:"uppercase_fields"`
	AdministrativeAreaType AdministrativeAreaType `json:"administrative_area_type,omitempty"`
	LocalityType           LocalityType           `json:"locality_type,omitempty"`
	DependentLocalityType  DependentLocalityType  `json:"dependent_locality_type,omitempty"`
	PostalCodeType         PostalCodeType         `json:"postal_code_type,omitempty"`
	PostalCodePattern      string                 `json:"postal_code_pattern,omitempty"`
	PostalCodePrefix       string                 `json:"postal_code_prefix,omitempty"`
}

var tokenRe = regexp.MustCompile(`%[a-zA-Z0-9]+`)

// IsGeneric - общий формат ZZ
func (f *AddressFormat) IsGeneric() bool {
	return f.CountryCode == GenericCountryCode
}

// UsedFields возвращает поля, встречающиеся в шаблоне, в порядке первого появления
func (f *AddressFormat) UsedFields() []Field {
	return fieldsIn(f.Format)
}

// GroupedFields группирует используемые поля по строкам шаблона. Строки без полей пропускаются.
func (f *AddressFormat) GroupedFields() [][]Field {
	var groups [][]Field
	seen := make(map[Field]bool)
	for _, line := range strings.Split(f.Format, "\n") {
		var group []Field
		for _, field := range fieldsIn(line) {
			if !seen[field] {
				seen[field] = true
				group = append(group, field)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// UsedSubdivisionFields - используемые поля подразделений в порядке иерархии
func (f *AddressFormat) UsedSubdivisionFields() []Field {
	used := make(map[Field]bool)
	for _, field := range f.UsedFields() {
		used[field] = true
	}
	var result []Field
	for _, field := range SubdivisionFields() {
		if used[field] {
			result = append(result, field)
		}
	}
	return result
}

func (f *AddressFormat) IsUsed(field Field) bool {
	return containsField(f.UsedFields(), field)
}

func (f *AddressFormat) IsRequired(field Field) bool {
	return containsField(f.RequiredFields, field)
}

func (f *AddressFormat) IsUppercase(field Field) bool {
	return containsField(f.UppercaseFields, field)
}

// CountryFirst сообщает, выводится ли страна первой строкой (порядок от крупного к мелкому).
// Страна идёт последней, только если %addressLine1 встречается в шаблоне раньше %addressLine2;
// при отсутствии любого из токенов формат считается "от крупного к мелкому".
func (f *AddressFormat) CountryFirst() bool {
	line1 := strings.Index(f.Format, FieldAddressLine1.Token())
	line2 := strings.Index(f.Format, FieldAddressLine2.Token())
	if line1 < 0 || line2 < 0 {
		return true
	}
	return line1 >= line2
}

// TemplateWithCountry добавляет токен страны в начало или конец шаблона
func (f *AddressFormat) TemplateWithCountry() string {
	if f.CountryFirst() {
		return CountryToken + "\n" + f.Format
	}
	return f.Format + "\n" + CountryToken
}

// Validate проверяет формат перед сохранением
func (f *AddressFormat) Validate() error {
	if !IsCountryCode(f.CountryCode) {
		return fmt.Errorf("invalid country code %q", f.CountryCode)
	}
	if strings.TrimSpace(f.Format) == "" {
		return fmt.Errorf("format template is empty")
	}
	for _, token := range tokenRe.FindAllString(f.Format, -1) {
		if !Field(token[1:]).IsValid() {
			return fmt.Errorf("unknown token %s in format", token)
		}
	}
	for _, field := range f.RequiredFields {
		if !field.IsValid() {
			return fmt.Errorf("unknown required field %q", field)
		}
	}
	for _, field := range f.UppercaseFields {
		if !field.IsValid() {
			return fmt.Errorf("unknown uppercase field %q", field)
		}
	}
	if !f.AdministrativeAreaType.IsValid() {
		return fmt.Errorf("invalid administrative area type %q", f.AdministrativeAreaType)
	}
	if !f.LocalityType.IsValid() {
		return fmt.Errorf("invalid locality type %q", f.LocalityType)
	}
	if !f.DependentLocalityType.IsValid() {
		return fmt.Errorf("invalid dependent locality type %q", f.DependentLocalityType)
	}
	if !f.PostalCodeType.IsValid() {
		return fmt.Errorf("invalid postal code type %q", f.PostalCodeType)
	}
	if f.PostalCodePattern != "" {
		if _, err := regexp.Compile(f.PostalCodePattern); err != nil {
			return fmt.Errorf("invalid postal code pattern: %w", err)
		}
	}
	return nil
}

// MatchesPostalCode проверяет полное совпадение с шаблоном индекса; пустой шаблон допускает всё
func (f *AddressFormat) MatchesPostalCode(postalCode string) bool {
	if f.PostalCodePattern == "" {
		return true
	}
	re, err := regexp.Compile(`(?i)^(?:` + f.PostalCodePattern + `)$`)
	if err != nil {
		return false
	}
	return re.MatchString(postalCode)
}

func fieldsIn(template string) []Field {
	var fields []Field
	seen := make(map[Field]bool)
	for _, token := range tokenRe.FindAllString(template, -1) {
		field := Field(token[1:])
		if field.IsValid() && !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}
	return fields
}

func containsField(fields []Field, field Field) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
