package domain

import (
	"regexp"
	"strings"
)

// Field - идентификатор поля адреса. Значение совпадает с именем токена в шаблоне формата.
type Field string

const (
	FieldAdministrativeArea Field = "administrativeArea"
	FieldLocality           Field = "locality"
	FieldDependentLocality  Field = "dependentLocality"
	FieldPostalCode         Field = "postalCode"
	FieldSortingCode        Field = "sortingCode"
	FieldAddressLine1       Field = "addressLine1"
	FieldAddressLine2       Field = "addressLine2"
	FieldOrganization       Field = "organization"
	FieldRecipient          Field = "recipient"
)

// CountryToken - неявный токен страны, добавляемый при рендеринге (в сохранённых шаблонах его нет)
const CountryToken = "%country"

// fieldAccessor - статическая таблица доступа к полям адреса
type fieldAccessor struct {
	property string
	get      func(a *Address) string
	set      func(a *Address, v string)
}

var fieldAccessors = map[Field]fieldAccessor{
	FieldAdministrativeArea: {
		property: "administrative_area",
		get:      func(a *Address) string { return a.AdministrativeArea },
		set:      func(a *Address, v string) { a.AdministrativeArea = v },
	},
	FieldLocality: {
		property: "locality",
		get:      func(a *Address) string { return a.Locality },
		set:      func(a *Address, v string) { a.Locality = v },
	},
	FieldDependentLocality: {
		property: "dependent_locality",
		get:      func(a *Address) string { return a.DependentLocality },
		set:      func(a *Address, v string) { a.DependentLocality = v },
	},
	FieldPostalCode: {
		property: "postal_code",
		get:      func(a *Address) string { return a.PostalCode },
		set:      func(a *Address, v string) { a.PostalCode = v },
	},
	FieldSortingCode: {
		property: "sorting_code",
		get:      func(a *Address) string { return a.SortingCode },
		set:      func(a *Address, v string) { a.SortingCode = v },
	},
	FieldAddressLine1: {
		property: "address_line1",
		get:      func(a *Address) string { return a.AddressLine1 },
		set:      func(a *Address, v string) { a.AddressLine1 = v },
	},
	FieldAddressLine2: {
		property: "address_line2",
		get:      func(a *Address) string { return a.AddressLine2 },
		set:      func(a *Address, v string) { a.AddressLine2 = v },
	},
	FieldOrganization: {
		property: "organization",
		get:      func(a *Address) string { return a.Organization },
		set:      func(a *Address, v string) { a.Organization = v },
	},
	FieldRecipient: {
		property: "recipient",
		get:      func(a *Address) string { return a.Recipient },
		set:      func(a *Address, v string) { a.Recipient = v },
	},
}

// AllFields - все поля адреса в каноническом порядке
func AllFields() []Field {
	return []Field{
		FieldAdministrativeArea,
		FieldLocality,
		FieldDependentLocality,
		FieldPostalCode,
		FieldSortingCode,
		FieldAddressLine1,
		FieldAddressLine2,
		FieldOrganization,
		FieldRecipient,
	}
}

// SubdivisionFields - поля подразделений в порядке иерархии
func SubdivisionFields() []Field {
	return []Field{FieldAdministrativeArea, FieldLocality, FieldDependentLocality}
}

func (f Field) IsValid() bool {
	_, ok := fieldAccessors[f]
	return ok
}

// Token возвращает плейсхолдер поля в шаблоне ("%postalCode")
func (f Field) Token() string {
	return "%" + string(f)
}

// PropertyName возвращает имя поля в хранилище и JSON ("postal_code")
func (f Field) PropertyName() string {
	return fieldAccessors[f].property
}

func (f Field) String() string {
	return string(f)
}

// ParseField принимает как имя токена ("postalCode"), так и имя свойства ("postal_code")
func ParseField(s string) (Field, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "%")
	if f := Field(s); f.IsValid() {
		return f, true
	}
	for f, acc := range fieldAccessors {
		if acc.property == s {
			return f, true
		}
	}
	return "", false
}

// Address - входной адрес. Поля подразделений могут содержать свободный текст или id подразделения.
type Address struct {
	CountryCode        string `json:"country_code"`
	AdministrativeArea string `json:"administrative_area,omitempty"`
	Locality           string `json:"locality,omitempty"`
	DependentLocality  string `json:"dependent_locality,omitempty"`
	PostalCode         string `json:"postal_code,omitempty"`
	SortingCode        string `json:"sorting_code,omitempty"`
	AddressLine1       string `json:"address_line1,omitempty"`
	AddressLine2       string `json:"address_line2,omitempty"`
	Organization       string `json:"organization,omitempty"`
	Recipient          string `json:"recipient,omitempty"`
	Locale             string `json:"locale,omitempty"`
}

// Value возвращает значение поля; для неизвестного поля - пустую строку
func (a *Address) Value(f Field) string {
	acc, ok := fieldAccessors[f]
	if !ok {
		return ""
	}
	return acc.get(a)
}

func (a *Address) SetValue(f Field, v string) {
	if acc, ok := fieldAccessors[f]; ok {
		acc.set(a, v)
	}
}

// Values собирает значения всех девяти полей в новую карту
func (a *Address) Values() map[Field]string {
	values := make(map[Field]string, len(fieldAccessors))
	for f, acc := range fieldAccessors {
		values[f] = acc.get(a)
	}
	return values
}

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// IsCountryCode проверяет формат двухбуквенного кода страны
func IsCountryCode(code string) bool {
	return countryCodeRe.MatchString(code)
}
