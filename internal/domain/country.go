package domain

import "github.com/address-microservice/internal/pkg/locale"

// Country - страна с локализованными названиями
type Country struct {
	Code            string            `json:"code"`
	Name            string            `json:"name"`
	ThreeLetterCode string            `json:"three_letter_code,omitempty"`
	NumericCode     string            `json:"numeric_code,omitempty"`
	CurrencyCode    string            `json:"currency_code,omitempty"`
	Translations    map[string]string `json:"translations,omitempty"`
	Locale          string            `json:"locale,omitempty"`
}

// Localized возвращает копию с названием на языке локали; без перевода остаётся английское
func (c *Country) Localized(tag string) *Country {
	cp := *c
	cp.Locale = ""
	if name, matched, ok := locale.Lookup(c.Translations, tag); ok && name != "" {
		cp.Name = name
		cp.Locale = matched
	}
	return &cp
}
