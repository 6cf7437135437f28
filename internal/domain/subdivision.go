package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/address-microservice/internal/pkg/locale"
)

// SubdivisionIDSeparator разделяет коды в id подразделения ("US-CA", "CN-SC-CD")
const SubdivisionIDSeparator = "-"

// MaxSubdivisionDepth - максимальная глубина иерархии: регион, город, район
const MaxSubdivisionDepth = 3

// SubdivisionTranslation - локализованные код и название
type SubdivisionTranslation struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// Subdivision - узел административной иерархии страны
type Subdivision struct {
	ID                string                            `json:"id"`
	CountryCode       string                            `json:"country_code"`
	ParentID          string                            `json:"parent_id,omitempty"`
	Code              string                            `json:"code"`
	Name              string                            `json:"name"`
	PostalCodePattern string                            `json:"postal_code_pattern,omitempty"`
	HasChildren       bool                              `json:"has_children"`
	Translations      map[string]SubdivisionTranslation `json:"translations,omitempty"`
	Locale            string                            `json:"locale,omitempty"`
}

// Localized возвращает копию с кодом и названием для локали (с откатом по цепочке локалей).
// Без подходящего перевода возвращаются исходные значения.
func (s *Subdivision) Localized(tag string) *Subdivision {
	cp := *s
	cp.Locale = ""
	if t, matched, ok := locale.Lookup(s.Translations, tag); ok {
		if t.Code != "" {
			cp.Code = t.Code
		}
		if t.Name != "" {
			cp.Name = t.Name
		}
		cp.Locale = matched
	}
	return &cp
}

// MatchesPostalCodePrefix проверяет, что индекс начинается с шаблона подразделения
func (s *Subdivision) MatchesPostalCodePrefix(postalCode string) bool {
	if s.PostalCodePattern == "" {
		return true
	}
	re, err := regexp.Compile(`(?i)^(?:` + s.PostalCodePattern + `)`)
	if err != nil {
		return false
	}
	return re.MatchString(postalCode)
}

// Validate проверяет согласованность id, страны и родителя
func (s *Subdivision) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subdivision name is required")
	}
	if strings.TrimSpace(s.Code) == "" {
		return fmt.Errorf("subdivision code is required")
	}
	country, ok := SubdivisionCountry(s.ID)
	if !ok {
		return fmt.Errorf("malformed subdivision id %q", s.ID)
	}
	if country != s.CountryCode {
		return fmt.Errorf("subdivision id %q does not belong to country %s", s.ID, s.CountryCode)
	}
	prefix := s.CountryCode
	if s.ParentID != "" {
		prefix = s.ParentID
	}
	if !strings.HasPrefix(s.ID, prefix+SubdivisionIDSeparator) || len(s.ID) <= len(prefix)+1 {
		return fmt.Errorf("subdivision id %q must extend %q", s.ID, prefix)
	}
	return nil
}

// SubdivisionCountry извлекает код страны из id. Id без разделителя или с некорректным
// кодом страны считается неразборным.
func SubdivisionCountry(id string) (string, bool) {
	country, rest, found := strings.Cut(id, SubdivisionIDSeparator)
	if !found || rest == "" || !IsCountryCode(country) {
		return "", false
	}
	return country, true
}

// SubdivisionIDCandidates - возможные id для значения поля при известном родителе:
// само значение и значение с префиксом родителя (или страны для верхнего уровня).
func SubdivisionIDCandidates(countryCode, parentID, value string) []string {
	prefix := countryCode
	if parentID != "" {
		prefix = parentID
	}
	candidates := []string{value}
	if !strings.HasPrefix(value, prefix+SubdivisionIDSeparator) {
		candidates = append(candidates, prefix+SubdivisionIDSeparator+value)
	}
	return candidates
}
