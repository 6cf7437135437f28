package domain

import (
	"encoding/json"
	"fmt"
)

// ZoneMemberType - дискриминатор варианта участника зоны
type ZoneMemberType string

const (
	ZoneMemberCountry ZoneMemberType = "country"
	ZoneMemberZone    ZoneMemberType = "zone"
)

// ZoneMember - закрытый набор вариантов: CountryMember и ZoneReferenceMember
type ZoneMember interface {
	Type() ZoneMemberType
	zoneMember()
}

// CountryMember совпадает с адресом страны, опционально с цепочкой подразделений и правилами индексов
type CountryMember struct {
	CountryCode         string `json:"country_code"`
	AdministrativeArea  string `json:"administrative_area,omitempty"`
	Locality            string `json:"locality,omitempty"`
	DependentLocality   string `json:"dependent_locality,omitempty"`
	IncludedPostalCodes string `json:"included_postal_codes,omitempty"`
	ExcludedPostalCodes string `json:"excluded_postal_codes,omitempty"`
}

func (CountryMember) Type() ZoneMemberType { return ZoneMemberCountry }
func (CountryMember) zoneMember()          {}

func (m CountryMember) Match(addr *Address) bool {
	if addr.CountryCode != m.CountryCode {
		return false
	}
	if m.AdministrativeArea != "" && m.AdministrativeArea != addr.AdministrativeArea {
		return false
	}
	if m.Locality != "" && m.Locality != addr.Locality {
		return false
	}
	if m.DependentLocality != "" && m.DependentLocality != addr.DependentLocality {
		return false
	}
	return MatchPostalCode(addr.PostalCode, m.IncludedPostalCodes, m.ExcludedPostalCodes)
}

// ZoneReferenceMember делегирует проверку другой зоне
type ZoneReferenceMember struct {
	ZoneID string `json:"zone_id"`
}

func (ZoneReferenceMember) Type() ZoneMemberType { return ZoneMemberZone }
func (ZoneReferenceMember) zoneMember()          {}

// Zone - именованная группа территорий (например, зона доставки или налоговая зона)
type Zone struct {
	ID      string
	Name    string
	Members []ZoneMember
}

// ZoneLookup возвращает зону по id или nil
type ZoneLookup func(id string) *Zone

// Match проверяет, входит ли адрес хотя бы в одного участника зоны.
// Ссылки на зоны разрешаются через lookup; циклы не приводят к зацикливанию.
func (z *Zone) Match(addr *Address, lookup ZoneLookup) bool {
	return z.match(addr, lookup, map[string]bool{})
}

func (z *Zone) match(addr *Address, lookup ZoneLookup, visited map[string]bool) bool {
	if visited[z.ID] {
		return false
	}
	visited[z.ID] = true

	for _, member := range z.Members {
		switch m := member.(type) {
		case CountryMember:
			if m.Match(addr) {
				return true
			}
		case ZoneReferenceMember:
			if lookup == nil {
				continue
			}
			if ref := lookup(m.ZoneID); ref != nil && ref.match(addr, lookup, visited) {
				return true
			}
		}
	}
	return false
}

// Validate проверяет участников зоны
func (z *Zone) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("zone id is required")
	}
	for i, member := range z.Members {
		switch m := member.(type) {
		case CountryMember:
			if !IsCountryCode(m.CountryCode) {
				return fmt.Errorf("member %d: invalid country code %q", i, m.CountryCode)
			}
		case ZoneReferenceMember:
			if m.ZoneID == "" {
				return fmt.Errorf("member %d: zone reference without id", i)
			}
			if m.ZoneID == z.ID {
				return fmt.Errorf("member %d: zone references itself", i)
			}
		default:
			return fmt.Errorf("member %d: unsupported member", i)
		}
	}
	return nil
}

type zoneJSON struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Members []json.RawMessage `json:"members"`
}

type zoneMemberEnvelope struct {
	Type ZoneMemberType `json:"type"`
}

func (z Zone) MarshalJSON() ([]byte, error) {
	out := zoneJSON{ID: z.ID, Name: z.Name, Members: make([]json.RawMessage, 0, len(z.Members))}
	for _, member := range z.Members {
		var payload interface{}
		switch m := member.(type) {
		case CountryMember:
			payload = struct {
				Type ZoneMemberType `json:"type"`
				CountryMember
			}{ZoneMemberCountry, m}
		case ZoneReferenceMember:
			payload = struct {
				Type ZoneMemberType `json:"type"`
				ZoneReferenceMember
			}{ZoneMemberZone, m}
		default:
			return nil, fmt.Errorf("unsupported zone member %T", member)
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, raw)
	}
	return json.Marshal(out)
}

func (z *Zone) UnmarshalJSON(data []byte) error {
	var in zoneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	z.ID = in.ID
	z.Name = in.Name
	z.Members = make([]ZoneMember, 0, len(in.Members))
	for i, raw := range in.Members {
		var env zoneMemberEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
		switch env.Type {
		case ZoneMemberCountry:
			var m CountryMember
			if err := json.Unmarshal(raw, &m); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
			z.Members = append(z.Members, m)
		case ZoneMemberZone:
			var m ZoneReferenceMember
			if err := json.Unmarshal(raw, &m); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
			z.Members = append(z.Members, m)
		default:
			return fmt.Errorf("member %d: unknown type %q", i, env.Type)
		}
	}
	return nil
}
