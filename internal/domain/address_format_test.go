package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const usTemplate = "%recipient\n%organization\n%addressLine1\n%addressLine2\n%locality, %administrativeArea %postalCode"

func TestAddressFormat_UsedFields(t *testing.T) {
	format := &AddressFormat{CountryCode: "US", Format: usTemplate}

	assert.Equal(t, []Field{
		FieldRecipient,
		FieldOrganization,
		FieldAddressLine1,
		FieldAddressLine2,
		FieldLocality,
		FieldAdministrativeArea,
		FieldPostalCode,
	}, format.UsedFields())
}

func TestAddressFormat_UsedFieldsIgnoresUnknownTokensAndDuplicates(t *testing.T) {
	format := &AddressFormat{Format: "%recipient %recipient\n%familyName\n%postalCode"}

	assert.Equal(t, []Field{FieldRecipient, FieldPostalCode}, format.UsedFields())
}

func TestAddressFormat_GroupedFields(t *testing.T) {
	format := &AddressFormat{CountryCode: "US", Format: usTemplate}

	assert.Equal(t, [][]Field{
		{FieldRecipient},
		{FieldOrganization},
		{FieldAddressLine1},
		{FieldAddressLine2},
		{FieldLocality, FieldAdministrativeArea, FieldPostalCode},
	}, format.GroupedFields())
}

func TestAddressFormat_UsedSubdivisionFields(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected []Field
	}{
		{
			name:     "hierarchy order regardless of template order",
			format:   "%dependentLocality\n%locality %administrativeArea",
			expected: []Field{FieldAdministrativeArea, FieldLocality, FieldDependentLocality},
		},
		{
			name:     "locality only",
			format:   "%addressLine1\n%postalCode %locality",
			expected: []Field{FieldLocality},
		},
		{
			name:     "none",
			format:   "%recipient\n%addressLine1",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := &AddressFormat{Format: tt.format}
			assert.Equal(t, tt.expected, format.UsedSubdivisionFields())
		})
	}
}

func TestAddressFormat_CountryFirst(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected bool
	}{
		{"minor to major", usTemplate, false},
		{"major to minor", "%postalCode\n%administrativeArea%locality\n%addressLine2\n%addressLine1", true},
		{"address line 2 missing", "%addressLine1\n%locality", true},
		{"address line 1 missing", "%addressLine2\n%locality", true},
		{"both missing", "%locality", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := &AddressFormat{Format: tt.format}
			assert.Equal(t, tt.expected, format.CountryFirst())
		})
	}
}

func TestAddressFormat_TemplateWithCountry(t *testing.T) {
	format := &AddressFormat{Format: "%addressLine1\n%addressLine2"}
	assert.Equal(t, "%addressLine1\n%addressLine2\n%country", format.TemplateWithCountry())

	format = &AddressFormat{Format: "%addressLine2\n%addressLine1"}
	assert.Equal(t, "%country\n%addressLine2\n%addressLine1", format.TemplateWithCountry())
}

func TestAddressFormat_Validate(t *testing.T) {
	valid := func() *AddressFormat {
		return &AddressFormat{
			CountryCode:            "US",
			Format:                 usTemplate,
			RequiredFields:         []Field{FieldAddressLine1, FieldLocality},
			UppercaseFields:        []Field{FieldLocality},
			AdministrativeAreaType: AdministrativeAreaState,
			PostalCodeType:         PostalCodeZip,
			PostalCodePattern:      `(\d{5})(?:[ \-](\d{4}))?`,
		}
	}

	assert.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(f *AddressFormat)
	}{
		{"lowercase country", func(f *AddressFormat) { f.CountryCode = "us" }},
		{"empty template", func(f *AddressFormat) { f.Format = "  " }},
		{"unknown token", func(f *AddressFormat) { f.Format = "%givenName" }},
		{"unknown required field", func(f *AddressFormat) { f.RequiredFields = []Field{"country"} }},
		{"unknown uppercase field", func(f *AddressFormat) { f.UppercaseFields = []Field{"city"} }},
		{"bad area type", func(f *AddressFormat) { f.AdministrativeAreaType = "canton" }},
		{"bad locality type", func(f *AddressFormat) { f.LocalityType = "village" }},
		{"bad dependent locality type", func(f *AddressFormat) { f.DependentLocalityType = "borough" }},
		{"bad postal code type", func(f *AddressFormat) { f.PostalCodeType = "eircode" }},
		{"bad pattern", func(f *AddressFormat) { f.PostalCodePattern = "(" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid()
			tt.mutate(f)
			assert.Error(t, f.Validate())
		})
	}
}

func TestAddressFormat_MatchesPostalCode(t *testing.T) {
	format := &AddressFormat{PostalCodePattern: `\d{5}`}

	assert.True(t, format.MatchesPostalCode("62701"))
	assert.False(t, format.MatchesPostalCode("627011"))
	assert.False(t, format.MatchesPostalCode("A2701"))

	gb := &AddressFormat{PostalCodePattern: `GIR ?0AA|[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}`}
	assert.True(t, gb.MatchesPostalCode("sw1a 1aa"))

	assert.True(t, (&AddressFormat{}).MatchesPostalCode("anything"))
}

func TestFieldLabels(t *testing.T) {
	format := &AddressFormat{
		AdministrativeAreaType: AdministrativeAreaState,
		LocalityType:           LocalityPostTown,
		PostalCodeType:         PostalCodeZip,
	}

	labels := FieldLabels(format)

	assert.Equal(t, "State", labels[FieldAdministrativeArea])
	assert.Equal(t, "Post town", labels[FieldLocality])
	assert.Equal(t, "Suburb", labels[FieldDependentLocality])
	assert.Equal(t, "Zip code", labels[FieldPostalCode])
	assert.Equal(t, "Cedex", labels[FieldSortingCode])
	assert.Len(t, labels, 9)

	assert.Equal(t, "Province", GenericFieldLabels()[FieldAdministrativeArea])
}
