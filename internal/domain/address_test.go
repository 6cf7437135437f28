package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_ValueAndSetValue(t *testing.T) {
	addr := &Address{CountryCode: "US"}

	for _, f := range AllFields() {
		addr.SetValue(f, "value of "+string(f))
	}

	assert.Equal(t, "value of administrativeArea", addr.AdministrativeArea)
	assert.Equal(t, "value of addressLine2", addr.AddressLine2)
	assert.Equal(t, "value of recipient", addr.Recipient)
	for _, f := range AllFields() {
		assert.Equal(t, "value of "+string(f), addr.Value(f))
	}

	assert.Equal(t, "", addr.Value(Field("givenName")))
	addr.SetValue(Field("givenName"), "ignored")
	assert.Equal(t, "US", addr.CountryCode)
}

func TestAddress_ValuesCoversAllFields(t *testing.T) {
	addr := &Address{CountryCode: "FR", Locality: "Paris"}

	values := addr.Values()

	assert.Len(t, values, 9)
	assert.Equal(t, "Paris", values[FieldLocality])
	assert.Equal(t, "", values[FieldPostalCode])

	values[FieldLocality] = "Lyon"
	assert.Equal(t, "Paris", addr.Locality, "values map must be a copy")
}

func TestParseField(t *testing.T) {
	tests := []struct {
		input    string
		expected Field
		ok       bool
	}{
		{"postalCode", FieldPostalCode, true},
		{"postal_code", FieldPostalCode, true},
		{"%addressLine1", FieldAddressLine1, true},
		{"address_line2", FieldAddressLine2, true},
		{"country", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, ok := ParseField(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestField_TokenAndProperty(t *testing.T) {
	assert.Equal(t, "%dependentLocality", FieldDependentLocality.Token())
	assert.Equal(t, "dependent_locality", FieldDependentLocality.PropertyName())
	assert.False(t, Field("country").IsValid())
}

func TestIsCountryCode(t *testing.T) {
	assert.True(t, IsCountryCode("US"))
	assert.True(t, IsCountryCode("ZZ"))
	assert.False(t, IsCountryCode("us"))
	assert.False(t, IsCountryCode("USA"))
	assert.False(t, IsCountryCode(""))
}
