package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/address-microservice/internal/pkg/errors"
)

type nested struct {
	CountryCode string `json:"country_code" validate:"omitempty,address_country"`
}

type sample struct {
	Country  string   `json:"country" validate:"required,address_country"`
	Fields   []string `json:"fields" validate:"omitempty,dive,address_field"`
	ParentID string   `json:"parent_id" validate:"omitempty,subdivision_id"`
	Address  nested   `json:"address"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(&sample{
		Country:  "US",
		Fields:   []string{"addressLine1", "postalCode"},
		ParentID: "US-IL",
		Address:  nested{CountryCode: "ZZ"},
	})

	assert.NoError(t, err)
}

func TestValidate_CustomTags(t *testing.T) {
	err := Validate(&sample{
		Country:  "usa",
		Fields:   []string{"givenName"},
		ParentID: "IL",
		Address:  nested{CountryCode: "u"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	appErr := errors.ToAppError(err)
	assert.Equal(t, "address_country", appErr.Details["country"])
	assert.Equal(t, "address_field", appErr.Details["fields[0]"])
	assert.Equal(t, "subdivision_id", appErr.Details["parent_id"])
	assert.Equal(t, "address_country", appErr.Details["address.country_code"])
}

func TestValidate_Required(t *testing.T) {
	err := Validate(&sample{})

	appErr := errors.ToAppError(err)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "required", appErr.Details["country"])
	assert.Empty(t, errors.ErrInvalidRequest.Details)
}
