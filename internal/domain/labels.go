package domain

var genericFieldLabels = map[Field]string{
	FieldAdministrativeArea: "Province",
	FieldLocality:           "City",
	FieldDependentLocality:  "Suburb",
	FieldPostalCode:         "Postal code",
	FieldSortingCode:        "Cedex",
	FieldAddressLine1:       "Street address",
	FieldAddressLine2:       "Street address line 2",
	FieldOrganization:       "Company",
	FieldRecipient:          "Contact name",
}

// GenericFieldLabels - подписи полей, не зависящие от страны
func GenericFieldLabels() map[Field]string {
	labels := make(map[Field]string, len(genericFieldLabels))
	for f, l := range genericFieldLabels {
		labels[f] = l
	}
	return labels
}

// FieldLabels - подписи полей с учётом типов, заданных форматом страны
func FieldLabels(format *AddressFormat) map[Field]string {
	labels := GenericFieldLabels()
	if format == nil {
		return labels
	}
	if l, ok := administrativeAreaLabels[format.AdministrativeAreaType]; ok {
		labels[FieldAdministrativeArea] = l
	}
	if l, ok := localityLabels[format.LocalityType]; ok {
		labels[FieldLocality] = l
	}
	if l, ok := dependentLocalityLabels[format.DependentLocalityType]; ok {
		labels[FieldDependentLocality] = l
	}
	if l, ok := postalCodeLabels[format.PostalCodeType]; ok {
		labels[FieldPostalCode] = l
	}
	return labels
}
