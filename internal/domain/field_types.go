package domain

// AdministrativeAreaType - тип административной единицы верхнего уровня (для подписей)
type AdministrativeAreaType string

const (
	AdministrativeAreaArea       AdministrativeAreaType = "area"
	AdministrativeAreaCounty     AdministrativeAreaType = "county"
	AdministrativeAreaDepartment AdministrativeAreaType = "department"
	AdministrativeAreaDistrict   AdministrativeAreaType = "district"
	AdministrativeAreaDoSi       AdministrativeAreaType = "do_si"
	AdministrativeAreaEmirate    AdministrativeAreaType = "emirate"
	AdministrativeAreaIsland     AdministrativeAreaType = "island"
	AdministrativeAreaOblast     AdministrativeAreaType = "oblast"
	AdministrativeAreaParish     AdministrativeAreaType = "parish"
	AdministrativeAreaPrefecture AdministrativeAreaType = "prefecture"
	AdministrativeAreaProvince   AdministrativeAreaType = "province"
	AdministrativeAreaState      AdministrativeAreaType = "state"
)

type LocalityType string

const (
	LocalityCity     LocalityType = "city"
	LocalityDistrict LocalityType = "district"
	LocalityPostTown LocalityType = "post_town"
)

type DependentLocalityType string

const (
	DependentLocalityDistrict        DependentLocalityType = "district"
	DependentLocalityNeighborhood    DependentLocalityType = "neighborhood"
	DependentLocalityVillageTownship DependentLocalityType = "village_township"
	DependentLocalitySuburb          DependentLocalityType = "suburb"
)

type PostalCodeType string

const (
	PostalCodePostal PostalCodeType = "postal"
	PostalCodeZip    PostalCodeType = "zip"
	PostalCodePin    PostalCodeType = "pin"
)

var administrativeAreaLabels = map[AdministrativeAreaType]string{
	AdministrativeAreaArea:       "Area",
	AdministrativeAreaCounty:     "County",
	AdministrativeAreaDepartment: "Department",
	AdministrativeAreaDistrict:   "District",
	AdministrativeAreaDoSi:       "Province",
	AdministrativeAreaEmirate:    "Emirate",
	AdministrativeAreaIsland:     "Island",
	AdministrativeAreaOblast:     "Oblast",
	AdministrativeAreaParish:     "Parish",
	AdministrativeAreaPrefecture: "Prefecture",
	AdministrativeAreaProvince:   "Province",
	AdministrativeAreaState:      "State",
}

var localityLabels = map[LocalityType]string{
	LocalityCity:     "City",
	LocalityDistrict: "District",
	LocalityPostTown: "Post town",
}

var dependentLocalityLabels = map[DependentLocalityType]string{
	DependentLocalityDistrict:        "District",
	DependentLocalityNeighborhood:    "Neighborhood",
	DependentLocalityVillageTownship: "Village township",
	DependentLocalitySuburb:          "Suburb",
}

var postalCodeLabels = map[PostalCodeType]string{
	PostalCodePostal: "Postal code",
	PostalCodeZip:    "Zip code",
	PostalCodePin:    "Pin code",
}

// IsValid: пустое значение допустимо и означает "не используется"
func (t AdministrativeAreaType) IsValid() bool {
	_, ok := administrativeAreaLabels[t]
	return t == "" || ok
}

func (t LocalityType) IsValid() bool {
	_, ok := localityLabels[t]
	return t == "" || ok
}

func (t DependentLocalityType) IsValid() bool {
	_, ok := dependentLocalityLabels[t]
	return t == "" || ok
}

func (t PostalCodeType) IsValid() bool {
	_, ok := postalCodeLabels[t]
	return t == "" || ok
}
