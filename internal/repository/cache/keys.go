package cache

import "fmt"

const keyPrefix = "address:"

func formatKey(countryCode, locale string) string {
	return fmt.Sprintf("%sformat:%s:%s", keyPrefix, countryCode, locale)
}

func formatListKey(locale string) string {
	return fmt.Sprintf("%sformats:%s", keyPrefix, locale)
}

func subdivisionDepthKey(countryCode string) string {
	return fmt.Sprintf("%ssubdivision_depth:%s", keyPrefix, countryCode)
}

func subdivisionListKey(countryCode, parentID, locale string) string {
	return fmt.Sprintf("%ssubdivisions:%s:%s:%s", keyPrefix, countryCode, parentID, locale)
}

func subdivisionKey(id, locale string) string {
	return fmt.Sprintf("%ssubdivision:%s:%s", keyPrefix, id, locale)
}

func countryListKey(locale string) string {
	return fmt.Sprintf("%scountries:%s", keyPrefix, locale)
}

func countryKey(code, locale string) string {
	return fmt.Sprintf("%scountry:%s:%s", keyPrefix, code, locale)
}

func availableCountriesKey(fieldDefinitionID string) string {
	return fmt.Sprintf("%savailable_countries:%s", keyPrefix, fieldDefinitionID)
}

// FormatPatterns - шаблоны ключей, устаревающих при изменении формата страны
func FormatPatterns(countryCode string) []string {
	return []string{
		fmt.Sprintf("%sformat:%s:*", keyPrefix, countryCode),
		keyPrefix + "formats:*",
		fmt.Sprintf("%ssubdivision_depth:%s", keyPrefix, countryCode),
		fmt.Sprintf("%ssubdivisions:%s:*", keyPrefix, countryCode),
		fmt.Sprintf("%ssubdivision:%s-*", keyPrefix, countryCode),
	}
}

// SubdivisionPatterns - шаблоны ключей, устаревающих при изменении подразделений страны
func SubdivisionPatterns(countryCode string) []string {
	return []string{
		fmt.Sprintf("%ssubdivision_depth:%s", keyPrefix, countryCode),
		fmt.Sprintf("%ssubdivisions:%s:*", keyPrefix, countryCode),
		fmt.Sprintf("%ssubdivision:%s-*", keyPrefix, countryCode),
	}
}

// AllPattern - все ключи сервиса (после импорта)
func AllPattern() string {
	return keyPrefix + "*"
}
