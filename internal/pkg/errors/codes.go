package errors

import "net/http"

var (
	ErrAddressFormatNotFound = New(
		"ADDRESS_FORMAT_NOT_FOUND",
		"Address format not found",
		http.StatusNotFound,
	)

	ErrSubdivisionNotFound = New(
		"SUBDIVISION_NOT_FOUND",
		"Subdivision not found",
		http.StatusNotFound,
	)

	ErrZoneNotFound = New(
		"ZONE_NOT_FOUND",
		"Zone not found",
		http.StatusNotFound,
	)

	ErrCountryNotFound = New(
		"COUNTRY_NOT_FOUND",
		"Country not found",
		http.StatusNotFound,
	)

	ErrInvalidCountryCode = New(
		"INVALID_COUNTRY_CODE",
		"Invalid country code",
		http.StatusBadRequest,
	)

	ErrCountryCodeImmutable = New(
		"COUNTRY_CODE_IMMUTABLE",
		"Country code cannot be changed",
		http.StatusBadRequest,
	)

	ErrGenericFormatDeletion = New(
		"GENERIC_FORMAT_DELETION",
		"The generic address format cannot be deleted",
		http.StatusConflict,
	)

	ErrInvalidAddressFormat = New(
		"INVALID_ADDRESS_FORMAT",
		"Invalid address format",
		http.StatusBadRequest,
	)

	ErrInvalidSubdivision = New(
		"INVALID_SUBDIVISION",
		"Invalid subdivision",
		http.StatusBadRequest,
	)

	ErrInvalidZone = New(
		"INVALID_ZONE",
		"Invalid zone",
		http.StatusBadRequest,
	)

	ErrDataSource = New(
		"DATA_SOURCE_ERROR",
		"Address data source is unavailable",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
