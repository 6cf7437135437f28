package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/config"
	httpDelivery "github.com/address-microservice/internal/delivery/http"
	"github.com/address-microservice/internal/delivery/http/handler"
	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/repository/cache"
	"github.com/address-microservice/internal/repository/dataset"
	"github.com/address-microservice/internal/usecase"
)

// stubStreams запоминает опубликованные задания
type stubStreams struct {
	published []interface{}
}

func (s *stubStreams) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	return nil, nil
}

func (s *stubStreams) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return nil
}

func (s *stubStreams) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return nil
}

func (s *stubStreams) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	s.published = append(s.published, data)
	return "1-0", nil
}

type apiResponse struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*httpDelivery.Server, *stubStreams) {
	t.Helper()
	logger := zap.NewNop()

	ds, err := dataset.New(logger)
	require.NoError(t, err)
	formats := dataset.NewAddressFormatRepository(ds)
	subdivisions := dataset.NewSubdivisionRepository(ds)
	countries := dataset.NewCountryRepository(ds)
	zones := dataset.NewZoneRepository(ds)
	invalidator := cache.NewNoopInvalidator()
	streams := &stubStreams{}

	formatResolver := usecase.NewFormatResolver(formats, nil, logger)
	subdivisionResolver := usecase.NewSubdivisionResolver(subdivisions, nil, logger)
	renderer := usecase.NewAddressRenderer(formatResolver, subdivisionResolver, countries, nil, logger)
	countryUC := usecase.NewCountryUseCase(countries, nil, logger)
	validationUC := usecase.NewValidationUseCase(
		usecase.NewAddressValidator(formatResolver, subdivisionResolver, countries, logger), countryUC, logger)
	importUC := usecase.NewImportUseCase(formats, subdivisions, formats, subdivisions, streams, invalidator, nil, nil, logger)

	server := httpDelivery.NewServer(&config.Config{}, logger, httpDelivery.Handlers{
		Country:     handler.NewCountryHandler(countryUC, logger),
		Format:      handler.NewFormatHandler(usecase.NewFormatUseCase(formatResolver, subdivisionResolver, formats, invalidator, logger), logger),
		Subdivision: handler.NewSubdivisionHandler(usecase.NewSubdivisionUseCase(subdivisionResolver, subdivisions, formats, invalidator, logger), logger),
		Render:      handler.NewRenderHandler(usecase.NewRenderUseCase(renderer), validationUC, logger),
		Zone:        handler.NewZoneHandler(usecase.NewZoneUseCase(zones, logger), logger),
		Import:      handler.NewImportHandler(importUC, logger),
	})
	return server, streams
}

func doRequest(t *testing.T, server *httpDelivery.Server, method, path, body string) (int, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestServer_Render(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "POST", "/api/v1/render", `{
		"address": {
			"country_code": "US",
			"recipient": "Jane Doe",
			"address_line1": "123 Main St",
			"locality": "Springfield",
			"administrative_area": "US-IL",
			"postal_code": "62701"
		},
		"html": true
	}`)

	require.Equal(t, 200, status)
	var data struct {
		Text  string   `json:"text"`
		Lines []string `json:"lines"`
		HTML  string   `json:"html"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Jane Doe\n123 Main St\nSpringfield, IL 62701\nUNITED STATES", data.Text)
	assert.Len(t, data.Lines, 4)
	assert.Equal(t, "Jane Doe<br>\n123 Main St<br>\nSpringfield, IL 62701<br>\nUNITED STATES", data.HTML)
}

func TestServer_RenderValidation(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "POST", "/api/v1/render", `{"address": {"country_code": "US"}, "mode": "fancy"}`)
	require.Equal(t, 400, status)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "mode")

	status, resp = doRequest(t, server, "POST", "/api/v1/render", `{"address":`)
	require.Equal(t, 400, status)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestServer_BatchRender(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "POST", "/api/v1/batch/render", `{
		"addresses": [
			{"country_code": "DE", "address_line1": "Hauptstr. 1", "postal_code": "10115", "locality": "Berlin"},
			{"country_code": "XX", "address_line1": "1 Road", "locality": "Townsville"}
		]
	}`)

	require.Equal(t, 200, status)
	var data struct {
		Results []struct {
			Text       string `json:"text"`
			FormatCode string `json:"format_code"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Results, 2)
	assert.Equal(t, "Hauptstr. 1\n10115 Berlin\nGERMANY", data.Results[0].Text)
	assert.Equal(t, "ZZ", data.Results[1].FormatCode)
}

func TestServer_Validate(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "POST", "/api/v1/validate", `{
		"address": {"country_code": "US", "address_line1": "123 Main St", "locality": "Springfield", "administrative_area": "IL", "postal_code": "94105"}
	}`)

	require.Equal(t, 200, status)
	var data struct {
		Valid      bool               `json:"valid"`
		Violations []domain.Violation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.Valid)
	require.Len(t, data.Violations, 1)
	assert.Equal(t, "postal_code", data.Violations[0].Field)
}

func TestServer_Formats(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "GET", "/api/v1/formats/xx", "")
	require.Equal(t, 200, status)
	var format struct {
		CountryCode          string `json:"country_code"`
		RequestedCountryCode string `json:"requested_country_code"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &format))
	assert.Equal(t, "ZZ", format.CountryCode)
	assert.Equal(t, "XX", format.RequestedCountryCode)

	status, resp = doRequest(t, server, "DELETE", "/api/v1/formats/ZZ", "")
	require.Equal(t, 409, status)
	assert.Equal(t, "GENERIC_FORMAT_DELETION", resp.Error.Code)

	status, resp = doRequest(t, server, "PUT", "/api/v1/formats/AT", `{"format": "%addressLine1\n%postalCode %locality", "required_fields": ["street"]}`)
	require.Equal(t, 400, status)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)

	status, _ = doRequest(t, server, "PUT", "/api/v1/formats/AT", `{"format": "%addressLine1\n%addressLine2\n%postalCode %locality", "required_fields": ["addressLine1"]}`)
	require.Equal(t, 200, status)

	status, _ = doRequest(t, server, "DELETE", "/api/v1/formats/AT", "")
	assert.Equal(t, 204, status)
}

func TestServer_SaveGenericFormat(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "PUT", "/api/v1/formats/ZZ", `{"country_code": "ZZ", "format": "%addressLine1\n%addressLine2\n%locality"}`)
	require.Equal(t, 200, status, "unexpected error: %+v", resp.Error)

	status, resp = doRequest(t, server, "PUT", "/api/v1/formats/ZZ", `{"country_code": "zzz", "format": "%addressLine1\n%locality"}`)
	require.Equal(t, 400, status)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	assert.Equal(t, "address_country", resp.Error.Details["country_code"])
}

func TestServer_Subdivisions(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "GET", "/api/v1/subdivisions/CN?parent=CN-SC&locale=zh", "")
	require.Equal(t, 200, status)
	var list struct {
		Items []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "成都市", list.Items[0].Name)

	status, resp = doRequest(t, server, "GET", "/api/v1/subdivisions/CN/depth", "")
	require.Equal(t, 200, status)
	assert.JSONEq(t, `{"country_code": "CN", "depth": 3}`, string(resp.Data))

	status, resp = doRequest(t, server, "GET", "/api/v1/subdivision/CN-XX", "")
	require.Equal(t, 404, status)
	assert.Equal(t, "SUBDIVISION_NOT_FOUND", resp.Error.Code)

	status, _ = doRequest(t, server, "DELETE", "/api/v1/subdivision/CN-SC", "")
	assert.Equal(t, 204, status)
}

func TestServer_Zones(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "POST", "/api/v1/zones/us_west_coast/match", `{"address": {"country_code": "US", "administrative_area": "US-WA"}}`)
	require.Equal(t, 200, status)
	assert.JSONEq(t, `{"zone_id": "us_west_coast", "matched": true}`, string(resp.Data))

	status, _ = doRequest(t, server, "PUT", "/api/v1/zones/dach", `{"name": "DACH", "members": [
		{"type": "country", "country_code": "DE"},
		{"type": "country", "country_code": "AT"},
		{"type": "country", "country_code": "CH"}
	]}`)
	require.Equal(t, 200, status)

	status, resp = doRequest(t, server, "PUT", "/api/v1/zones/broken", `{"members": [{"type": "planet"}]}`)
	require.Equal(t, 400, status)
	assert.Equal(t, "INVALID_ZONE", resp.Error.Code)

	status, _ = doRequest(t, server, "POST", "/api/v1/zones/missing/match", `{"address": {"country_code": "US"}}`)
	assert.Equal(t, 404, status)
}

func TestServer_Import(t *testing.T) {
	server, streams := newTestServer(t)

	status, resp := doRequest(t, server, "POST", "/api/v1/import", `{"country_codes": ["US"]}`)

	require.Equal(t, 202, status)
	var data struct {
		MessageID string `json:"message_id"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "1-0", data.MessageID)
	assert.Equal(t, "queued", data.Status)
	require.Len(t, streams.published, 1)
}

func TestServer_CountriesAndHealth(t *testing.T) {
	server, _ := newTestServer(t)

	status, resp := doRequest(t, server, "GET", "/api/v1/countries?locale=ja", "")
	require.Equal(t, 200, status)
	assert.Contains(t, string(resp.Data), "アメリカ合衆国")

	status, _ = doRequest(t, server, "GET", "/api/v1/health", "")
	assert.Equal(t, 200, status)

	status, resp = doRequest(t, server, "GET", "/api/v1/unknown", "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
