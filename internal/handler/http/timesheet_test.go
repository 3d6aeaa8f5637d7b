package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
	"github.com/timesync-hq/timesync-ingest-go/internal/handler/http/response"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/token"
)

type stubIngestService struct {
	result  timesheet.IngestResult
	err     error
	payload []byte
}

func (s *stubIngestService) IngestDocument(_ context.Context, payload []byte) (timesheet.IngestResult, error) {
	s.payload = payload
	return s.result, s.err
}

func newTestServer(t *testing.T, stub *stubIngestService) (*httptest.Server, token.Service) {
	t.Helper()

	tokenService := token.NewService("test-secret", "1h")
	router := NewRouter(tokenService, NewTimesheetHandler(stub))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, tokenService
}

func postIngest(t *testing.T, server *httptest.Server, bearer, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/timesheets/ingest", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIngestEndpoint_Success(t *testing.T) {
	stub := &stubIngestService{result: timesheet.IngestResult{
		Status:           timesheet.StatusOK,
		Employee:         4021,
		RecordsProcessed: 3,
	}}
	server, tokenService := newTestServer(t, stub)

	bearer, _, err := tokenService.GenerateServiceToken("extraction-pipeline")
	require.NoError(t, err)

	resp := postIngest(t, server, bearer, `{"header_info": {"employee": {"registration": "4021"}}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, float64(3), data["records_processed"])

	assert.JSONEq(t, `{"header_info": {"employee": {"registration": "4021"}}}`, string(stub.payload))
}

func TestIngestEndpoint_MissingToken(t *testing.T) {
	stub := &stubIngestService{}
	server, _ := newTestServer(t, stub)

	resp := postIngest(t, server, "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, stub.payload)
}

func TestIngestEndpoint_TokenSignedWithWrongSecret(t *testing.T) {
	stub := &stubIngestService{}
	server, _ := newTestServer(t, stub)

	other := token.NewService("other-secret", "1h")
	bearer, _, err := other.GenerateServiceToken("extraction-pipeline")
	require.NoError(t, err)

	resp := postIngest(t, server, bearer, `{}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, stub.payload)
}

func TestIngestEndpoint_InvalidDocumentIsBadRequest(t *testing.T) {
	stub := &stubIngestService{err: timesheet.ErrInvalidDocument}
	server, tokenService := newTestServer(t, stub)

	bearer, _, err := tokenService.GenerateServiceToken("extraction-pipeline")
	require.NoError(t, err)

	resp := postIngest(t, server, bearer, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIngestEndpoint_UpstreamErrorIsUnprocessable(t *testing.T) {
	stub := &stubIngestService{
		result: timesheet.IngestResult{Status: timesheet.StatusError, Message: "extraction failed"},
		err:    timesheet.ErrUpstreamExtraction,
	}
	server, tokenService := newTestServer(t, stub)

	bearer, _, err := tokenService.GenerateServiceToken("extraction-pipeline")
	require.NoError(t, err)

	resp := postIngest(t, server, bearer, `{"error": true, "message": "extraction failed"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", body.Error.Code)
}
