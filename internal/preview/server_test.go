package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/widgetic/apidocs/pkg/codesample"
)

func doRequest(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServer(t *testing.T) {
	assert := assert2.New(t)
	s := New(filepath.Join("testdata", "widgets.json"))

	t.Run("health", func(t *testing.T) {
		rec := doRequest(s, "/healthz")
		assert.Equal(http.StatusOK, rec.Code)
		assert.JSONEq(`{"status":"ok"}`, rec.Body.String())
		assert.Regexp(`^\d+\.\d{3}ms$`, rec.Header().Get(DurationHeader))
	})

	t.Run("document", func(t *testing.T) {
		rec := doRequest(s, "/openapi.json")
		assert.Equal(http.StatusOK, rec.Code)
		assert.Contains(rec.Header().Get("Content-Type"), "application/json")
		assert.NotEmpty(rec.Header().Get("ETag"))
		assert.Contains(rec.Body.String(), `"operationId": "getAllWidgets"`)
	})

	t.Run("document as yaml", func(t *testing.T) {
		rec := doRequest(s, "/openapi.yaml")
		assert.Equal(http.StatusOK, rec.Code)
		assert.Contains(rec.Body.String(), "operationId: getAllWidgets")
	})

	t.Run("operations", func(t *testing.T) {
		rec := doRequest(s, "/operations")
		require.Equal(t, http.StatusOK, rec.Code)

		var res []OperationSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal([]OperationSummary{
			{Method: "get", Path: "/widgets", OperationID: "getAllWidgets", AccessLevel: "public", Samples: 2},
			{Method: "post", Path: "/widgets", OperationID: "createWidget", AccessLevel: "user", Samples: 0},
		}, res)
	})

	t.Run("samples", func(t *testing.T) {
		rec := doRequest(s, "/operations/getAllWidgets/samples")
		require.Equal(t, http.StatusOK, rec.Code)

		var res []codesample.Sample
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res, 2)
		assert.Equal("cURL", res[0].Label)
		assert.Equal("go", res[1].Lang)
	})

	t.Run("operation without samples", func(t *testing.T) {
		rec := doRequest(s, "/operations/createWidget/samples")
		assert.Equal(http.StatusOK, rec.Code)
		assert.Equal("[]", rec.Body.String())
	})

	t.Run("unknown operation", func(t *testing.T) {
		rec := doRequest(s, "/operations/nope/samples")
		assert.Equal(http.StatusNotFound, rec.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := doRequest(s, "/metrics")
		assert.Equal(http.StatusOK, rec.Code)
		assert.Contains(rec.Body.String(), `apidocs_preview_requests_total{route="/healthz",status="200"} 1`)
		assert.Contains(rec.Body.String(), `apidocs_preview_requests_total{route="/operations/:operationId/samples",status="404"} 1`)
	})
}

func TestServer_MissingTarget(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))

	rec := doRequest(s, "/openapi.json")
	assert2.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(s, "/operations")
	assert2.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
