// Common test helpers
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sunwaytravel/tripsearch/config"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/sunwaytravel/tripsearch/services/holidayindex"
	"github.com/sunwaytravel/tripsearch/validation"
)

var defaultTestRequestHeaders = map[string]string{"Content-Type": "application/json"}

type testCase struct {
	name             string
	requestHeaders   map[string]string
	requestBody      map[string]any
	queryParams      map[string]string
	expectedStatus   int
	expectedResponse map[string]any
}

func setupTestServer(t *testing.T, assert *require.Assertions) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.New()

	store, err := catalog.New(log, filepath.Join(t.TempDir(), "catalog.db"))
	assert.NoError(err)
	t.Cleanup(func() { store.Close() })
	seedTestCatalog(assert, store)

	validator, err := validation.New(log)
	assert.NoError(err)

	cfg, err := config.Load("")
	assert.NoError(err)

	indexService := holidayindex.New(log)

	router := gin.New()
	SetupSearch(router, log, cfg, store, validator)
	SetupFilters(router, log, store, indexService, validator)
	SetupIndex(router, log, store, indexService)

	return router
}

func seedTestCatalog(assert *require.Assertions, store *catalog.Store) {
	packages := []catalog.Package{
		{
			ID:        "pkg-rome",
			Title:     "Rome City Break",
			Category:  "Italy",
			Countries: []string{"Italy"},
			Tags:      []string{"City Break", "Cultural"},
			Excerpt:   "Three nights in the eternal city",
		},
		{
			ID:        "pkg-paris",
			Title:     "Paris Adventure",
			Countries: []string{"France"},
			Tags:      []string{"Adventure"},
		},
		{
			ID:          "pkg-bali",
			Title:       "Bali Beach Escape",
			Category:    "Indonesia",
			Countries:   []string{"Indonesia"},
			Tags:        []string{"Beach", "Honeymoon"},
			Description: "Romantic sunsets and white sand beaches",
		},
	}
	for _, pkg := range packages {
		assert.NoError(store.PutPackage(pkg))
	}

	assert.NoError(store.PutTour(catalog.Tour{
		ID:        "tour-tuscany",
		Title:     "Tuscany Wine Trail",
		Countries: []string{"Italy"},
		Tags:      []string{"Food and Wine"},
	}))
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method, path string, headers map[string]string, body map[string]any, queryParams map[string]string) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		assert.NoError(err)
		requestBody = bytes.NewBuffer(bodyBytes)
	}

	request, err := http.NewRequest(method, path, requestBody)
	assert.NoError(err)

	for key, value := range headers {
		request.Header.Set(key, value)
	}

	if len(queryParams) > 0 {
		query := request.URL.Query()
		for key, value := range queryParams {
			query.Add(key, value)
		}
		request.URL.RawQuery = query.Encode()
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func unmarshalResponse(assert *require.Assertions, recorder *httptest.ResponseRecorder) map[string]any {
	var responseMap map[string]any
	assert.NoError(json.Unmarshal(recorder.Body.Bytes(), &responseMap))

	return responseMap
}

func responseData(assert *require.Assertions, recorder *httptest.ResponseRecorder) map[string]any {
	responseMap := unmarshalResponse(assert, recorder)
	data, ok := responseMap["data"].(map[string]any)
	assert.True(ok, "expected data object in response")

	return data
}

func resultIDs(assert *require.Assertions, data map[string]any) []string {
	results, ok := data["results"].([]any)
	assert.True(ok, "expected results array in response data")

	ids := make([]string, 0, len(results))
	for _, result := range results {
		resultMap, ok := result.(map[string]any)
		assert.True(ok, "expected result object")
		id, ok := resultMap["id"].(string)
		assert.True(ok, "expected string id in result")
		ids = append(ids, id)
	}

	return ids
}
