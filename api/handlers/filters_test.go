package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleFilterSearchByHolidayType(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/index", defaultTestRequestHeaders, nil, nil)
	assert.Equal(http.StatusOK, w.Code)

	w = makeTestHTTPRequest(router, assert, http.MethodGet, "/search/filters", nil, nil, map[string]string{"holiday_types": "Beach"})
	assert.Equal(http.StatusOK, w.Code)

	data := responseData(assert, w)
	ids := resultIDs(assert, data)
	assert.Equal([]string{"pkg-bali"}, ids)
	assert.Equal(float64(1), data["total"])
}

func TestHandleFilterSearchMultipleTypes(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/index", defaultTestRequestHeaders, nil, nil)
	assert.Equal(http.StatusOK, w.Code)

	w = makeTestHTTPRequest(router, assert, http.MethodGet, "/search/filters", nil, nil, map[string]string{"holiday_types": "Beach,Honeymoon"})
	assert.Equal(http.StatusOK, w.Code)

	ids := resultIDs(assert, responseData(assert, w))
	// pkg-bali carries both tags, so it gets the multi-filter bonus on top
	assert.Equal("pkg-bali", ids[0])
}

func TestHandleFilterSearchNoFilters(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/index", defaultTestRequestHeaders, nil, nil)
	assert.Equal(http.StatusOK, w.Code)

	w = makeTestHTTPRequest(router, assert, http.MethodGet, "/search/filters", nil, nil, nil)
	assert.Equal(http.StatusOK, w.Code)

	data := responseData(assert, w)
	assert.Equal(float64(3), data["total"])
}

func TestHandleFilterSearchBeforeIndexBuild(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	w := makeTestHTTPRequest(router, assert, http.MethodGet, "/search/filters", nil, nil, map[string]string{"holiday_types": "Beach"})
	assert.Equal(http.StatusOK, w.Code)

	data := responseData(assert, w)
	assert.Equal(float64(0), data["total"])
}
