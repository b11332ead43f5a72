package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/search"

	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	records []domain.JobRecord
}

func (s stubFetcher) Name() string { return "stub" }

func (s stubFetcher) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	return s.records, nil
}

func testHandler(t *testing.T, records []domain.JobRecord) (http.Handler, *search.ResultCache) {
	t.Helper()

	cache := search.NewResultCache()
	svc := &search.Service{
		Agg: &search.Aggregator{
			Fetchers:       map[string]types.Fetcher{"stub": stubFetcher{records: records}},
			DefaultSources: []string{"stub"},
		},
		Cache:        cache,
		DefaultLimit: 20,
		MaxLimit:     100,
	}

	mux := NewMux(Deps{
		Search: svc,
		Cache:  cache,
		Hub:    events.NewHub(),
	})
	return Chain(mux, Recover, RequestID), cache
}

func TestHealth(t *testing.T) {
	h, _ := testHandler(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["timestamp"])
}

func TestSearchRequiresKeywords(t *testing.T) {
	h, _ := testHandler(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"keywords":"  "}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "bad_request", apiErr.Error.Code)
	require.NotEmpty(t, apiErr.Error.RequestID)
}

func TestSearchReturnsResults(t *testing.T) {
	records := []domain.JobRecord{{
		ID: "j1", Title: "Go Dev", Company: "Acme",
		URL: "https://example.com/1", Source: "stub",
		ScrapedAt: "2026-08-30T12:00:00Z",
	}}
	h, _ := testHandler(t, records)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"keywords":"go"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Success)
	require.Equal(t, 1, res.TotalResults)
	require.Len(t, res.Results, 1)
}

func TestExportBeforeAnySearch(t *testing.T) {
	h, _ := testHandler(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "not_found", apiErr.Error.Code)
}

func TestExportAfterEmptySearch(t *testing.T) {
	h, cache := testHandler(t, nil)
	cache.Put(nil) // a search ran and found nothing

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	require.True(t, strings.HasPrefix(rec.Body.String(), "id,title,company"))
}

func TestExportJSONFormat(t *testing.T) {
	h, cache := testHandler(t, nil)
	cache.Put([]domain.JobRecord{{ID: "j1", Title: "Go Dev", URL: "https://example.com/1"}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export?format=json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var out []domain.JobRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
}

func TestExportBadFormat(t *testing.T) {
	h, cache := testHandler(t, nil)
	cache.Put(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export?format=xml", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "bad_format", apiErr.Error.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := testHandler(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
