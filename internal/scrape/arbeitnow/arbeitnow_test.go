package arbeitnow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"

	"github.com/stretchr/testify/require"
)

const feed = `{"data": [
  {"slug": "go-dev-berlin", "company_name": "Acme GmbH", "title": "Go Developer",
   "description": "<p>Backend in Go</p>", "remote": false,
   "url": "https://arbeitnow.com/jobs/go-dev-berlin",
   "tags": ["go", "backend"], "job_types": ["Full time"], "location": "Berlin",
   "created_at": 1756300000},
  {"slug": "go-dev-remote", "company_name": "Beta", "title": "Remote Go Engineer",
   "description": "Remote-first team", "remote": true,
   "url": "https://arbeitnow.com/jobs/go-dev-remote",
   "tags": ["go"], "job_types": ["Temporary"], "location": ""},
  {"slug": "chef", "company_name": "Gamma", "title": "Head Chef",
   "description": "Kitchen", "remote": false,
   "url": "https://arbeitnow.com/jobs/chef", "location": "Munich"}
]}`

func testScraper(t *testing.T) *Scraper {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL}, nil)
}

func TestFetchMapsFields(t *testing.T) {
	s := testScraper(t)

	records, err := s.Fetch(context.Background(), types.Query{Keywords: "go"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	require.Equal(t, "Go Developer", first.Title)
	require.Equal(t, "Berlin", first.Location)
	require.Equal(t, domain.ContractFullTime, first.ContractType)
	require.Equal(t, "Backend in Go", first.Description)
	require.NotEmpty(t, first.PostedAt) // from the created_at epoch

	second := records[1]
	require.Equal(t, "Remote", second.Location) // remote posting with blank location
	require.Equal(t, domain.ContractFixedTerm, second.ContractType)
	require.Empty(t, second.PostedAt)
}

func TestFetchRemoteFlag(t *testing.T) {
	s := testScraper(t)

	records, err := s.Fetch(context.Background(), types.Query{Keywords: "go", Remote: true})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Remote Go Engineer", records[0].Title)
}

func TestFetchLocationFilter(t *testing.T) {
	s := testScraper(t)

	records, err := s.Fetch(context.Background(), types.Query{Keywords: "go", Location: "berlin"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Go Developer", records[0].Title)
}
