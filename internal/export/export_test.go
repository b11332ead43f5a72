package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"jobscout-engine/internal/domain"

	"github.com/stretchr/testify/require"
)

func sample() []domain.JobRecord {
	return []domain.JobRecord{
		{
			ID:           "id-1",
			Title:        "Développeur Go",
			Company:      "Acme",
			Location:     "Paris",
			Salary:       "$90,000",
			ContractType: domain.ContractFullTime,
			URL:          "https://example.com/1",
			Source:       "remoteok",
			ScrapedAt:    "2026-08-30T12:00:00Z",
			Tags:         []string{"go", "backend"},
		},
		{
			ID:        "id-2",
			Title:     "Data Engineer",
			Company:   "Beta, Inc.",
			Location:  "Remote",
			URL:       "https://example.com/2",
			Source:    "jobicy",
			ScrapedAt: "2026-08-30T12:00:00Z",
		},
	}
}

func TestToCSVHeaderAndRows(t *testing.T) {
	b, err := ToCSV(sample())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{
		"id", "title", "company", "location", "salary", "contract_type",
		"experience_level", "description", "url", "source", "posted_at",
		"scraped_at", "tags",
	}, rows[0])

	require.Equal(t, "Développeur Go", rows[1][1])
	require.Equal(t, "go, backend", rows[1][12])

	// Missing fields become empty cells, not omitted columns.
	require.Equal(t, "Beta, Inc.", rows[2][2])
	require.Equal(t, "", rows[2][4])
	require.Equal(t, "", rows[2][12])
}

func TestToCSVEmptyListKeepsHeader(t *testing.T) {
	b, err := ToCSV(nil)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(b), "\n"))
	require.True(t, strings.HasPrefix(string(b), "id,title,company"))
}

func TestToJSONShape(t *testing.T) {
	b, err := ToJSON(sample())
	require.NoError(t, err)

	s := string(b)
	require.Contains(t, s, `"contractType": "Full-time"`)
	require.Contains(t, s, "Développeur Go") // no HTML/unicode escaping
	require.NotContains(t, s, `\u`)
}

func TestToJSONNilBecomesEmptyArray(t *testing.T) {
	b, err := ToJSON(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(b)))
}
