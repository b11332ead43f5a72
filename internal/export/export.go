// Package export renders cached search results as downloadable documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"jobscout-engine/internal/domain"
)

// csvHeader is the stable column order; consumers key spreadsheets off it.
var csvHeader = []string{
	"id", "title", "company", "location", "salary", "contract_type",
	"experience_level", "description", "url", "source", "posted_at",
	"scraped_at", "tags",
}

// ToCSV renders records as CSV with a header row. An empty slice yields the
// header alone, which is still a valid export.
func ToCSV(records []domain.JobRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Title,
			r.Company,
			r.Location,
			r.Salary,
			r.ContractType,
			r.ExperienceLevel,
			r.Description,
			r.URL,
			r.Source,
			r.PostedAt,
			r.ScrapedAt,
			strings.Join(r.Tags, ", "),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON renders records as a pretty-printed JSON array. HTML escaping is
// off so titles keep their original characters.
func ToJSON(records []domain.JobRecord) ([]byte, error) {
	if records == nil {
		records = []domain.JobRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
