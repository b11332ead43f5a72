package domain

import (
	"time"

	"github.com/google/uuid"
)

// Normalized vocabularies adapters map upstream values onto. A record carries
// an empty string when the upstream value doesn't map.
const (
	ContractFullTime  = "Full-time"
	ContractPartTime  = "Part-time"
	ContractFixedTerm = "Contract"
	ContractFreelance = "Freelance"

	ExperienceJunior = "Junior"
	ExperienceMid    = "Mid"
	ExperienceSenior = "Senior"
)

// JobRecord is the normalized posting shape every source adapter emits.
// URL, Source and ScrapedAt are always set; everything tagged omitempty may
// legitimately be absent. IDs are minted here, never taken from upstream.
type JobRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary,omitempty"`
	ContractType    string   `json:"contractType,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	Description     string   `json:"description,omitempty"`
	URL             string   `json:"url"`
	Source          string   `json:"source"`
	PostedAt        string   `json:"postedAt,omitempty"`
	ScrapedAt       string   `json:"scrapedAt"`
	Tags            []string `json:"tags,omitempty"`
}

func NewID() string { return uuid.NewString() }

// Timestamp renders t the way every record timestamp is stored: RFC3339 UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
