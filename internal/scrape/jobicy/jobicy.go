// Package jobicy adapts the Jobicy remote-jobs API. The API is fetched
// unfiltered (its tag filter is too coarse) and keyword/location matching
// happens locally; field values arrive HTML-encoded and sometimes as either
// a string or a list, so decoding is defensive throughout.
package jobicy

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/scrape/util"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Config struct {
	BaseURL    string
	MaxResults int
	Timeout    time.Duration
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://jobicy.com/api/v2/remote-jobs"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "jobicy" }

// flexStrings tolerates upstream fields that are sometimes a string and
// sometimes a list (jobGeo, jobType, jobExperience, jobIndustry all do this).
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one != "" {
			*f = []string{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*f = many
		return nil
	}
	// Mixed-type array or object: stringify whatever is stringable.
	var anyv []any
	if err := json.Unmarshal(b, &anyv); err == nil {
		for _, v := range anyv {
			if s, ok := v.(string); ok && s != "" {
				*f = append(*f, s)
			}
		}
	}
	return nil
}

// flexNumber accepts a number or a numeric string and keeps the raw digits.
type flexNumber string

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*f = flexNumber(s)
	return nil
}

type payload struct {
	Jobs []posting `json:"jobs"`
}

type posting struct {
	JobTitle        string      `json:"jobTitle"`
	CompanyName     string      `json:"companyName"`
	JobDescription  string      `json:"jobDescription"`
	JobGeo          flexStrings `json:"jobGeo"`
	JobType         flexStrings `json:"jobType"`
	JobExperience   flexStrings `json:"jobExperience"`
	JobIndustry     flexStrings `json:"jobIndustry"`
	AnnualSalaryMin flexNumber  `json:"annualSalaryMin"`
	AnnualSalaryMax flexNumber  `json:"annualSalaryMax"`
	SalaryCurrency  string      `json:"salaryCurrency"`
	PubDate         string      `json:"pubDate"`
	URL             string      `json:"url"`
}

func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	apiURL := s.cfg.BaseURL + "?count=50"

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, types.Errf(types.KindNetwork, "jobicy rate wait: %w", err)
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, types.Errf(types.KindNetwork, "jobicy get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, types.Errf(types.KindStatus, "jobicy status %d", res.StatusCode)
	}

	var data payload
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, types.Errf(types.KindPayload, "jobicy decode: %w", err)
	}

	now := domain.Timestamp(time.Now())
	out := make([]domain.JobRecord, 0, s.cfg.MaxResults)

	for _, p := range data.Jobs {
		if len(out) >= s.cfg.MaxResults {
			break
		}
		if p.URL == "" {
			continue
		}

		title := util.CleanText(html.UnescapeString(p.JobTitle))
		company := util.CleanText(html.UnescapeString(p.CompanyName))
		description := html.UnescapeString(p.JobDescription)

		location := strings.Join(p.JobGeo, ", ")
		if location == "" {
			location = "Remote"
		}

		hay := title + " " + company + " " + description + " " + strings.Join(p.JobIndustry, " ")
		if !util.MatchesKeywords(q.Keywords, hay) {
			continue
		}
		if !util.MatchesLocation(q.Location, location) {
			continue
		}

		contract := mapContract(strings.ToLower(strings.Join(p.JobType, " ")))
		if contract == "" {
			contract = q.ContractType
		}

		tags := []string(p.JobIndustry)
		if len(tags) > 5 {
			tags = tags[:5]
		}

		if title == "" {
			title = "Unknown Position"
		}
		if company == "" {
			company = "Unknown Company"
		}

		out = append(out, domain.JobRecord{
			ID:              domain.NewID(),
			Title:           title,
			Company:         company,
			Location:        location,
			Salary:          salaryText(p.AnnualSalaryMin, p.AnnualSalaryMax, p.SalaryCurrency),
			ContractType:    contract,
			ExperienceLevel: mapExperience(strings.ToLower(strings.Join(p.JobExperience, " "))),
			Description:     util.Truncate(util.StripHTML(description), 500),
			URL:             p.URL,
			Source:          s.Name(),
			PostedAt:        p.PubDate,
			ScrapedAt:       now,
			Tags:            tags,
		})
	}

	return out, nil
}

func mapContract(jobType string) string {
	switch {
	case strings.Contains(jobType, "full"):
		return domain.ContractFullTime
	case strings.Contains(jobType, "part"):
		return domain.ContractPartTime
	case strings.Contains(jobType, "contract"):
		return domain.ContractFixedTerm
	case strings.Contains(jobType, "freelance"):
		return domain.ContractFreelance
	default:
		return ""
	}
}

func mapExperience(exp string) string {
	switch {
	case strings.Contains(exp, "junior"), strings.Contains(exp, "entry"):
		return domain.ExperienceJunior
	case strings.Contains(exp, "senior"):
		return domain.ExperienceSenior
	case strings.Contains(exp, "mid"):
		return domain.ExperienceMid
	default:
		return ""
	}
}

func salaryText(min, max flexNumber, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	lo, hi := string(min), string(max)
	zero := func(s string) bool { return s == "" || s == "0" }
	switch {
	case !zero(lo) && !zero(hi):
		return fmt.Sprintf("%s-%s %s", lo, hi, currency)
	case !zero(lo):
		return fmt.Sprintf("%s+ %s", lo, currency)
	default:
		return ""
	}
}
