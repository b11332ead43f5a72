// Package arbeitnow adapts the Arbeitnow job-board API. Unlike the
// remote-only boards it lists onsite positions too, so the remote flag and
// location filter both apply locally.
package arbeitnow

import (
	"context"
	"encoding/json"
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
		cfg.BaseURL = "https://www.arbeitnow.com/api/job-board-api"
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

func (s *Scraper) Name() string { return "arbeitnow" }

type payload struct {
	Data []posting `json:"data"`
}

type posting struct {
	Slug        string   `json:"slug"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	Location    string   `json:"location"`
	CreatedAt   int64    `json:"created_at"`
}

func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, s.cfg.BaseURL); err != nil {
			return nil, types.Errf(types.KindNetwork, "arbeitnow rate wait: %w", err)
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL, nil)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, types.Errf(types.KindNetwork, "arbeitnow get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, types.Errf(types.KindStatus, "arbeitnow status %d", res.StatusCode)
	}

	var data payload
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, types.Errf(types.KindPayload, "arbeitnow decode: %w", err)
	}

	now := domain.Timestamp(time.Now())
	out := make([]domain.JobRecord, 0, s.cfg.MaxResults)

	for _, p := range data.Data {
		if len(out) >= s.cfg.MaxResults {
			break
		}
		if p.URL == "" {
			continue
		}
		if q.Remote && !p.Remote {
			continue
		}

		location := util.CleanText(p.Location)
		if location == "" {
			if p.Remote {
				location = "Remote"
			} else {
				location = "Unknown"
			}
		}
		if !util.MatchesLocation(q.Location, location) {
			continue
		}

		hay := p.Title + " " + p.CompanyName + " " + p.Description + " " + strings.Join(p.Tags, " ")
		if !util.MatchesKeywords(q.Keywords, hay) {
			continue
		}

		contract := mapContract(strings.ToLower(strings.Join(p.JobTypes, " ")))
		if contract == "" {
			contract = q.ContractType
		}

		postedAt := ""
		if p.CreatedAt > 0 {
			postedAt = domain.Timestamp(time.Unix(p.CreatedAt, 0))
		}

		title := util.CleanText(p.Title)
		if title == "" {
			title = "Unknown Position"
		}
		company := util.CleanText(p.CompanyName)
		if company == "" {
			company = "Unknown Company"
		}

		tags := p.Tags
		if len(tags) > 10 {
			tags = tags[:10]
		}

		out = append(out, domain.JobRecord{
			ID:           domain.NewID(),
			Title:        title,
			Company:      company,
			Location:     location,
			ContractType: contract,
			Description:  util.Truncate(util.StripHTML(p.Description), 500),
			URL:          p.URL,
			Source:       s.Name(),
			PostedAt:     postedAt,
			ScrapedAt:    now,
			Tags:         tags,
		})
	}

	return out, nil
}

func mapContract(jobTypes string) string {
	switch {
	case strings.Contains(jobTypes, "full"):
		return domain.ContractFullTime
	case strings.Contains(jobTypes, "part"):
		return domain.ContractPartTime
	case strings.Contains(jobTypes, "contract"), strings.Contains(jobTypes, "temporary"):
		return domain.ContractFixedTerm
	case strings.Contains(jobTypes, "freelance"):
		return domain.ContractFreelance
	default:
		return ""
	}
}
