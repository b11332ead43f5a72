// Package remoteok adapts the RemoteOK public API. The API has no query
// parameters worth using, so keyword matching happens locally over the full
// feed; every posting there is remote by definition.
package remoteok

import (
	"context"
	"encoding/json"
	"fmt"
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
		cfg.BaseURL = "https://remoteok.com/api"
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

func (s *Scraper) Name() string { return "remoteok" }

type posting struct {
	Legal       string   `json:"legal"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	SalaryMin   int      `json:"salary_min"`
	SalaryMax   int      `json:"salary_max"`
	Date        string   `json:"date"`
	Slug        string   `json:"slug"`
	URL         string   `json:"url"`
}

func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, s.cfg.BaseURL); err != nil {
			return nil, types.Errf(types.KindNetwork, "remoteok rate wait: %w", err)
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL, nil)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, types.Errf(types.KindNetwork, "remoteok get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, types.Errf(types.KindStatus, "remoteok status %d", res.StatusCode)
	}

	// Elements are heterogeneous (the feed opens with a legal notice), so
	// decode per entry and skip anything malformed instead of failing.
	var raw []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, types.Errf(types.KindPayload, "remoteok decode: %w", err)
	}

	now := domain.Timestamp(time.Now())
	out := make([]domain.JobRecord, 0, s.cfg.MaxResults)

	for _, entry := range raw {
		if len(out) >= s.cfg.MaxResults {
			break
		}

		var p posting
		if err := json.Unmarshal(entry, &p); err != nil {
			continue
		}
		if p.Legal != "" {
			continue
		}

		jobURL := p.URL
		if p.Slug != "" {
			jobURL = "https://remoteok.com/remote-jobs/" + p.Slug
		}
		if jobURL == "" {
			continue
		}

		hay := p.Position + " " + p.Company + " " + p.Description + " " + strings.Join(p.Tags, " ")
		if !util.MatchesKeywords(q.Keywords, hay) {
			continue
		}

		contract := q.ContractType
		if contract == "" {
			contract = domain.ContractFullTime
		}

		title := p.Position
		if title == "" {
			title = "Unknown Position"
		}
		company := p.Company
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
			Location:     "Remote",
			Salary:       salaryText(p.SalaryMin, p.SalaryMax),
			ContractType: contract,
			Description:  util.Truncate(util.StripHTML(p.Description), 500),
			URL:          jobURL,
			Source:       s.Name(),
			PostedAt:     p.Date,
			ScrapedAt:    now,
			Tags:         tags,
		})
	}

	return out, nil
}

func salaryText(min, max int) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%s-$%s", util.FormatThousands(min), util.FormatThousands(max))
	case min > 0:
		return fmt.Sprintf("$%s+", util.FormatThousands(min))
	case max > 0:
		return fmt.Sprintf("Up to $%s", util.FormatThousands(max))
	default:
		return ""
	}
}
