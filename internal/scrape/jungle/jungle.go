// Package jungle adapts Welcome to the Jungle, which has no JSON API: search
// results only exist in a JavaScript-rendered page. Rendering happens in a
// separate worker process (cmd/jungleworker) so a wedged or crashed browser
// is contained; the adapter enforces the wall-clock timeout and kills the
// worker when it expires. Keyword and location filtering ride on the search
// URL itself — the worker's output is never re-filtered locally.
package jungle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"os/exec"
	"strconv"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/scrape/util"
)

// WorkerJob is the fixed output contract of the browser worker: one search
// result link, nothing more. Everything else on a record stays absent for
// this source.
type WorkerJob struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	URL     string `json:"url"`
}

type Config struct {
	WorkerBin  string // path to the jungleworker executable
	MaxResults int
	Timeout    time.Duration // hard wall clock for the whole worker run
}

type Scraper struct {
	cfg Config
}

func New(cfg Config) *Scraper {
	if cfg.WorkerBin == "" {
		cfg.WorkerBin = "jungleworker"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &Scraper{cfg: cfg}
}

func (s *Scraper) Name() string { return "welcometothejungle" }

// SearchURL encodes the query into the upstream search page URL; this is the
// worker's fixed input alongside the result cap.
func SearchURL(q types.Query) string {
	params := url.Values{}
	params.Set("query", q.Keywords)
	if q.Location != "" {
		params.Set("aroundQuery", q.Location)
	}
	if q.Remote {
		params.Set("remote", "true")
	}
	return "https://www.welcometothejungle.com/fr/jobs?" + params.Encode()
}

func (s *Scraper) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	wctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(wctx, s.cfg.WorkerBin,
		"-url", SearchURL(q),
		"-max", strconv.Itoa(s.cfg.MaxResults),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(wctx.Err(), context.DeadlineExceeded) {
			return nil, types.Errf(types.KindWorker, "browser worker timed out after %s", s.cfg.Timeout)
		}
		return nil, types.Errf(types.KindWorker, "browser worker: %w (%s)", err, firstLine(stderr.String()))
	}

	var raw []WorkerJob
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &raw); err != nil {
		return nil, types.Errf(types.KindPayload, "browser worker output: %w", err)
	}

	now := domain.Timestamp(time.Now())
	location := q.Location
	if location == "" {
		location = "France"
	}

	out := make([]domain.JobRecord, 0, len(raw))
	for _, wj := range raw {
		if len(out) >= s.cfg.MaxResults {
			break
		}
		if wj.URL == "" {
			continue
		}

		title := util.CleanText(wj.Title)
		if title == "" {
			title = "Unknown Position"
		}
		company := util.CleanText(wj.Company)
		if company == "" {
			company = "Unknown Company"
		}

		out = append(out, domain.JobRecord{
			ID:           domain.NewID(),
			Title:        util.Truncate(title, 200),
			Company:      util.Truncate(company, 100),
			Location:     location,
			ContractType: q.ContractType,
			URL:          wj.URL,
			Source:       s.Name(),
			ScrapedAt:    now,
		})
	}

	return out, nil
}

func firstLine(s string) string {
	s = util.CleanText(s)
	if len(s) > 200 {
		s = s[:200]
	}
	if s == "" {
		s = "no stderr"
	}
	return s
}
