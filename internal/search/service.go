package search

import (
	"context"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"
)

// Service runs the whole search pipeline: fan-out, filter, sort, cache the
// full list for export, then paginate.
type Service struct {
	Agg   *Aggregator
	Cache *ResultCache

	DefaultLimit int
	MaxLimit     int
}

func (s *Service) Search(ctx context.Context, req domain.SearchQuery) domain.SearchResult {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = s.DefaultLimit
	}
	if limit < 1 {
		limit = 20
	}
	if s.MaxLimit > 0 && limit > s.MaxLimit {
		limit = s.MaxLimit
	}

	q := types.Query{
		Keywords:     req.Keywords,
		Location:     req.Location,
		ContractType: req.ContractType,
		Remote:       req.Remote,
	}

	pooled, errs := s.Agg.Run(ctx, q, req.Sources)

	filtered := FilterJobs(pooled, req.SalaryMin, req.SalaryMax, req.ExperienceLevel)

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = SortByDate
	}
	SortJobs(filtered, sortBy)

	// Full sorted list goes into the export slot before pagination, even
	// when it's empty.
	s.Cache.Put(filtered)

	pg := Paginate(filtered, page, limit)

	return domain.SearchResult{
		Success:      len(pooled) > 0 || len(errs) == 0,
		TotalResults: len(filtered),
		Results:      pg.Items,
		ScrapedAt:    domain.Timestamp(time.Now()),
		Errors:       errs,
		Page:         page,
		Limit:        limit,
		TotalPages:   pg.TotalPages,
		HasNext:      pg.HasNext,
		HasPrevious:  pg.HasPrevious,
	}
}
