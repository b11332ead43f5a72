package search

import "jobscout-engine/internal/domain"

// Page is one slice of a result list plus its navigation metadata.
type Page struct {
	Items       []domain.JobRecord
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Paginate slices jobs for a 1-based page. TotalPages is at least 1 even for
// an empty list; an out-of-range page yields an empty slice, not an error.
func Paginate(jobs []domain.JobRecord, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(jobs)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	end := start + limit
	items := []domain.JobRecord{}
	if start < total {
		if end > total {
			end = total
		}
		items = append(items, jobs[start:end]...)
	}

	return Page{
		Items:       items,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
