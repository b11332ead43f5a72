package domain

// SearchQuery is the request shape for one aggregation run. Keywords is the
// only required field; zero values everywhere else mean "no filter".
type SearchQuery struct {
	Keywords        string   `json:"keywords"`
	Location        string   `json:"location,omitempty"`
	Sources         []string `json:"sources,omitempty"`
	ContractType    string   `json:"contractType,omitempty"`
	Remote          bool     `json:"remote,omitempty"`
	SalaryMin       int      `json:"salaryMin,omitempty"`
	SalaryMax       int      `json:"salaryMax,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	SortBy          string   `json:"sortBy,omitempty"`
	Page            int      `json:"page,omitempty"`
	Limit           int      `json:"limit,omitempty"`
}

// SearchResult is one page of an aggregation run plus its per-source
// diagnostics. Success is a correctness flag, not a non-emptiness flag: an
// error-free run with zero records still succeeds.
type SearchResult struct {
	Success      bool        `json:"success"`
	TotalResults int         `json:"totalResults"`
	Results      []JobRecord `json:"results"`
	ScrapedAt    string      `json:"scrapedAt"`
	Errors       []string    `json:"errors,omitempty"`
	Page         int         `json:"page"`
	Limit        int         `json:"limit"`
	TotalPages   int         `json:"totalPages"`
	HasNext      bool        `json:"hasNext"`
	HasPrevious  bool        `json:"hasPrevious"`
}
