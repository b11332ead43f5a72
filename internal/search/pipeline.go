package search

import (
	"sort"
	"strings"

	"jobscout-engine/internal/domain"
)

// Sort modes accepted by SortJobs. Anything else leaves the aggregation
// order untouched.
const (
	SortByDate      = "date"
	SortBySalary    = "salary"
	SortByRelevance = "relevance"
)

// FilterJobs applies the salary and experience predicates. Both default to
// lenient: a record missing the filtered field (or carrying an unparseable
// salary) passes rather than being excluded.
func FilterJobs(jobs []domain.JobRecord, salaryMin, salaryMax int, experience string) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		if !passesSalary(j, salaryMin, salaryMax) {
			continue
		}
		if !passesExperience(j, experience) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func passesSalary(j domain.JobRecord, min, max int) bool {
	if min <= 0 && max <= 0 {
		return true
	}
	v, ok := ParseSalary(j.Salary)
	if !ok {
		return true
	}
	if min > 0 && v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}

func passesExperience(j domain.JobRecord, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" || j.ExperienceLevel == "" {
		return true
	}
	return strings.Contains(strings.ToLower(j.ExperienceLevel), strings.ToLower(want))
}

// SortJobs orders jobs in place. "date" is stable-descending on postedAt,
// falling back to scrapedAt; "salary" is stable-descending on the parsed
// figure with unparseable salaries sorting as zero; "relevance" (and any
// unknown mode) keeps the aggregation order.
func SortJobs(jobs []domain.JobRecord, mode string) {
	switch mode {
	case SortByDate:
		sort.SliceStable(jobs, func(i, k int) bool {
			return dateKey(jobs[i]) > dateKey(jobs[k])
		})
	case SortBySalary:
		sort.SliceStable(jobs, func(i, k int) bool {
			return salaryKey(jobs[i]) > salaryKey(jobs[k])
		})
	}
}

func dateKey(j domain.JobRecord) string {
	if j.PostedAt != "" {
		return j.PostedAt
	}
	return j.ScrapedAt
}

func salaryKey(j domain.JobRecord) int {
	v, ok := ParseSalary(j.Salary)
	if !ok {
		return 0
	}
	return v
}
