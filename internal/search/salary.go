package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var salaryToken = regexp.MustCompile(`(\d+(?:\.\d+)?)(K?)`)

// ParseSalary extracts a representative annual figure from a free-text salary
// string. Commas and spaces are stripped, tokens like "95K" mean x1000. One
// token is taken as-is; two or more are read as a min-max range and averaged
// over the first two. Returns ok=false when no numeric token is found —
// callers treat that leniently, never as an exclusion.
func ParseSalary(s string) (int, bool) {
	clean := strings.ToUpper(strings.NewReplacer(",", "", " ", "").Replace(s))
	if clean == "" {
		return 0, false
	}

	matches := salaryToken.FindAllStringSubmatch(clean, -1)
	if len(matches) == 0 {
		return 0, false
	}

	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if m[2] == "K" {
			v *= 1000
		}
		values = append(values, v)
	}

	switch {
	case len(values) == 0:
		return 0, false
	case len(values) == 1:
		return int(math.Round(values[0])), true
	default:
		return int(math.Round((values[0] + values[1]) / 2)), true
	}
}
