package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// KnownSources is the closed set of source identifiers the engine ships.
// Adding a source means adding a variant here and in the fetcher registry,
// never threading new conditionals through the aggregator.
var KnownSources = []string{"remoteok", "jobicy", "arbeitnow", "welcometothejungle", "linkedin-email"}

// NormalizeAndValidate trims and dedupes list fields, then checks the result
// for hard errors and soft warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Sources.Default = trimList(out.Sources.Default)
	out.Email.SearchSubjectAny = trimList(out.Email.SearchSubjectAny)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Scrape.RetryMaxAttempts < 1 {
		res.addErr("scrape.retry_max_attempts must be >= 1")
	}
	if out.Scrape.RetryBaseDelaySeconds < 0 {
		res.addErr("scrape.retry_base_delay_seconds must be >= 0")
	}
	if out.Scrape.MaxResults <= 0 {
		res.addErr("scrape.max_results must be > 0")
	} else if out.Scrape.MaxResults > 200 {
		res.addWarn("scrape.max_results is very high (%d); upstream boards rarely return that many.", out.Scrape.MaxResults)
	}

	known := map[string]bool{}
	for _, s := range KnownSources {
		known[s] = true
	}
	for _, s := range out.Sources.Default {
		if !known[s] {
			res.addErr("sources.default contains unknown source %q", s)
		}
	}
	if len(out.Sources.Default) == 0 {
		res.addWarn("sources.default is empty; searches will fall back to remoteok+jobicy.")
	}

	if out.Pagination.DefaultLimit <= 0 {
		res.addErr("pagination.default_limit must be > 0")
	}
	if out.Pagination.MaxLimit > 0 && out.Pagination.MaxLimit < out.Pagination.DefaultLimit {
		res.addErr("pagination.max_limit must be >= pagination.default_limit")
	}

	if out.Email.Enabled {
		if strings.TrimSpace(out.Email.IMAPHost) == "" {
			res.addErr("email.imap_host is required when email.enabled=true")
		}
		if out.Email.IMAPPort == 0 {
			res.addErr("email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Username) == "" {
			res.addErr("email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Mailbox) == "" {
			res.addErr("email.mailbox is required when email.enabled=true")
		}
		if len(out.Email.SearchSubjectAny) == 0 {
			res.addWarn("email.search_subject_any is empty; alert matching may find nothing.")
		}
	}

	return out, res
}
