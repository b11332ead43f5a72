package scrape

import (
	"jobscout-engine/internal/config"
	"jobscout-engine/internal/scrape/arbeitnow"
	"jobscout-engine/internal/scrape/email"
	"jobscout-engine/internal/scrape/jobicy"
	"jobscout-engine/internal/scrape/jungle"
	"jobscout-engine/internal/scrape/remoteok"
	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/scrape/util"
)

// BuildFetchers assembles the enabled sources, keyed by source name.
func BuildFetchers(cfg config.Config, limiter *util.HostLimiter) map[string]types.Fetcher {
	fetchers := map[string]types.Fetcher{}

	if cfg.Sources.RemoteOK.Enabled {
		fetchers["remoteok"] = remoteok.New(remoteok.Config{
			MaxResults: cfg.Scrape.MaxResults,
			Timeout:    cfg.RequestTimeout(),
		}, limiter)
	}
	if cfg.Sources.Jobicy.Enabled {
		fetchers["jobicy"] = jobicy.New(jobicy.Config{
			MaxResults: cfg.Scrape.MaxResults,
			Timeout:    cfg.RequestTimeout(),
		}, limiter)
	}
	if cfg.Sources.Arbeitnow.Enabled {
		fetchers["arbeitnow"] = arbeitnow.New(arbeitnow.Config{
			MaxResults: cfg.Scrape.MaxResults,
			Timeout:    cfg.RequestTimeout(),
		}, limiter)
	}
	if cfg.Sources.Jungle.Enabled {
		fetchers["welcometothejungle"] = jungle.New(jungle.Config{
			WorkerBin:  cfg.Sources.Jungle.WorkerBin,
			MaxResults: cfg.Scrape.MaxResults,
			Timeout:    cfg.WorkerTimeout(),
		})
	}
	if cfg.Email.Enabled {
		fetchers["linkedin-email"] = &email.Fetcher{Cfg: cfg.Email}
	}

	return fetchers
}

// DefaultSources picks the sources a search uses when the request names
// none: the configured default list, filtered to sources actually enabled.
func DefaultSources(cfg config.Config, fetchers map[string]types.Fetcher) []string {
	var out []string
	for _, name := range cfg.Sources.Default {
		if _, ok := fetchers[name]; ok {
			out = append(out, name)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, name := range []string{"remoteok", "jobicy"} {
		if _, ok := fetchers[name]; ok {
			out = append(out, name)
		}
	}
	return out
}
