package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/httpapi"
	"jobscout-engine/internal/scrape"
	"jobscout-engine/internal/scrape/util"
	"jobscout-engine/internal/search"

	"github.com/gofrs/flock"
)

func main() {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir. A second instance would fight over the user
	// config and confuse the frontend.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock %s: %v", lock.Path(), err)
	}
	if !locked {
		log.Fatalf("another engine is already running for %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		raw, err := config.Load(userCfgPath)
		if err != nil {
			return raw, err
		}
		normalized, vr := config.NormalizeAndValidate(raw)
		for _, warn := range vr.Warnings {
			log.Printf("[config] warning: %s", warn)
		}
		if !vr.OK() {
			return normalized, fmt.Errorf("invalid config: %v", vr.Errors)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	limiter := util.NewHostLimiter(cfg.Scrape.HostRatePerSecond, cfg.Scrape.HostRateBurst)
	fetchers := scrape.BuildFetchers(cfg, limiter)
	if len(fetchers) == 0 {
		log.Fatal("no sources enabled; check the sources section of the config")
	}
	log.Printf("[engine] sources enabled: %d", len(fetchers))

	agg := &search.Aggregator{
		Fetchers:       fetchers,
		DefaultSources: scrape.DefaultSources(cfg, fetchers),
		Retry: search.RetryPolicy{
			MaxAttempts: cfg.Scrape.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay(),
		},
		NetTimeout:    cfg.RequestTimeout(),
		WorkerTimeout: cfg.WorkerTimeout(),
	}

	cache := &search.ResultCache{}
	svc := &search.Service{
		Agg:          agg,
		Cache:        cache,
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}

	hub := events.NewHub()

	mux := httpapi.NewMux(httpapi.Deps{
		Search:      svc,
		Cache:       cache,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	handler := httpapi.Chain(mux,
		httpapi.Recover,
		httpapi.RequestID,
		httpapi.Cors,
		httpapi.AccessLog,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (config=%s)", addr, userCfgPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
