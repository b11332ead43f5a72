package httpapi

import (
	"sync/atomic"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/search"
)

type Deps struct {
	Search *search.Service
	Cache  *search.ResultCache

	Hub *events.Hub

	// Atomic store holding the live config.Config
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
