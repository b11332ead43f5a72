package httpapi

import "net/http"

// NewMux returns the raw mux so main() can wrap it with middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{}
	mux.HandleFunc("/api/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	srh := SearchHandler{Search: d.Search, Hub: d.Hub}
	mux.HandleFunc("/api/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: srh.Run,
	}))

	xh := ExportHandler{Cache: d.Cache}
	mux.HandleFunc("/api/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: xh.Download,
	}))

	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetIMAPPassword,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
