package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/search"
)

type SearchHandler struct {
	Search *search.Service
	Hub    *events.Hub
}

func (h SearchHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Keywords) == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "keywords is required")
		return
	}

	res := h.Search.Search(r.Context(), req)

	if h.Hub != nil {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeSearchCompleted, 1, map[string]any{
			"keywords":      req.Keywords,
			"total_results": res.TotalResults,
			"success":       res.Success,
			"errors":        len(res.Errors),
		}))
	}

	writeJSON(w, res)
}
