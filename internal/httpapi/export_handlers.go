package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"jobscout-engine/internal/export"
	"jobscout-engine/internal/search"
)

type ExportHandler struct {
	Cache *search.ResultCache
}

// Download serves the most recent search's full result list. A search that
// found nothing is still exportable; only a cold cache is a 404.
func (h ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	records, ok := h.Cache.Snapshot()
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no search results to export; run a search first")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	stamp := time.Now().UTC().Format("20060102-150405")

	switch format {
	case "csv":
		b, err := export.ToCSV(records)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=jobs-%s.csv", stamp))
		_, _ = w.Write(b)
	case "json":
		b, err := export.ToJSON(records)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=jobs-%s.json", stamp))
		_, _ = w.Write(b)
	default:
		WriteError(w, r, http.StatusBadRequest, "bad_format", "format must be csv or json")
	}
}
