package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bogun-lab/facildash/pkg/domain/types"
	"github.com/bogun-lab/facildash/pkg/usecase"
)

// StatsHandler serves the aggregation API
type StatsHandler struct {
	statsUC usecase.Stats
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsUC usecase.Stats) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
	}
}

// HandleListRegions returns the sorted list of selectable regions
func (h *StatsHandler) HandleListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.statsUC.ListRegions(r.Context())
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, map[string]any{
		"regions": regions,
	})
}

// HandleRegionStats returns the aggregated rows for one region. An
// unknown region is a "no data" state, not an error, so the response is
// always 200 with a possibly empty list.
func (h *StatsHandler) HandleRegionStats(w http.ResponseWriter, r *http.Request) {
	region := regionParam(r)

	stats, err := h.statsUC.Aggregate(r.Context(), region)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, map[string]any{
		"region": region,
		"stats":  stats,
	})
}

// HandleRegionChart returns the aggregated rows with assigned colors,
// ready for the frontend chart
func (h *StatsHandler) HandleRegionChart(w http.ResponseWriter, r *http.Request) {
	region := regionParam(r)

	data, err := h.statsUC.ChartData(r.Context(), region)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, data)
}

// regionParam extracts the region path parameter. Region names are
// non-ASCII in the source dataset, so the escaped path segment needs
// unescaping before lookup.
func regionParam(r *http.Request) types.Region {
	raw := chi.URLParam(r, "region")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return types.Region(raw)
}

// writeJSON writes a JSON response
func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	ctxlog.From(ctx).Error("Request failed", "error", err, "status", status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", err)
	}
}
