package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/jekabolt/retail-stats/internal/dependency"
)

type handler struct {
	svc dependency.Statistics
	rep dependency.Repository
}

// queryInt reads an integer query param, falling back to def when the
// param is absent or unparsable. Range normalization happens in the
// statistics service.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't encode response",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
}

func (h *handler) bestSellers(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	writeJSON(w, r, h.svc.BestSellers(r.Context(), limit))
}

func (h *handler) periodStatistics(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	writeJSON(w, r, h.svc.PeriodStatistics(r.Context(), period))
}

func (h *handler) totalStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.svc.TotalStatistics(r.Context()))
}

func (h *handler) weeklyRevenue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.svc.WeeklyRevenue(r.Context()))
}

func (h *handler) orderStatusDistribution(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	writeJSON(w, r, h.svc.OrderStatusDistribution(r.Context(), period))
}

func (h *handler) channelStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.svc.ChannelStatistics(r.Context()))
}

func (h *handler) lowStockProducts(w http.ResponseWriter, r *http.Request) {
	threshold := queryInt(r, "threshold", -1)
	limit := queryInt(r, "limit", 0)
	writeJSON(w, r, h.svc.LowStockProducts(r.Context(), threshold, limit))
}

func (h *handler) topManufacturers(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	writeJSON(w, r, h.svc.TopManufacturers(r.Context(), limit))
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	writeJSON(w, r, h.svc.Dashboard(r.Context(), period))
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.rep.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed",
			slog.String("err", err.Error()),
		)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, r, map[string]string{"status": "ok"})
}
