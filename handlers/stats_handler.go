package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"playShelfAPI/middleware"
	"playShelfAPI/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats serves the aggregated per-game statistics.
//
// GET /stats?start_date=2024-01-01&end_date=2024-01-31&include_historic=true
//
// Both dates are optional inclusive bounds on the session start time,
// in YYYY-MM-DD form. include_historic folds each game's pre-tracking
// hours into its total.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	req := services.StatsRequest{}
	query := r.URL.Query()

	if v := query.Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid 'start_date', expected YYYY-MM-DD")
			return
		}
		req.StartDate = &t
	}
	if v := query.Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid 'end_date', expected YYYY-MM-DD")
			return
		}
		req.EndDate = &t
	}
	if v := query.Get("include_historic"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid 'include_historic', expected a boolean")
			return
		}
		req.IncludeHistoric = include
	}

	result, err := h.statsService.GetStats(ctx, req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
